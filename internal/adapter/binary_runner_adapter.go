package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
	"unicode/utf8"

	m "github.com/softwarewrighter/sw-checklist/internal/model"
)

// DefaultRunTimeout bounds a single binary invocation.
const DefaultRunTimeout = 10 * time.Second

// ErrInvalidOutput is returned when a binary writes non UTF-8 data to stdout.
var ErrInvalidOutput = errors.New("output is not valid UTF-8")

// BinaryRunnerAdapter executes a built binary and captures its standard output.
type BinaryRunnerAdapter interface {
	// Run executes binary with args. A non-zero exit status is not an error;
	// only start failures, timeouts and undecodable output are.
	Run(ctx context.Context, binary m.Path, args ...string) (string, error)
}

// LocalBinaryRunnerAdapter runs binaries with os/exec.
type LocalBinaryRunnerAdapter struct {
	timeout time.Duration
}

// NewLocalBinaryRunnerAdapter constructs a runner. A non-positive timeout
// selects DefaultRunTimeout.
func NewLocalBinaryRunnerAdapter(timeout time.Duration) *LocalBinaryRunnerAdapter {
	if timeout <= 0 {
		timeout = DefaultRunTimeout
	}

	return &LocalBinaryRunnerAdapter{timeout: timeout}
}

// Run executes binary and returns its stdout.
func (a *LocalBinaryRunnerAdapter) Run(ctx context.Context, binary m.Path, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, string(binary), args...)
	cmd.WaitDelay = time.Second

	var stdout bytes.Buffer

	cmd.Stdout = &stdout

	err := cmd.Run()
	if ctx.Err() != nil {
		return "", fmt.Errorf("run %s: timed out after %s", binary, a.timeout)
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return "", fmt.Errorf("run %s: %w", binary, err)
	}

	if !utf8.Valid(stdout.Bytes()) {
		return "", fmt.Errorf("run %s: %w", binary, ErrInvalidOutput)
	}

	return stdout.String(), nil
}
