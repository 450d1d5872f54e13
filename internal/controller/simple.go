package controller

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/spf13/cobra"

	m "github.com/softwarewrighter/sw-checklist/internal/model"
)

// SimpleUI implements UI with plain text on the command's output.
type SimpleUI struct {
	out      io.Writer
	progress ProgressManager

	mu      sync.Mutex
	verbose bool
}

// NewSimpleUI creates a new SimpleUI. A nil progress manager disables progress.
func NewSimpleUI(cmd *cobra.Command, progress ProgressManager) *SimpleUI {
	if progress == nil {
		progress = &NoOpProgressManager{}
	}

	return &SimpleUI{out: cmd.OutOrStdout(), progress: progress}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.verbose = cfg.verbose
	if !cfg.verbose && cfg.units > 1 {
		s.progress.Start(cfg.units)
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.progress.Finish()
}

// DisplayHeader prints the project line and project type.
func (s *SimpleUI) DisplayHeader(ctx context.Context, header Header) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	writeHeader(s.out, header)
}

// DisplayUnitDone reports a finished unit. It is safe for concurrent use.
func (s *SimpleUI) DisplayUnitDone(_ context.Context, unit m.Unit) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.verbose {
		_, _ = fmt.Fprintln(s.out, unitLine(unit))
		return
	}

	s.progress.Increment(unit.Name)
}

// DisplayResults prints every result followed by the summary line.
func (s *SimpleUI) DisplayResults(ctx context.Context, results []m.CheckResult, summary m.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.progress.Finish()

	if s.verbose {
		_, _ = fmt.Fprintln(s.out)
	}

	writeResults(s.out, results, plainStatusLabel)
	_, err := fmt.Fprintf(s.out, "\n%s\n", SummaryLine(summary))

	return err
}

// DisplayUnits prints a table of discovered units.
func (s *SimpleUI) DisplayUnits(ctx context.Context, units []m.Unit) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(units) == 0 {
		_, err := fmt.Fprintln(s.out, "No Cargo.toml files found")
		return err
	}

	_, err := fmt.Fprint(s.out, renderUnitsTable(units))

	return err
}
