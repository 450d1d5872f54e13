package domain

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/softwarewrighter/sw-checklist/internal/adapter"
	m "github.com/softwarewrighter/sw-checklist/internal/model"
)

var errPermission = errors.New("permission denied")

// deniedFS wraps the local adapter and fails the entries a test names. Walk
// reports deniedDir to the callback as an error before walking normally, and
// ReadFile fails for files whose base name is deniedFile.
type deniedFS struct {
	adapter.SourceFSAdapter
	deniedDir  string
	deniedFile string
}

func newDeniedFS(dir, file string) *deniedFS {
	return &deniedFS{SourceFSAdapter: adapter.NewLocalSourceFSAdapter(), deniedDir: dir, deniedFile: file}
}

func (d *deniedFS) Walk(root m.Path, fn adapter.FilepathWalkFunc) error {
	if d.deniedDir != "" {
		if err := fn(filepath.Join(string(root), d.deniedDir), nil, errPermission); err != nil {
			return err
		}
	}

	return d.SourceFSAdapter.Walk(root, fn)
}

func (d *deniedFS) ReadFile(path m.Path) ([]byte, error) {
	if d.deniedFile != "" && filepath.Base(string(path)) == d.deniedFile {
		return nil, errPermission
	}

	return d.SourceFSAdapter.ReadFile(path)
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

// fnLines builds a function spanning exactly n lines (n >= 2).
func fnLines(name string, n int) []string {
	lines := []string{fmt.Sprintf("fn %s() {", name)}
	for i := 0; i < n-2; i++ {
		lines = append(lines, "    let _ = 1;")
	}

	return append(lines, "}")
}

// fnSource joins functions of the given sizes into one source file.
func fnSource(sizes ...int) string {
	var lines []string
	for i, n := range sizes {
		lines = append(lines, fnLines(fmt.Sprintf("f%d", i), n)...)
	}

	return strings.Join(lines, "\n") + "\n"
}
