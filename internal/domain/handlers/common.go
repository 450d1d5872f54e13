// Package handlers provides the check families dispatched per unit.
package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/softwarewrighter/sw-checklist/internal/adapter"
	m "github.com/softwarewrighter/sw-checklist/internal/model"
)

// FieldSpec names a piece of metadata and the lower-case tokens that reveal it.
type FieldSpec struct {
	Name     string
	Patterns []string
}

// Matches reports whether any pattern occurs in lower.
func (f FieldSpec) Matches(lower string) bool {
	for _, p := range f.Patterns {
		if strings.Contains(lower, p) {
			return true
		}
	}

	return false
}

func unitLabel(unit m.Unit) string {
	return fmt.Sprintf("[%s]", unit.Name)
}

// readRustSources returns the text of every readable UTF-8 *.rs file under
// dir in lexical order.
func readRustSources(fs adapter.SourceFSAdapter, dir m.Path) []string {
	var sources []string

	_ = fs.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || filepath.Ext(path) != ".rs" {
			return nil
		}

		data, readErr := fs.ReadFile(m.Path(path))
		if readErr != nil || !utf8.Valid(data) {
			return nil
		}

		sources = append(sources, string(data))

		return nil
	})

	return sources
}

// checkTests reports whether the unit carries tests. Browser units may also
// rely on a Jest setup.
func checkTests(fs adapter.SourceFSAdapter, unit m.Unit, browser bool) m.CheckResult {
	name := "Tests " + unitLabel(unit)
	root := string(unit.RootDir)

	found := fs.Exists(fs.JoinPath(root, "tests"))

	srcDir := fs.JoinPath(root, "src")
	if !found && fs.IsDir(srcDir) {
		for _, source := range readRustSources(fs, srcDir) {
			if strings.Contains(source, "#[test]") || strings.Contains(source, "#[cfg(test)]") {
				found = true
				break
			}
		}
	}

	if !browser {
		if found {
			return m.Pass(name, "Found test files or #[test] annotations")
		}

		return m.Fail(name, "Projects should have tests directory or #[test] annotations")
	}

	if !found {
		if data, err := fs.ReadFile(fs.JoinPath(root, "package.json")); err == nil {
			found = strings.Contains(string(data), "jest")
		}
	}

	if found {
		return m.Pass(name, "Found test files or annotations")
	}

	return m.Fail(name, "WASM projects should have Rust tests, Jest tests, or curl-based tests")
}
