// Package adapter contains the infrastructure adapters used by the conformance checks.
package adapter

import (
	"os"
	"path/filepath"

	m "github.com/softwarewrighter/sw-checklist/internal/model"
)

// SourceFSAdapter abstracts filesystem access so the domain layer can be
// exercised against temporary trees.
//
//nolint:interfacebloat // A richer interface keeps the checks decoupled from os/fs.
type SourceFSAdapter interface {
	// Walk traverses root recursively. Symbolic links are not followed.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path, following symlinks.
	FileInfo(path m.Path) (os.FileInfo, error)

	// Exists reports whether path exists.
	Exists(path m.Path) bool

	// IsDir reports whether path exists and is a directory.
	IsDir(path m.Path) bool

	// ReadDir lists the immediate entries of a directory, sorted by name.
	ReadDir(path m.Path) ([]os.DirEntry, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path

	// HomeDir returns the current user's home directory.
	HomeDir() (m.Path, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter backs SourceFSAdapter with the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over every entry under root. Errors for individual entries are
// handed to fn, which decides whether to stop.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	return filepath.Walk(string(root), func(path string, info os.FileInfo, err error) error {
		return fn(path, info, err)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// FileInfo returns file metadata for path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Exists reports whether path can be stat'ed. Permission and not-a-directory
// errors count as absent.
func (a *LocalSourceFSAdapter) Exists(path m.Path) bool {
	_, err := os.Stat(string(path))

	return err == nil
}

// IsDir reports whether path is a directory.
func (a *LocalSourceFSAdapter) IsDir(path m.Path) bool {
	info, err := os.Stat(string(path))

	return err == nil && info.IsDir()
}

// ReadDir lists the entries of a directory.
func (a *LocalSourceFSAdapter) ReadDir(path m.Path) ([]os.DirEntry, error) {
	return os.ReadDir(string(path))
}

// RelPath returns target relative to base.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

// HomeDir returns the user's home directory.
func (a *LocalSourceFSAdapter) HomeDir() (m.Path, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return m.Path(home), nil
}
