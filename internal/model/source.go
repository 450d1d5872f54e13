// Package model defines the data structures shared by the conformance checks.
package model

import "path/filepath"

// Path represents a file system path.
type Path string

// SourceFile is one source file of a unit together with its lines.
// Lines are only held while the file is being analyzed.
type SourceFile struct {
	Path  Path
	Lines []string
}

// Name returns the base name of the file.
func (f SourceFile) Name() string {
	return filepath.Base(string(f.Path))
}

// FunctionSpan is a detected function header through its balanced closing brace.
// StartLine and EndLine are 1-based and inclusive.
type FunctionSpan struct {
	Name      string
	StartLine int
	EndLine   int
}

// LineCount returns the number of lines covered by the span.
func (s FunctionSpan) LineCount() int {
	return s.EndLine - s.StartLine + 1
}
