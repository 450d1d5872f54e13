package model

import "strings"

// Capability is a set of capability tags assigned to a unit.
type Capability uint8

const (
	// CapCLI marks a unit exposing a command-line interface.
	CapCLI Capability = 1 << iota
	// CapBrowser marks a unit targeting the browser (WASM).
	CapBrowser
	// CapLibrary marks a plain library; set only when no other tag applies.
	CapLibrary
)

// Has reports whether every tag in other is present.
func (c Capability) Has(other Capability) bool {
	return c&other == other
}

func (c Capability) String() string {
	var tags []string
	if c.Has(CapCLI) {
		tags = append(tags, "CLI")
	}

	if c.Has(CapBrowser) {
		tags = append(tags, "WASM")
	}

	if c.Has(CapLibrary) {
		tags = append(tags, "library")
	}

	if len(tags) == 0 {
		return "none"
	}

	return strings.Join(tags, " + ")
}

// UnknownName is used when a manifest does not declare a readable package name.
const UnknownName = "unknown"

// Manifest holds what was read from a unit's Cargo.toml.
type Manifest struct {
	Text        string
	ParseErr    error
	PackageName string
	BinaryNames []string
	Edition     string
}

// Unit is a discovered compilable crate.
type Unit struct {
	ManifestPath Path
	RootDir      Path
	Name         string
	Capabilities Capability
	Workspace    bool
	Manifest     Manifest
}

// CheckContext is passed to every check handler for a single unit.
type CheckContext struct {
	ProjectRoot Path
	Unit        Unit
	Verbose     bool
}
