package domain

import (
	"strings"

	m "github.com/softwarewrighter/sw-checklist/internal/model"
)

var (
	cliMarkers     = []string{"clap", "[[bin]]"}
	browserMarkers = []string{"wasm-bindgen", "yew", `crate-type = ["cdylib"]`}
)

// Classifier assigns capability tags from raw manifest text.
//
// Matching is by substring, so a marker inside a comment or an unrelated
// string still counts.
type Classifier interface {
	Classify(manifestText string) m.Capability
	IsWorkspace(manifestText string) bool
}

type substringClassifier struct{}

// NewClassifier returns the substring based Classifier.
func NewClassifier() Classifier {
	return substringClassifier{}
}

func (substringClassifier) IsWorkspace(text string) bool {
	return strings.Contains(text, "[workspace]") && !strings.Contains(text, "[package]")
}

func (c substringClassifier) Classify(text string) m.Capability {
	if c.IsWorkspace(text) {
		return m.CapLibrary
	}

	var caps m.Capability

	if containsAny(text, cliMarkers) {
		caps |= m.CapCLI
	}

	if containsAny(text, browserMarkers) {
		caps |= m.CapBrowser
	}

	if caps == 0 {
		caps = m.CapLibrary
	}

	return caps
}

func containsAny(text string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(text, marker) {
			return true
		}
	}

	return false
}
