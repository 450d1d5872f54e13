package handlers

import (
	"context"
	"fmt"

	m "github.com/softwarewrighter/sw-checklist/internal/model"
)

// RequiredEdition is the language edition every unit must declare.
const RequiredEdition = "2024"

// EditionHandler checks the edition declared by a unit's manifest.
type EditionHandler struct{}

// NewEditionHandler constructs an EditionHandler.
func NewEditionHandler() *EditionHandler {
	return &EditionHandler{}
}

// Name returns the handler name.
func (h *EditionHandler) Name() string {
	return "edition"
}

// Handles selects every unit that is not a virtual workspace.
func (h *EditionHandler) Handles(unit m.Unit) bool {
	return !unit.Workspace
}

// Check compares the declared edition against RequiredEdition.
func (h *EditionHandler) Check(_ context.Context, cc m.CheckContext) []m.CheckResult {
	name := fmt.Sprintf("Rust Edition [%s]", cc.Unit.Name)

	switch edition := cc.Unit.Manifest.Edition; edition {
	case "":
		return []m.CheckResult{m.Pass(name, "No edition specified (inherits from workspace)")}
	case RequiredEdition:
		return []m.CheckResult{m.Pass(name, fmt.Sprintf("Using Rust %s edition", RequiredEdition))}
	default:
		return []m.CheckResult{m.Fail(name,
			fmt.Sprintf("Using Rust %s edition (must use %s). Update edition in Cargo.toml", edition, RequiredEdition))}
	}
}
