package controller

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	m "github.com/softwarewrighter/sw-checklist/internal/model"
)

const ruleWidth = 80

type statusLabeler func(m.Status) string

func plainStatusLabel(status m.Status) string {
	switch status {
	case m.StatusPass:
		return "✓ PASS"
	case m.StatusWarn:
		return "⚠ WARN"
	default:
		return "✗ FAIL"
	}
}

func writeHeader(w io.Writer, header Header) {
	_, _ = fmt.Fprintf(w, "Checking project: %s\n\n", header.Root)
	_, _ = fmt.Fprintf(w, "Project type: %s\n", header.ProjectType)

	if header.Manifests > 0 {
		_, _ = fmt.Fprintf(w, "Found %d Cargo.toml file(s)\n", header.Manifests)
	}

	_, _ = fmt.Fprintln(w)
}

func writeResults(w io.Writer, results []m.CheckResult, label statusLabeler) {
	_, _ = fmt.Fprintln(w, "Check Results:")
	_, _ = fmt.Fprintln(w, strings.Repeat("=", ruleWidth))

	for _, result := range results {
		_, _ = fmt.Fprintf(w, "%s | %s\n", label(result.Status()), result.Name)
		_, _ = fmt.Fprintf(w, "       %s\n\n", result.Message)
	}
}

// SummaryLine renders the closing tally; warnings are listed only when present.
func SummaryLine(summary m.Summary) string {
	if summary.Warnings > 0 {
		return fmt.Sprintf("Summary: %d passed, %d failed, %d warnings", summary.Passed, summary.Failed, summary.Warnings)
	}

	return fmt.Sprintf("Summary: %d passed, %d failed", summary.Passed, summary.Failed)
}

// UnitKind labels a unit the way per-unit progress lines show it.
func UnitKind(unit m.Unit) string {
	switch {
	case unit.Workspace:
		return "workspace"
	case unit.Capabilities.Has(m.CapCLI) && unit.Capabilities.Has(m.CapBrowser):
		return "CLI + WASM"
	case unit.Capabilities.Has(m.CapCLI):
		return "CLI (clap)"
	case unit.Capabilities.Has(m.CapBrowser):
		return "WASM"
	default:
		return "library"
	}
}

func unitLine(unit m.Unit) string {
	return fmt.Sprintf("Checking: %s [%s] (%s)", unit.ManifestPath, unit.Name, UnitKind(unit))
}

func renderUnitsTable(units []m.Unit) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Crate", "Kind", "Capabilities", "Manifest"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, unit := range units {
		table.Append([]string{unit.Name, UnitKind(unit), unit.Capabilities.String(), string(unit.ManifestPath)})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(units)), "", "", ""})
	table.Render()

	return tableBuffer.String()
}
