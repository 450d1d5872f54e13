package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/softwarewrighter/sw-checklist/internal/adapter"
	m "github.com/softwarewrighter/sw-checklist/internal/model"
)

// VersionFields are looked up in a binary's --version output.
var VersionFields = []FieldSpec{
	{Name: "Copyright", Patterns: []string{"copyright"}},
	{Name: "License", Patterns: []string{"license", "mit", "apache", "gpl", "bsd"}},
	{Name: "Repository", Patterns: []string{"repository", "github.com", "gitlab.com", "bitbucket.org"}},
	{Name: "Build Host", Patterns: []string{"build host", "build-host", "host"}},
	{Name: "Build Commit", Patterns: []string{"build commit", "build-commit", "commit", "sha", "git"}},
	{Name: "Build Time", Patterns: []string{"build time", "build-time", "timestamp", "built"}},
}

var agentMarkers = []string{"AI CODING AGENT", "AI Coding Agent"}

// CLIHandler runs a unit's built binaries and inspects their help and
// version output.
type CLIHandler struct {
	fs         adapter.SourceFSAdapter
	runner     adapter.BinaryRunnerAdapter
	installDir m.Path
}

// NewCLIHandler constructs a CLIHandler. installDir is where released
// binaries live; empty means it could not be determined.
func NewCLIHandler(fs adapter.SourceFSAdapter, runner adapter.BinaryRunnerAdapter, installDir m.Path) *CLIHandler {
	return &CLIHandler{fs: fs, runner: runner, installDir: installDir}
}

// Name returns the handler name.
func (h *CLIHandler) Name() string {
	return "cli"
}

// Handles selects CLI units that are not virtual workspaces.
func (h *CLIHandler) Handles(unit m.Unit) bool {
	return unit.Capabilities.Has(m.CapCLI) && !unit.Workspace
}

// Check runs the CLI checks for one unit.
func (h *CLIHandler) Check(ctx context.Context, cc m.CheckContext) []m.CheckResult {
	unit := cc.Unit
	results := []m.CheckResult{dependencyResult(unit)}

	found := false

	for _, bin := range binaryNames(unit) {
		path, ok := h.findBinary(cc.ProjectRoot, bin)
		if !ok {
			slog.Debug("Binary not found", "unit", unit.Name, "binary", bin)
			continue
		}

		found = true

		slog.Debug("Checking binary", "path", path)

		label := binaryLabel(unit.Name, bin)
		results = append(results, h.checkHelp(ctx, path, label)...)
		results = append(results, h.checkVersion(ctx, path, label)...)
		results = append(results, h.checkFreshness(bin, path))
	}

	if !found {
		results = append(results, m.Fail(fmt.Sprintf("Binary Check [%s]", unit.Name),
			fmt.Sprintf("Could not find built binaries for %s. Run 'cargo build --release' first.", unit.Name)))
	}

	return append(results, checkTests(h.fs, unit, unit.Capabilities.Has(m.CapBrowser)))
}

func dependencyResult(unit m.Unit) m.CheckResult {
	name := fmt.Sprintf("Clap Dependency [%s]", unit.Name)
	if strings.Contains(unit.Manifest.Text, "clap") {
		return m.Pass(name, fmt.Sprintf("Found clap dependency in %s", unit.Name))
	}

	return m.Pass(name, fmt.Sprintf("Found [[bin]] target in %s", unit.Name))
}

// binaryNames returns the declared [[bin]] targets, or the package name.
func binaryNames(unit m.Unit) []string {
	if len(unit.Manifest.BinaryNames) > 0 {
		return unit.Manifest.BinaryNames
	}

	return []string{unit.Name}
}

func binaryLabel(unitName, bin string) string {
	if unitName == bin {
		return fmt.Sprintf("[%s]", unitName)
	}

	return fmt.Sprintf("[%s/%s]", unitName, bin)
}

// findBinary looks in target/release then target/debug under root, then
// under each components/<name> directory.
func (h *CLIHandler) findBinary(root m.Path, bin string) (m.Path, bool) {
	if path, ok := h.findInTarget(root, bin); ok {
		return path, true
	}

	componentsDir := h.fs.JoinPath(string(root), "components")

	entries, err := h.fs.ReadDir(componentsDir)
	if err != nil {
		return "", false
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		if path, ok := h.findInTarget(h.fs.JoinPath(string(componentsDir), entry.Name()), bin); ok {
			return path, true
		}
	}

	return "", false
}

func (h *CLIHandler) findInTarget(dir m.Path, bin string) (m.Path, bool) {
	for _, profile := range []string{"release", "debug"} {
		path := h.fs.JoinPath(string(dir), "target", profile, bin)

		info, err := h.fs.FileInfo(path)
		if err == nil && !info.IsDir() {
			return path, true
		}
	}

	return "", false
}

func (h *CLIHandler) checkHelp(ctx context.Context, bin m.Path, label string) []m.CheckResult {
	short, shortErr := h.runner.Run(ctx, bin, "-h")
	long, longErr := h.runner.Run(ctx, bin, "--help")

	switch {
	case shortErr != nil:
		return []m.CheckResult{m.Fail("Help -h "+label, fmt.Sprintf("Failed to run -h: %v", shortErr))}
	case longErr != nil:
		return []m.CheckResult{m.Fail("Help --help "+label, fmt.Sprintf("Failed to run --help: %v", longErr))}
	}

	slog.Debug("Help output", "binary", bin, "short_bytes", len(short), "long_bytes", len(long))

	results := make([]m.CheckResult, 0, 2)

	if len(long) > len(short) {
		results = append(results, m.Pass("Help Length "+label,
			fmt.Sprintf("--help (%d bytes) is longer than -h (%d bytes)", len(long), len(short))))
	} else {
		results = append(results, m.Fail("Help Length "+label,
			fmt.Sprintf("--help (%d bytes) should be longer than -h (%d bytes)", len(long), len(short))))
	}

	if containsAny(long, agentMarkers) {
		results = append(results, m.Pass("AI Agent Instructions "+label, "Found AI Coding Agent section"))
	} else {
		results = append(results, m.Fail("AI Agent Instructions "+label,
			"--help should include an 'AI CODING AGENT INSTRUCTIONS' section"))
	}

	return results
}

func (h *CLIHandler) checkVersion(ctx context.Context, bin m.Path, label string) []m.CheckResult {
	short, shortErr := h.runner.Run(ctx, bin, "-V")
	long, longErr := h.runner.Run(ctx, bin, "--version")

	switch {
	case shortErr != nil:
		return []m.CheckResult{m.Fail("Version -V "+label, fmt.Sprintf("Failed to run -V: %v", shortErr))}
	case longErr != nil:
		return []m.CheckResult{m.Fail("Version --version "+label, fmt.Sprintf("Failed to run --version: %v", longErr))}
	}

	results := make([]m.CheckResult, 0, 1+len(VersionFields))

	if short == long {
		results = append(results, m.Pass("Version Consistency "+label, "-V and --version produce identical output"))
	} else {
		diff := versionDiff(short, long)
		slog.Debug("Version outputs differ", "binary", bin, "diff", diff)
		results = append(results, m.Fail("Version Consistency "+label,
			fmt.Sprintf("-V and --version should produce identical output (%s)", changedLines(diff))))
	}

	lower := strings.ToLower(long)
	for _, field := range VersionFields {
		name := fmt.Sprintf("Version Field: %s %s", field.Name, label)
		if field.Matches(lower) {
			results = append(results, m.Pass(name, fmt.Sprintf("Found %s in version output", field.Name)))
		} else {
			results = append(results, m.Fail(name, fmt.Sprintf("%s info not present in -V/--version output", field.Name)))
		}
	}

	return results
}

func versionDiff(short, long string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(short),
		B:        difflib.SplitLines(long),
		FromFile: "-V",
		ToFile:   "--version",
		Context:  1,
	})
	if err != nil {
		return err.Error()
	}

	return diff
}

// maxDiffLines bounds the changed lines quoted in a result message.
const maxDiffLines = 4

// changedLines condenses a unified diff to its first changed lines.
func changedLines(diff string) string {
	var changed []string

	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, "---") || strings.HasPrefix(line, "+++") {
			continue
		}

		if !strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "+") {
			continue
		}

		changed = append(changed, strings.TrimRight(line, " \t\r"))
	}

	if len(changed) > maxDiffLines {
		changed = append(changed[:maxDiffLines], "...")
	}

	return strings.Join(changed, "; ")
}

func (h *CLIHandler) checkFreshness(bin string, built m.Path) m.CheckResult {
	name := fmt.Sprintf("Binary Freshness [%s]", bin)

	if h.installDir == "" {
		return m.Warn(name, "Could not determine HOME directory")
	}

	installed, err := h.fs.FileInfo(h.fs.JoinPath(string(h.installDir), bin))
	if err != nil {
		return m.Warn(name, fmt.Sprintf("%s is not installed (run sw-install)", bin))
	}

	local, err := h.fs.FileInfo(built)
	if err != nil {
		return m.Warn(name, "Could not compare binary timestamps")
	}

	if local.ModTime().After(installed.ModTime()) {
		return m.Warn(name, "Built binary is newer (run sw-install to update)")
	}

	return m.Pass(name, "Installed binary is up to date")
}

func containsAny(text string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(text, marker) {
			return true
		}
	}

	return false
}
