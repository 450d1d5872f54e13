package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/softwarewrighter/sw-checklist/internal/adapter"
	m "github.com/softwarewrighter/sw-checklist/internal/model"
)

// StructureAnalyzer measures function sizes, per-file function counts, file
// sizes and the number of source files of a unit.
type StructureAnalyzer interface {
	Handler
	Analyze(unit m.Unit) []m.CheckResult
}

type structureAnalyzer struct {
	adapter.SourceFSAdapter
	thresholds m.Thresholds
}

// NewStructureAnalyzer constructs a StructureAnalyzer reading sources through fsAdapter.
func NewStructureAnalyzer(fsAdapter adapter.SourceFSAdapter, thresholds m.Thresholds) StructureAnalyzer {
	return &structureAnalyzer{
		SourceFSAdapter: fsAdapter,
		thresholds:      thresholds,
	}
}

func (a *structureAnalyzer) Name() string {
	return "modularity"
}

func (a *structureAnalyzer) Handles(m.Unit) bool {
	return true
}

func (a *structureAnalyzer) Check(_ context.Context, cc m.CheckContext) []m.CheckResult {
	return a.Analyze(cc.Unit)
}

func (a *structureAnalyzer) Analyze(unit m.Unit) []m.CheckResult {
	srcDir := a.JoinPath(string(unit.RootDir), "src")
	if !a.IsDir(srcDir) {
		return []m.CheckResult{
			m.Pass(fmt.Sprintf("Modularity [%s]", unit.Name), "No src/ directory found, skipping modularity checks"),
		}
	}

	files := a.loadSources(srcDir)

	var results []m.CheckResult

	results = append(results, a.functionResults(unit.Name, files)...)
	results = append(results, a.fileLineResults(unit.Name, files)...)
	results = append(results, a.functionCountResults(unit.Name, files)...)
	results = append(results, a.fileCountResult(unit.Name, len(files)))

	return results
}

// loadSources reads every *.rs file under dir in lexical order. Files that
// cannot be read or are not valid UTF-8 are skipped.
func (a *structureAnalyzer) loadSources(dir m.Path) []m.SourceFile {
	var files []m.SourceFile

	walkErr := a.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			slog.Debug("Skipping unreadable entry", "path", path, "error", err)
			return nil
		}

		if info.IsDir() || filepath.Ext(path) != ".rs" {
			return nil
		}

		data, readErr := a.ReadFile(m.Path(path))
		if readErr != nil {
			slog.Debug("Skipping unreadable source", "path", path, "error", readErr)
			return nil
		}

		if !utf8.Valid(data) {
			slog.Debug("Skipping non UTF-8 source", "path", path)
			return nil
		}

		files = append(files, m.SourceFile{Path: m.Path(path), Lines: SplitLines(string(data))})

		return nil
	})
	if walkErr != nil {
		slog.Error("Failed to walk sources", "dir", dir, "error", walkErr)
	}

	return files
}

func (a *structureAnalyzer) functionResults(unitName string, files []m.SourceFile) []m.CheckResult {
	name := fmt.Sprintf("Function LOC [%s]", unitName)
	tier := a.thresholds.FunctionLines

	var results []m.CheckResult

	for _, file := range files {
		for _, span := range FindFunctions(file.Lines) {
			loc := span.LineCount()

			switch tier.Classify(loc) {
			case m.StatusFail:
				results = append(results, m.Fail(name,
					fmt.Sprintf("'%s' in %s has %d lines (max %d)", span.Name, file.Name(), loc, tier.Fail)))
			case m.StatusWarn:
				results = append(results, m.Warn(name,
					fmt.Sprintf("'%s' in %s has %d lines (warning >%d)", span.Name, file.Name(), loc, tier.Warn)))
			case m.StatusPass:
			}
		}
	}

	if len(results) == 0 {
		results = append(results, m.Pass(name, fmt.Sprintf("All functions are under %d lines", tier.Warn)))
	}

	return results
}

func (a *structureAnalyzer) fileLineResults(unitName string, files []m.SourceFile) []m.CheckResult {
	name := fmt.Sprintf("File LOC [%s]", unitName)
	tier := a.thresholds.FileLines

	var results []m.CheckResult

	for _, file := range files {
		loc := len(file.Lines)

		switch tier.Classify(loc) {
		case m.StatusFail:
			results = append(results, m.Fail(name,
				fmt.Sprintf("%s has %d lines (max %d)", file.Name(), loc, tier.Fail)))
		case m.StatusWarn:
			results = append(results, m.Warn(name,
				fmt.Sprintf("%s has %d lines (warning >%d)", file.Name(), loc, tier.Warn)))
		case m.StatusPass:
		}
	}

	if len(results) == 0 {
		results = append(results, m.Pass(name, fmt.Sprintf("All files are %d or fewer lines", tier.Warn)))
	}

	return results
}

func (a *structureAnalyzer) functionCountResults(unitName string, files []m.SourceFile) []m.CheckResult {
	name := fmt.Sprintf("Module Function Count [%s]", unitName)
	tier := a.thresholds.FileFunctions

	var results []m.CheckResult

	for _, file := range files {
		count := CountFunctionHeaders(file.Lines)

		switch tier.Classify(count) {
		case m.StatusFail:
			results = append(results, m.Fail(name,
				fmt.Sprintf("Module %s has %d functions (max %d)", file.Name(), count, tier.Fail)))
		case m.StatusWarn:
			results = append(results, m.Warn(name,
				fmt.Sprintf("Module %s has %d functions (warning at >%d, max %d)", file.Name(), count, tier.Warn, tier.Fail)))
		case m.StatusPass:
		}
	}

	if len(results) == 0 {
		results = append(results, m.Pass(name, fmt.Sprintf("All modules have %d or fewer functions", tier.Warn)))
	}

	return results
}

func (a *structureAnalyzer) fileCountResult(unitName string, count int) m.CheckResult {
	name := fmt.Sprintf("Crate Module Count [%s]", unitName)
	tier := a.thresholds.UnitFiles

	switch tier.Classify(count) {
	case m.StatusFail:
		return m.Fail(name, fmt.Sprintf("Crate %s has %d modules (max %d)", unitName, count, tier.Fail))
	case m.StatusWarn:
		return m.Warn(name, fmt.Sprintf("Crate %s has %d modules (warning at >%d, max %d)", unitName, count, tier.Warn, tier.Fail))
	default:
		return m.Pass(name, fmt.Sprintf("Crate has %d or fewer modules", tier.Warn))
	}
}
