package domain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/softwarewrighter/sw-checklist/internal/adapter"
	adaptermocks "github.com/softwarewrighter/sw-checklist/internal/adapter/mocks"
	"github.com/softwarewrighter/sw-checklist/internal/controller"
	controllermocks "github.com/softwarewrighter/sw-checklist/internal/controller/mocks"
	"github.com/softwarewrighter/sw-checklist/internal/domain/handlers"
	m "github.com/softwarewrighter/sw-checklist/internal/model"
)

func newTestWorkflow(ui controller.UI, store adapter.ReportStore, runner adapter.BinaryRunnerAdapter) Workflow {
	fs := adapter.NewLocalSourceFSAdapter()
	thresholds := m.DefaultThresholds()

	orchestrator := NewOrchestrator(
		NewStructureAnalyzer(fs, thresholds),
		handlers.NewCLIHandler(fs, runner, ""),
		handlers.NewWebHandler(fs),
	)

	return NewWorkflow(
		store,
		ui,
		NewLocator(fs, adapter.NewLocalManifestReader(fs), NewClassifier()),
		orchestrator,
		NewGroupCounter(fs, thresholds),
	)
}

// expectCheckRun registers the UI calls of a check run and captures the
// displayed results.
func expectCheckRun(ui *controllermocks.MockUI, captured *[]m.CheckResult) {
	ui.On("Start", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	ui.On("DisplayHeader", mock.Anything, mock.Anything).Return()
	ui.On("DisplayUnitDone", mock.Anything, mock.Anything).Return().Maybe()
	ui.On("DisplayResults", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		*captured = args.Get(1).([]m.CheckResult)
	}).Return(nil)
	ui.On("Close", mock.Anything).Return()
}

func TestWorkflow_Check_NoManifests(t *testing.T) {
	root := t.TempDir()
	reportPath := m.Path(filepath.Join(root, "out", "report.yaml"))

	ui := controllermocks.NewMockUI(t)
	store := adaptermocks.NewMockReportStore(t)

	var captured []m.CheckResult
	expectCheckRun(ui, &captured)

	store.On("SaveReport", reportPath, mock.MatchedBy(func(r m.Report) bool {
		return r.ProjectType == UnknownProjectType && r.Summary.ExitCode == 1 && r.Version == "1.2.3"
	})).Return(nil)

	err := newTestWorkflow(ui, store, nil).Check(context.Background(), CheckArgs{
		Root:    m.Path(root),
		Report:  reportPath,
		Version: "1.2.3",
	})

	var exitErr *CheckExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
	assert.Equal(t, []m.CheckResult{
		m.Fail("Project Type", "No Cargo.toml files found - no checks available"),
	}, captured)
	ui.AssertCalled(t, "DisplayHeader", mock.Anything, controller.Header{Root: m.Path(root), ProjectType: UnknownProjectType})
}

func TestWorkflow_Check_LibraryNeverRunsCLIChecks(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Cargo.toml"), "[package]\nname = \"core\"\n")
	writeFile(t, filepath.Join(root, "src", "lib.rs"), fnSource(5))
	writeFile(t, filepath.Join(root, "target", "release", "core"), "#!/bin/sh\necho core\n")

	ui := controllermocks.NewMockUI(t)
	runner := adaptermocks.NewMockBinaryRunnerAdapter(t)

	var captured []m.CheckResult
	expectCheckRun(ui, &captured)

	err := newTestWorkflow(ui, nil, runner).Check(context.Background(), CheckArgs{Root: m.Path(root), Parallel: 1})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Function LOC [core]",
		"File LOC [core]",
		"Module Function Count [core]",
		"Crate Module Count [core]",
		"Project Crate Count",
	}, names(captured))
	runner.AssertNotCalled(t, "Run")
}

func TestWorkflow_Check_UnreadableManifestIsReported(t *testing.T) {
	root := t.TempDir()
	manifest := filepath.Join(root, "a", "Cargo.toml")
	writeFile(t, filepath.Join(root, "a", "src", "lib.rs"), fnSource(3))
	require.NoError(t, os.Symlink(filepath.Join(root, "gone.toml"), manifest))

	ui := controllermocks.NewMockUI(t)

	var captured []m.CheckResult
	expectCheckRun(ui, &captured)

	err := newTestWorkflow(ui, nil, nil).Check(context.Background(), CheckArgs{Root: m.Path(root)})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Manifest [unknown]",
		"Function LOC [unknown]",
		"File LOC [unknown]",
		"Module Function Count [unknown]",
		"Crate Module Count [unknown]",
		"Project Crate Count",
	}, names(captured))
	assert.Equal(t, m.StatusWarn, captured[0].Status())
	assert.Contains(t, captured[0].Message, manifest)
	assert.Contains(t, captured[len(captured)-1].Message, "has 1 crates")
}

func TestWorkflow_Check_CLIWithoutBinaryFails(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Cargo.toml"), "[package]\nname = \"tool\"\n\n[dependencies]\nclap = \"4\"\n")
	writeFile(t, filepath.Join(root, "src", "main.rs"), "fn main() {}\n\n#[cfg(test)]\nmod tests {}\n")

	ui := controllermocks.NewMockUI(t)
	runner := adaptermocks.NewMockBinaryRunnerAdapter(t)

	var captured []m.CheckResult
	expectCheckRun(ui, &captured)

	err := newTestWorkflow(ui, nil, runner).Check(context.Background(), CheckArgs{Root: m.Path(root)})

	var exitErr *CheckExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Contains(t, names(captured), "Binary Check [tool]")
	assert.Contains(t, names(captured), "Tests [tool]")
}

func TestWorkflow_Check_Idempotent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Cargo.toml"), "[workspace]\nmembers = [\"a\", \"b\"]\n")
	writeFile(t, filepath.Join(root, "a", "Cargo.toml"), "[package]\nname = \"a\"\n")
	writeFile(t, filepath.Join(root, "a", "src", "lib.rs"), fnSource(30, 60, 3, 3, 3))
	writeFile(t, filepath.Join(root, "b", "Cargo.toml"), "[package]\nname = \"b\"\n")
	writeFile(t, filepath.Join(root, "b", "src", "lib.rs"), fnSource(3))

	run := func(parallel uint) []m.CheckResult {
		ui := controllermocks.NewMockUI(t)

		var captured []m.CheckResult
		expectCheckRun(ui, &captured)

		err := newTestWorkflow(ui, nil, nil).Check(context.Background(), CheckArgs{Root: m.Path(root), Parallel: parallel})

		var exitErr *CheckExitError
		require.ErrorAs(t, err, &exitErr)

		return captured
	}

	first := run(1)
	second := run(4)

	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first[0].Name, "Modularity ["))
}

func TestWorkflow_Check_MissingRoot(t *testing.T) {
	ui := controllermocks.NewMockUI(t)

	err := newTestWorkflow(ui, nil, nil).Check(context.Background(), CheckArgs{
		Root: m.Path(filepath.Join(t.TempDir(), "missing")),
	})

	require.Error(t, err)

	var exitErr *CheckExitError
	assert.False(t, errors.As(err, &exitErr))
}

func TestWorkflow_Check_SaveReportError(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Cargo.toml"), "[package]\nname = \"core\"\n")

	ui := controllermocks.NewMockUI(t)
	store := adaptermocks.NewMockReportStore(t)

	var captured []m.CheckResult
	expectCheckRun(ui, &captured)
	store.On("SaveReport", m.Path("report.json"), mock.Anything).Return(errors.New("disk full"))

	err := newTestWorkflow(ui, store, nil).Check(context.Background(), CheckArgs{Root: m.Path(root), Report: "report.json"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestWorkflow_List(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "Cargo.toml"), "[package]\nname = \"a\"\n")
	writeFile(t, filepath.Join(root, "b", "Cargo.toml"), "[package]\nname = \"b\"\nclap = \"4\"\n")

	ui := controllermocks.NewMockUI(t)
	ui.On("DisplayUnits", mock.Anything, mock.MatchedBy(func(units []m.Unit) bool {
		return len(units) == 2 && units[0].Name == "a" && units[1].Capabilities == m.CapCLI
	})).Return(nil)

	require.NoError(t, newTestWorkflow(ui, nil, nil).List(context.Background(), ListArgs{Root: m.Path(root)}))
}

func TestWorkflow_View(t *testing.T) {
	report := m.Report{
		Root:        "/proj",
		ProjectType: "CLI",
		Manifests:   2,
		Results:     []m.CheckResult{m.Pass("x", "y")},
		Summary:     m.Summary{Passed: 1},
	}

	ui := controllermocks.NewMockUI(t)
	store := adaptermocks.NewMockReportStore(t)

	store.On("LoadReport", m.Path("report.yaml")).Return(report, nil)
	ui.On("Start", mock.Anything).Return(nil)
	ui.On("DisplayHeader", mock.Anything, controller.Header{Root: "/proj", ProjectType: "CLI", Manifests: 2}).Return()
	ui.On("DisplayResults", mock.Anything, report.Results, report.Summary).Return(nil)
	ui.On("Close", mock.Anything).Return()

	require.NoError(t, newTestWorkflow(ui, store, nil).View(context.Background(), ViewArgs{Report: "report.yaml"}))
}

func TestWorkflow_ViewLoadError(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	store := adaptermocks.NewMockReportStore(t)

	store.On("LoadReport", m.Path("missing.yaml")).Return(m.Report{}, errors.New("not found"))

	err := newTestWorkflow(ui, store, nil).View(context.Background(), ViewArgs{Report: "missing.yaml"})
	assert.Error(t, err)
}
