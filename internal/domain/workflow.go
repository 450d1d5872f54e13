package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/softwarewrighter/sw-checklist/internal/adapter"
	"github.com/softwarewrighter/sw-checklist/internal/controller"
	m "github.com/softwarewrighter/sw-checklist/internal/model"
)

// UnknownProjectType labels a tree without manifests.
const UnknownProjectType = "Unknown"

// CheckArgs contains the arguments for a check run.
type CheckArgs struct {
	Root     m.Path
	Report   m.Path
	Parallel uint
	Verbose  bool
	Version  string
}

// ListArgs contains the arguments for listing units.
type ListArgs struct {
	Root m.Path
}

// ViewArgs contains the arguments for re-displaying a saved report.
type ViewArgs struct {
	Report m.Path
}

// Workflow defines the user-facing operations of the checker.
type Workflow interface {
	// Check runs every check under args.Root. It returns a *CheckExitError
	// when the verdict is not a success.
	Check(ctx context.Context, args CheckArgs) error
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.ReportStore
	controller.UI
	Locator
	Orchestrator
	GroupCounter
	advisories []Advisory
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(
	reportStore adapter.ReportStore,
	ui controller.UI,
	locator Locator,
	orchestrator Orchestrator,
	groupCounter GroupCounter,
	advisories ...Advisory,
) Workflow {
	return &workflow{
		ReportStore:  reportStore,
		UI:           ui,
		Locator:      locator,
		Orchestrator: orchestrator,
		GroupCounter: groupCounter,
		advisories:   advisories,
	}
}

func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	root, err := absRoot(args.Root)
	if err != nil {
		return err
	}

	manifests, err := w.Locate(root)
	if err != nil {
		slog.Error("Failed to locate manifests", "root", root, "error", err)
		return fmt.Errorf("locate manifests: %w", err)
	}

	if len(manifests) == 0 {
		if err := w.begin(ctx, args, controller.Header{Root: root, ProjectType: UnknownProjectType}, 0); err != nil {
			return err
		}

		return w.finish(ctx, args, m.Report{
			Root:        root,
			ProjectType: UnknownProjectType,
			Results: []m.CheckResult{
				m.Fail("Project Type", "No Cargo.toml files found - no checks available"),
			},
		})
	}

	units := w.Units(manifests)
	header := controller.Header{Root: root, ProjectType: ProjectType(units), Manifests: len(manifests)}

	if err := w.begin(ctx, args, header, len(units)); err != nil {
		return err
	}

	unitResults, err := w.CheckUnits(ctx, root, units, RunOptions{
		Parallel: args.Parallel,
		Verbose:  args.Verbose,
		OnUnitDone: func(unit m.Unit) {
			w.DisplayUnitDone(ctx, unit)
		},
	})
	if err != nil {
		w.Close(ctx)
		return err
	}

	results, _ := Aggregate(unitResults, w.Count(root, units), w.runAdvisories(ctx, root))

	return w.finish(ctx, args, m.Report{
		Root:        root,
		ProjectType: header.ProjectType,
		Manifests:   header.Manifests,
		Results:     results,
	})
}

func (w *workflow) begin(ctx context.Context, args CheckArgs, header controller.Header, units int) error {
	if err := w.Start(ctx, controller.WithUnits(units), controller.WithVerbose(args.Verbose)); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return fmt.Errorf("start ui: %w", err)
	}

	w.DisplayHeader(ctx, header)

	return nil
}

// finish displays and persists report and turns its verdict into an error.
func (w *workflow) finish(ctx context.Context, args CheckArgs, report m.Report) error {
	report.Summary = Summarize(report.Results)
	report.GeneratedAt = time.Now().UTC().Format(time.RFC3339)
	report.Version = args.Version

	displayErr := w.DisplayResults(ctx, report.Results, report.Summary)
	w.Close(ctx)

	if displayErr != nil {
		return fmt.Errorf("display results: %w", displayErr)
	}

	if args.Report != "" {
		if err := w.SaveReport(args.Report, report); err != nil {
			slog.Error("Failed to save report", "path", args.Report, "error", err)
			return fmt.Errorf("save report: %w", err)
		}
	}

	slog.Info("Check finished", "root", report.Root, "passed", report.Summary.Passed,
		"failed", report.Summary.Failed, "warnings", report.Summary.Warnings)

	if report.Summary.ExitCode != 0 {
		return &CheckExitError{Code: report.Summary.ExitCode}
	}

	return nil
}

func (w *workflow) runAdvisories(ctx context.Context, root m.Path) []m.CheckResult {
	var results []m.CheckResult

	for _, advisory := range w.advisories {
		slog.Debug("Running advisory", "advisory", advisory.Name())
		results = append(results, advisory.Check(ctx, root)...)
	}

	return results
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	root, err := absRoot(args.Root)
	if err != nil {
		return err
	}

	manifests, err := w.Locate(root)
	if err != nil {
		return fmt.Errorf("locate manifests: %w", err)
	}

	if err := w.DisplayUnits(ctx, w.Units(manifests)); err != nil {
		return fmt.Errorf("display units: %w", err)
	}

	return nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.LoadReport(args.Report)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	w.DisplayHeader(ctx, controller.Header{Root: report.Root, ProjectType: report.ProjectType, Manifests: report.Manifests})

	if err := w.DisplayResults(ctx, report.Results, report.Summary); err != nil {
		return fmt.Errorf("display results: %w", err)
	}

	return nil
}

func absRoot(root m.Path) (m.Path, error) {
	if root == "" {
		root = "."
	}

	abs, err := filepath.Abs(string(root))
	if err != nil {
		return "", fmt.Errorf("failed to access project path %s: %w", root, err)
	}

	return m.Path(abs), nil
}

// ProjectType labels the whole tree from the manifests it contains.
func ProjectType(units []m.Unit) string {
	var hasCLI, hasWASM, hasYew bool

	for _, unit := range units {
		text := unit.Manifest.Text
		hasCLI = hasCLI || strings.Contains(text, "clap")
		hasWASM = hasWASM || strings.Contains(text, "wasm-bindgen")
		hasYew = hasYew || strings.Contains(text, "yew")
	}

	switch {
	case hasCLI && hasYew:
		return "CLI + Yew"
	case hasCLI && hasWASM:
		return "CLI + WASM"
	case hasYew:
		return "Yew (WASM)"
	case hasWASM:
		return "WASM"
	case hasCLI:
		return "CLI"
	default:
		return "Rust Library"
	}
}
