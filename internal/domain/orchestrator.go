package domain

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	m "github.com/softwarewrighter/sw-checklist/internal/model"
)

// Handler is a family of checks applied to units it handles.
type Handler interface {
	Name() string
	Handles(unit m.Unit) bool
	Check(ctx context.Context, cc m.CheckContext) []m.CheckResult
}

// Advisory is a whole-run check that does not belong to any unit.
type Advisory interface {
	Name() string
	Check(ctx context.Context, root m.Path) []m.CheckResult
}

// RunOptions controls how units are dispatched.
type RunOptions struct {
	Parallel uint
	Verbose  bool
	// OnUnitDone is invoked after each unit completes. It may be called
	// from several goroutines at once.
	OnUnitDone func(unit m.Unit)
}

// Orchestrator decides which handlers run against each unit and collects
// their results.
type Orchestrator interface {
	CheckUnit(ctx context.Context, root m.Path, unit m.Unit, verbose bool) []m.CheckResult
	// CheckUnits returns one result slice per unit, in unit order.
	CheckUnits(ctx context.Context, root m.Path, units []m.Unit, opts RunOptions) ([][]m.CheckResult, error)
}

type orchestrator struct {
	analyzer StructureAnalyzer
	handlers []Handler
}

// NewOrchestrator constructs an Orchestrator. The analyzer runs for every
// unit; handlers run in the given order for units they handle.
func NewOrchestrator(analyzer StructureAnalyzer, handlers ...Handler) Orchestrator {
	return &orchestrator{
		analyzer: analyzer,
		handlers: handlers,
	}
}

func (o *orchestrator) CheckUnit(ctx context.Context, root m.Path, unit m.Unit, verbose bool) []m.CheckResult {
	cc := m.CheckContext{ProjectRoot: root, Unit: unit, Verbose: verbose}

	slog.Debug("Checking unit", "name", unit.Name, "manifest", unit.ManifestPath, "capabilities", unit.Capabilities.String(), "workspace", unit.Workspace)

	var results []m.CheckResult

	if unit.Manifest.ParseErr != nil {
		results = append(results, m.Warn(fmt.Sprintf("Manifest [%s]", unit.Name),
			fmt.Sprintf("Failed to load %s: %v; type-specific checks skipped", unit.ManifestPath, unit.Manifest.ParseErr)))
	}

	results = append(results, o.analyzer.Check(ctx, cc)...)

	if unit.Manifest.ParseErr != nil {
		return results
	}

	for _, handler := range o.handlers {
		if !handler.Handles(unit) {
			continue
		}

		slog.Debug("Running handler", "handler", handler.Name(), "unit", unit.Name)
		results = append(results, handler.Check(ctx, cc)...)
	}

	return results
}

func (o *orchestrator) CheckUnits(ctx context.Context, root m.Path, units []m.Unit, opts RunOptions) ([][]m.CheckResult, error) {
	results := make([][]m.CheckResult, len(units))

	var group errgroup.Group
	if opts.Parallel > 0 {
		group.SetLimit(int(opts.Parallel))
	}

	for i, unit := range units {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = o.CheckUnit(ctx, root, unit, opts.Verbose)

			if opts.OnUnitDone != nil {
				opts.OnUnitDone(unit)
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return results, fmt.Errorf("check units: %w", err)
	}

	return results, nil
}
