// Package controller provides output adapters for displaying check results.
package controller

import (
	"context"

	m "github.com/softwarewrighter/sw-checklist/internal/model"
)

// Header describes the run being displayed.
type Header struct {
	Root        m.Path
	ProjectType string
	Manifests   int
}

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	units   int
	verbose bool
}

// WithUnits announces how many units will be checked so progress can be shown.
func WithUnits(count int) StartOption {
	return func(c *StartConfig) {
		c.units = count
	}
}

// WithVerbose enables per-unit output.
func WithVerbose(verbose bool) StartOption {
	return func(c *StartConfig) {
		c.verbose = verbose
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines how check runs are presented.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayHeader(ctx context.Context, header Header)
	DisplayUnitDone(ctx context.Context, unit m.Unit)
	DisplayResults(ctx context.Context, results []m.CheckResult, summary m.Summary) error
	DisplayUnits(ctx context.Context, units []m.Unit) error
}
