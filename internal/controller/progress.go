package controller

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// ProgressManager reports per-unit progress while checks run.
type ProgressManager interface {
	Start(total int)
	Increment(description string)
	Finish()
}

// NewProgressManager returns a bar writing to w when enabled and w is a
// terminal, and a no-op manager otherwise.
func NewProgressManager(w io.Writer, enabled bool) ProgressManager {
	if enabled && IsTerminal(w) {
		return &barProgressManager{writer: w}
	}

	return &NoOpProgressManager{}
}

type barProgressManager struct {
	writer io.Writer
	bar    *progressbar.ProgressBar
}

func (pm *barProgressManager) Start(total int) {
	pm.Finish()

	pm.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(pm.writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(18),
		progressbar.OptionSetDescription("Checking crates"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (pm *barProgressManager) Increment(description string) {
	if pm.bar == nil {
		return
	}

	pm.bar.Describe(description)
	_ = pm.bar.Add(1)
}

func (pm *barProgressManager) Finish() {
	if pm.bar == nil {
		return
	}

	_ = pm.bar.Finish()
	pm.bar = nil
}

// NoOpProgressManager discards progress.
type NoOpProgressManager struct{}

// Start is a no-op.
func (pm *NoOpProgressManager) Start(_ int) {}

// Increment is a no-op.
func (pm *NoOpProgressManager) Increment(_ string) {}

// Finish is a no-op.
func (pm *NoOpProgressManager) Finish() {}
