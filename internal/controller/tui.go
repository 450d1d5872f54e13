package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/softwarewrighter/sw-checklist/internal/model"
)

const pagerFooterHeight = 1

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	passStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI with styled output, paging results that do not fit
// the terminal.
type TUI struct {
	output   io.Writer
	progress ProgressManager

	mu      sync.Mutex
	verbose bool
}

// NewTUI creates a new TUI. A nil progress manager disables progress.
func NewTUI(output io.Writer, progress ProgressManager) *TUI {
	if progress == nil {
		progress = &NoOpProgressManager{}
	}

	return &TUI{output: output, progress: progress}
}

// Start initializes the UI.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.verbose = cfg.verbose
	if !cfg.verbose && cfg.units > 1 {
		p.progress.Start(cfg.units)
	}

	return nil
}

// Close finalizes the UI.
func (p *TUI) Close(_ context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.progress.Finish()
}

// DisplayHeader prints the project line and project type.
func (p *TUI) DisplayHeader(ctx context.Context, header Header) {
	if err := ctx.Err(); err != nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var b strings.Builder

	writeHeader(&b, header)

	for _, line := range strings.Split(strings.TrimRight(b.String(), "\n"), "\n") {
		if line != "" {
			line = titleStyle.Render(line)
		}

		_, _ = fmt.Fprintln(p.output, line)
	}

	_, _ = fmt.Fprintln(p.output)
}

// DisplayUnitDone reports a finished unit. It is safe for concurrent use.
func (p *TUI) DisplayUnitDone(_ context.Context, unit m.Unit) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.verbose {
		_, _ = fmt.Fprintln(p.output, faintStyle.Render(unitLine(unit)))
		return
	}

	p.progress.Increment(unit.Name)
}

// DisplayResults prints styled results, opening a pager when they are
// taller than the terminal.
func (p *TUI) DisplayResults(ctx context.Context, results []m.CheckResult, summary m.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.progress.Finish()

	var b bytes.Buffer

	writeResults(&b, results, styledStatusLabel)
	fmt.Fprintf(&b, "\n%s\n", styledSummary(summary))

	content := b.String()

	width, height, ok := terminalSize(p.output)
	if !ok || strings.Count(content, "\n") < height {
		_, err := fmt.Fprint(p.output, content)
		return err
	}

	program := tea.NewProgram(newPagerModel(content, width, height), tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(p.output, styledSummary(summary))

	return err
}

// DisplayUnits prints a table of discovered units.
func (p *TUI) DisplayUnits(ctx context.Context, units []m.Unit) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if len(units) == 0 {
		_, err := fmt.Fprintln(p.output, warnStyle.Render("No Cargo.toml files found"))
		return err
	}

	_, err := fmt.Fprint(p.output, renderUnitsTable(units))

	return err
}

func styledStatusLabel(status m.Status) string {
	label := plainStatusLabel(status)

	switch status {
	case m.StatusPass:
		return passStyle.Render(label)
	case m.StatusWarn:
		return warnStyle.Render(label)
	default:
		return failStyle.Render(label)
	}
}

func styledSummary(summary m.Summary) string {
	line := SummaryLine(summary)

	switch {
	case summary.Failed > 0:
		return failStyle.Render(line)
	case summary.Warnings > 0:
		return warnStyle.Render(line)
	default:
		return passStyle.Render(line)
	}
}

// pagerModel scrolls long result lists.
type pagerModel struct {
	viewport viewport.Model
	quitting bool
}

func newPagerModel(content string, width, height int) pagerModel {
	vp := viewport.New(width, max(height-pagerFooterHeight, 1))
	vp.SetContent(content)

	return pagerModel{viewport: vp}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			pm.quitting = true
			return pm, tea.Quit
		}
	case tea.WindowSizeMsg:
		pm.viewport.Width = msg.Width
		pm.viewport.Height = max(msg.Height-pagerFooterHeight, 1)
	}

	var cmd tea.Cmd

	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	footer := faintStyle.Render(fmt.Sprintf("%3.f%% • ↑/↓ scroll • q quit", pm.viewport.ScrollPercent()*100))

	return pm.viewport.View() + "\n" + footer
}
