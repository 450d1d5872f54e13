package handlers

import (
	"context"

	"github.com/softwarewrighter/sw-checklist/internal/adapter"
	m "github.com/softwarewrighter/sw-checklist/internal/model"
)

// InstallerName is the tool expected in the install directory.
const InstallerName = "sw-install"

// ResolveInstallDir returns configured when set, otherwise
// ~/.local/softwarewrighter/bin. It returns "" when no home directory is known.
func ResolveInstallDir(fs adapter.SourceFSAdapter, configured string) m.Path {
	if configured != "" {
		return m.Path(configured)
	}

	home, err := fs.HomeDir()
	if err != nil || home == "" {
		return ""
	}

	return fs.JoinPath(string(home), ".local", "softwarewrighter", "bin")
}

// InstallAdvisory checks that the installer is present.
type InstallAdvisory struct {
	fs         adapter.SourceFSAdapter
	installDir m.Path
}

// NewInstallAdvisory constructs an InstallAdvisory.
func NewInstallAdvisory(fs adapter.SourceFSAdapter, installDir m.Path) *InstallAdvisory {
	return &InstallAdvisory{fs: fs, installDir: installDir}
}

// Name returns the advisory name.
func (a *InstallAdvisory) Name() string {
	return "install"
}

// Check looks for the installer in the install directory.
func (a *InstallAdvisory) Check(_ context.Context, _ m.Path) []m.CheckResult {
	const name = "sw-install Check"

	if a.installDir == "" {
		return []m.CheckResult{m.Warn(name, "Could not determine HOME directory")}
	}

	if a.fs.Exists(a.fs.JoinPath(string(a.installDir), InstallerName)) {
		return []m.CheckResult{m.Pass(name, "sw-install is installed")}
	}

	return []m.CheckResult{m.Warn(name,
		"sw-install is not installed. Install from: https://github.com/softwarewrighter/sw-install")}
}
