// Package version holds build metadata injected with -ldflags.
package version

import (
	"fmt"
	"os"
	"runtime/debug"
)

const unknown = "unknown"

// Overridden at build time, e.g.
//
//	-X github.com/softwarewrighter/sw-checklist/internal/version.Commit=$(git rev-parse HEAD)
var (
	Version    = "0.1.0"
	Commit     = ""
	BuildTime  = ""
	BuildHost  = ""
	Repository = "https://github.com/softwarewrighter/sw-checklist"
)

// Info is the resolved build metadata.
type Info struct {
	Version    string
	Commit     string
	BuildTime  string
	BuildHost  string
	Repository string
}

// Get resolves build metadata, falling back to the module's VCS stamp and
// the local hostname for values not set at link time.
func Get() Info {
	info := Info{
		Version:    Version,
		Commit:     Commit,
		BuildTime:  BuildTime,
		BuildHost:  BuildHost,
		Repository: Repository,
	}

	if build, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range build.Settings {
			switch setting.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = setting.Value
				}
			case "vcs.time":
				if info.BuildTime == "" {
					info.BuildTime = setting.Value
				}
			}
		}
	}

	if info.BuildHost == "" {
		if host, err := os.Hostname(); err == nil {
			info.BuildHost = host
		}
	}

	info.Commit = orUnknown(info.Commit)
	info.BuildTime = orUnknown(info.BuildTime)
	info.BuildHost = orUnknown(info.BuildHost)

	return info
}

// Long renders the multi-line version block printed by -V and --version.
func (i Info) Long() string {
	return fmt.Sprintf("%s\n\nCopyright (c) 2025 Michael A Wright\nMIT License\n\n"+
		"Repository: %s\nBuild Host: %s\nBuild Commit: %s\nBuild Time: %s",
		i.Version, i.Repository, i.BuildHost, i.Commit, i.BuildTime)
}

func orUnknown(value string) string {
	if value == "" {
		return unknown
	}

	return value
}
