package domain

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/softwarewrighter/sw-checklist/internal/adapter"
	m "github.com/softwarewrighter/sw-checklist/internal/model"
)

// ComponentsDir is the directory that marks a multi-component layout.
const ComponentsDir = "components"

// Group is a named set of units subject to a count limit.
type Group struct {
	Name  string
	Units []m.Unit
}

// GroupCounter classifies the number of units per project or per component.
type GroupCounter interface {
	Count(root m.Path, units []m.Unit) []m.CheckResult
}

type groupCounter struct {
	adapter.SourceFSAdapter
	thresholds m.Thresholds
}

// NewGroupCounter constructs a GroupCounter.
func NewGroupCounter(fsAdapter adapter.SourceFSAdapter, thresholds m.Thresholds) GroupCounter {
	return &groupCounter{
		SourceFSAdapter: fsAdapter,
		thresholds:      thresholds,
	}
}

func (g *groupCounter) Count(root m.Path, units []m.Unit) []m.CheckResult {
	if g.isMultiComponent(root) {
		return g.countComponents(root, units)
	}

	count := countCrates(units)

	return []m.CheckResult{g.classify("Project Crate Count", "Project", count)}
}

// isMultiComponent reports whether root has no manifest of its own but has a
// components directory.
func (g *groupCounter) isMultiComponent(root m.Path) bool {
	if g.Exists(g.JoinPath(string(root), ManifestFileName)) {
		return false
	}

	return g.IsDir(g.JoinPath(string(root), ComponentsDir))
}

func (g *groupCounter) countComponents(root m.Path, units []m.Unit) []m.CheckResult {
	groups := g.componentGroups(root, units)

	var results []m.CheckResult

	for _, group := range groups {
		name := fmt.Sprintf("Component Crate Count [%s]", group.Name)
		results = append(results, g.classify(name, "Component "+group.Name, countCrates(group.Units)))
	}

	if len(groups) > g.thresholds.MaxComponents {
		results = append(results, m.Warn("Component Count",
			fmt.Sprintf("Project has %d components (warning at >%d)", len(groups), g.thresholds.MaxComponents)))
	}

	return results
}

// componentGroups buckets units by components/<name>, sorted by name. Units
// outside the components directory belong to no group.
func (g *groupCounter) componentGroups(root m.Path, units []m.Unit) []Group {
	byName := map[string]*Group{}

	for _, unit := range units {
		rel, err := g.RelPath(root, unit.RootDir)
		if err != nil {
			continue
		}

		parts := strings.Split(filepath.ToSlash(string(rel)), "/")
		if len(parts) < 2 || parts[0] != ComponentsDir {
			continue
		}

		group, ok := byName[parts[1]]
		if !ok {
			group = &Group{Name: parts[1]}
			byName[parts[1]] = group
		}

		group.Units = append(group.Units, unit)
	}

	groups := make([]Group, 0, len(byName))
	for _, group := range byName {
		groups = append(groups, *group)
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })

	return groups
}

func (g *groupCounter) classify(name, subject string, count int) m.CheckResult {
	tier := g.thresholds.GroupUnits

	switch tier.Classify(count) {
	case m.StatusFail:
		return m.Fail(name, fmt.Sprintf("%s has %d crates (max %d)", subject, count, tier.Fail))
	case m.StatusWarn:
		return m.Warn(name, fmt.Sprintf("%s has %d crates (warning at >%d, max %d)", subject, count, tier.Warn, tier.Fail))
	default:
		return m.Pass(name, fmt.Sprintf("%s has %d crates (%d or fewer)", subject, count, tier.Warn))
	}
}

// countCrates counts units that are not virtual workspace manifests.
func countCrates(units []m.Unit) int {
	count := 0

	for _, unit := range units {
		if !unit.Workspace {
			count++
		}
	}

	return count
}
