package domain

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/softwarewrighter/sw-checklist/internal/adapter"
	m "github.com/softwarewrighter/sw-checklist/internal/model"
)

// ManifestFileName is the file that declares a unit.
const ManifestFileName = "Cargo.toml"

// Locator discovers manifests and turns them into classified units.
type Locator interface {
	// Locate returns every manifest path under root in lexical walk order.
	Locate(root m.Path) ([]m.Path, error)
	// Units reads and classifies each manifest. An unreadable manifest still
	// yields a unit named model.UnknownName with the read error in
	// Manifest.ParseErr.
	Units(manifests []m.Path) []m.Unit
}

type locator struct {
	adapter.SourceFSAdapter
	adapter.ManifestReader
	Classifier
}

// NewLocator constructs a Locator.
func NewLocator(fsAdapter adapter.SourceFSAdapter, reader adapter.ManifestReader, classifier Classifier) Locator {
	return &locator{
		SourceFSAdapter: fsAdapter,
		ManifestReader:  reader,
		Classifier:      classifier,
	}
}

func (l *locator) Locate(root m.Path) ([]m.Path, error) {
	if !l.IsDir(root) {
		return nil, fmt.Errorf("root path %s is not a directory", root)
	}

	var manifests []m.Path

	err := l.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			slog.Debug("Skipping unreadable entry", "path", path, "error", err)
			return nil
		}

		if !info.IsDir() && info.Name() == ManifestFileName {
			manifests = append(manifests, m.Path(path))
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	return manifests, nil
}

func (l *locator) Units(manifests []m.Path) []m.Unit {
	units := make([]m.Unit, 0, len(manifests))

	for _, path := range manifests {
		manifest, err := l.ReadManifest(path)
		if err != nil {
			slog.Error("Failed to read manifest", "path", path, "error", err)
			manifest = m.Manifest{PackageName: m.UnknownName, ParseErr: err}
		}

		unit := m.Unit{
			ManifestPath: path,
			RootDir:      m.Path(filepath.Dir(string(path))),
			Name:         manifest.PackageName,
			Workspace:    l.IsWorkspace(manifest.Text),
			Manifest:     manifest,
		}
		unit.Capabilities = l.Classify(manifest.Text)

		units = append(units, unit)
	}

	return units
}
