package adapter

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	m "github.com/softwarewrighter/sw-checklist/internal/model"
)

// ManifestReader loads and decodes Cargo.toml manifests.
type ManifestReader interface {
	// ReadManifest returns the decoded manifest. An error is returned only when
	// the file cannot be read; decode failures are recorded in Manifest.ParseErr.
	ReadManifest(path m.Path) (m.Manifest, error)
}

type cargoPackage struct {
	Name    any `toml:"name"`
	Edition any `toml:"edition"`
}

type cargoTarget struct {
	Name string `toml:"name"`
}

type cargoManifest struct {
	Package   *cargoPackage `toml:"package"`
	Bin       []cargoTarget `toml:"bin"`
	Workspace *struct {
		Package *cargoPackage `toml:"package"`
	} `toml:"workspace"`
}

// LocalManifestReader reads manifests through a SourceFSAdapter.
type LocalManifestReader struct {
	fs SourceFSAdapter
}

// NewLocalManifestReader constructs a LocalManifestReader.
func NewLocalManifestReader(fs SourceFSAdapter) *LocalManifestReader {
	return &LocalManifestReader{fs: fs}
}

// ReadManifest reads and decodes the manifest at path.
func (r *LocalManifestReader) ReadManifest(path m.Path) (m.Manifest, error) {
	data, err := r.fs.ReadFile(path)
	if err != nil {
		return m.Manifest{}, fmt.Errorf("read manifest %s: %w", path, err)
	}

	return DecodeManifest(string(data)), nil
}

// DecodeManifest decodes manifest text. Fields that cannot be determined keep
// their zero value, except PackageName which falls back to model.UnknownName.
func DecodeManifest(text string) m.Manifest {
	manifest := m.Manifest{Text: text, PackageName: m.UnknownName}

	var decoded cargoManifest
	if err := toml.Unmarshal([]byte(text), &decoded); err != nil {
		manifest.ParseErr = err
		return manifest
	}

	if decoded.Package != nil {
		if name, ok := decoded.Package.Name.(string); ok && name != "" {
			manifest.PackageName = name
		}

		if edition, ok := decoded.Package.Edition.(string); ok {
			manifest.Edition = edition
		}
	}

	if manifest.Edition == "" && decoded.Workspace != nil && decoded.Workspace.Package != nil {
		if edition, ok := decoded.Workspace.Package.Edition.(string); ok {
			manifest.Edition = edition
		}
	}

	for _, bin := range decoded.Bin {
		if bin.Name != "" {
			manifest.BinaryNames = append(manifest.BinaryNames, bin.Name)
		}
	}

	return manifest
}
