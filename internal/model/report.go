package model

// Report is a complete, serializable run of the checker.
type Report struct {
	Root        Path          `json:"root" yaml:"root"`
	ProjectType string        `json:"project_type" yaml:"project_type"`
	Manifests   int           `json:"manifests" yaml:"manifests"`
	Results     []CheckResult `json:"results" yaml:"results"`
	Summary     Summary       `json:"summary" yaml:"summary"`
	GeneratedAt string        `json:"generated_at" yaml:"generated_at"`
	Version     string        `json:"version" yaml:"version"`
}
