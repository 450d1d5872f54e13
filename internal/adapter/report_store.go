package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/softwarewrighter/sw-checklist/internal/model"
)

// ReportStore persists check reports.
type ReportStore interface {
	SaveReport(path m.Path, report m.Report) error
	LoadReport(path m.Path) (m.Report, error)
}

// LocalReportStore writes reports to disk as JSON when the path ends in
// .json and as YAML otherwise.
type LocalReportStore struct{}

// NewLocalReportStore constructs a LocalReportStore.
func NewLocalReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

func isJSON(path m.Path) bool {
	return strings.EqualFold(filepath.Ext(string(path)), ".json")
}

// SaveReport encodes report and writes it to path, creating parent directories.
func (s *LocalReportStore) SaveReport(path m.Path, report m.Report) error {
	var (
		data []byte
		err  error
	)

	if isJSON(path) {
		data, err = json.MarshalIndent(report, "", "  ")
	} else {
		data, err = yaml.Marshal(report)
	}

	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

// LoadReport reads a report previously written by SaveReport.
func (s *LocalReportStore) LoadReport(path m.Path) (m.Report, error) {
	var report m.Report

	data, err := os.ReadFile(string(path))
	if err != nil {
		return report, fmt.Errorf("read report %s: %w", path, err)
	}

	if isJSON(path) {
		err = json.Unmarshal(data, &report)
	} else {
		err = yaml.Unmarshal(data, &report)
	}

	if err != nil {
		return report, fmt.Errorf("decode report %s: %w", path, err)
	}

	return report, nil
}
