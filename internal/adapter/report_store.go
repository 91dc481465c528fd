package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	m "github.com/sanddino/orfix/internal/model"
)

// ReportStore persists run reports so an apply can be audited later.
type ReportStore interface {
	Save(dir m.Path, report m.RunReport) (m.Path, error)
	Load(path m.Path) (m.RunReport, error)
	Latest(dir m.Path) (m.Path, error)
}

// YAMLReportStore stores one YAML file per apply run in a reports
// directory.
type YAMLReportStore struct{}

// NewYAMLReportStore constructs a YAMLReportStore.
func NewYAMLReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// Save writes the report to <dir>/orfix-report-<timestamp>.yaml.
func (s *YAMLReportStore) Save(dir m.Path, report m.RunReport) (m.Path, error) {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	path := filepath.Join(string(dir), fmt.Sprintf("orfix-report-%s.yaml", report.Timestamp))

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	return m.Path(path), nil
}

// Load reads one previously saved report.
func (s *YAMLReportStore) Load(path m.Path) (m.RunReport, error) {
	var report m.RunReport

	data, err := os.ReadFile(string(path))
	if err != nil {
		return report, err
	}

	if err := yaml.Unmarshal(data, &report); err != nil {
		return report, fmt.Errorf("parse report %s: %w", path, err)
	}

	return report, nil
}

// Latest returns the newest report file in dir, or "" when the directory
// holds none. Report filenames sort chronologically.
func (s *YAMLReportStore) Latest(dir m.Path) (m.Path, error) {
	matches, err := filepath.Glob(filepath.Join(string(dir), "orfix-report-*.yaml"))
	if err != nil {
		return "", err
	}

	if len(matches) == 0 {
		return "", nil
	}

	sort.Strings(matches)

	return m.Path(matches[len(matches)-1]), nil
}
