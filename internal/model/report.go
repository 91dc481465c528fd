package model

// FileReport is the persisted record of one rewritten file.
type FileReport struct {
	File    string   `yaml:"file"`
	Backup  string   `yaml:"backup,omitempty"`
	Changes []string `yaml:"changes"`
}

// RunReport is the persisted record of one apply run.
type RunReport struct {
	Timestamp string       `yaml:"timestamp"`
	Rename    bool         `yaml:"rename"`
	Files     []FileReport `yaml:"files"`
}

// ApplySummary aggregates the outcome of applying a plan.
type ApplySummary struct {
	Updated []FileReport
	Failed  []FileReport
	Report  Path // saved report file, empty when nothing was written
}

// RevertSummary aggregates the outcome of restoring files from backups.
type RevertSummary struct {
	Restored []FileReport
	Skipped  []string // files with no backup sibling
	Failed   []FileReport
}
