// Package controller provides the user-facing side of the orfix CLI:
// prompts, change previews, and summary rendering.
package controller

import (
	"os"

	"golang.org/x/term"

	m "github.com/sanddino/orfix/internal/model"
)

// UI is the interface the workflow talks to for every interaction with the
// user. Implementations decide how to render and where to read answers
// from.
type UI interface {
	// Interactive reports whether the UI can ask questions.
	Interactive() bool

	// Confirm asks a y/n question and keeps asking until it gets one.
	Confirm(question string) (bool, error)

	// Infof prints an informational line.
	Infof(format string, args ...any)

	// AnnounceAutoExcluded reports a section that the fixed rules exempt.
	AnnounceAutoExcluded(section string)

	// ShowPlan renders the proposed changes grouped by file.
	ShowPlan(plan *m.Plan) error

	// ShowSectionTable renders the per-section overview used by list.
	ShowSectionTable(stats []m.SectionStat)

	// ShowApplySummary renders the outcome of an apply run.
	ShowApplySummary(summary m.ApplySummary)

	// ShowRevertSummary renders the outcome of a revert run.
	ShowRevertSummary(summary m.RevertSummary)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
