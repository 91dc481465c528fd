package model

import "fmt"

// ChangeKind represents the category of a change record.
type ChangeKind string

const (
	// ChangeRenamed reports a ps-t0 -> ps-t1 slot rename.
	ChangeRenamed ChangeKind = "renamed"
	// ChangeRemovedDirective reports a misplaced run line that was dropped.
	ChangeRemovedDirective ChangeKind = "removed"
	// ChangeAddedDirective reports a run line inserted after the governing
	// slot assignment.
	ChangeAddedDirective ChangeKind = "added"
)

// Change is a human-readable record of one edit made to a block. It carries
// no transformation state; the engine only emits it for reporting.
type Change struct {
	Kind    ChangeKind
	Section string
	Before  string // renamed only
	After   string // renamed only
	Line    string // removed/added directive text, trimmed
}

// String renders the change in the report format.
func (c Change) String() string {
	switch c.Kind {
	case ChangeRenamed:
		return fmt.Sprintf("%s → RENAMED: %s -> %s", c.Section, c.Before, c.After)
	case ChangeRemovedDirective:
		return fmt.Sprintf("%s → REMOVED misplaced run: %s", c.Section, c.Line)
	case ChangeAddedDirective:
		return fmt.Sprintf("%s → ADDED run line: %s", c.Section, c.Line)
	}

	return fmt.Sprintf("%s → %s", c.Section, c.Line)
}
