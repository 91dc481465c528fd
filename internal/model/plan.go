package model

// FileLayout captures how a file's text was laid out on disk so a rewrite
// can reproduce it byte-for-byte outside the changed lines.
type FileLayout struct {
	CRLF            bool
	TrailingNewline bool
}

// FilePlan is the planned rewrite of a single file.
type FilePlan struct {
	File    Path
	Lines   []string // full post-transform content
	Layout  FileLayout
	Changes []Change
	Err     error // per-file failure; siblings are still processed
}

// Plan is the set of planned rewrites for one run, ordered by file path.
type Plan struct {
	Files []FilePlan
}

// ChangeCount returns the total number of change records across all files.
func (p *Plan) ChangeCount() int {
	total := 0
	for _, fp := range p.Files {
		total += len(fp.Changes)
	}

	return total
}

// Changed returns the file plans that carry at least one change record.
func (p *Plan) Changed() []FilePlan {
	var changed []FilePlan

	for _, fp := range p.Files {
		if len(fp.Changes) > 0 && fp.Err == nil {
			changed = append(changed, fp)
		}
	}

	return changed
}

// Failed returns the file plans whose planning failed.
func (p *Plan) Failed() []FilePlan {
	var failed []FilePlan

	for _, fp := range p.Files {
		if fp.Err != nil {
			failed = append(failed, fp)
		}
	}

	return failed
}

// SectionStat is one row of the list table: a section seen in a file, its
// exclusion status, and the number of pending changes attributed to it.
type SectionStat struct {
	File     Path
	Section  string
	Excluded bool
	Changes  int
}
