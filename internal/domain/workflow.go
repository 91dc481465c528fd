// Package domain orchestrates the orfix workflow: scanning mod folders,
// resolving exclusions, planning rewrites through the engine, and applying
// them with backups.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sanddino/orfix/internal/adapter"
	"github.com/sanddino/orfix/internal/controller"
	"github.com/sanddino/orfix/internal/engine"
	m "github.com/sanddino/orfix/internal/model"
)

// FixArgs carries everything the fix pipeline needs.
type FixArgs struct {
	Paths     []m.Path
	Recursive bool
	Rename    bool
	// RenameSet is true when the rename option was given explicitly; when
	// false and the UI is interactive, the user is asked.
	RenameSet bool
	Exclude   []string
	Yes       bool
	DryRun    bool
	Threads   int
	Reports   m.Path
}

// ListArgs carries the arguments for the list overview.
type ListArgs struct {
	Paths     []m.Path
	Recursive bool
	Rename    bool
	Exclude   []string
	Threads   int
}

// Workflow is the use-case layer of the CLI. One call handles one command
// invocation end to end.
type Workflow interface {
	Fix(ctx context.Context, args FixArgs) error
	List(ctx context.Context, args ListArgs) error
	Revert(ctx context.Context, paths []m.Path, recursive bool) error
	View(ctx context.Context, reports m.Path) error
}

type workflow struct {
	fs      adapter.ModFSAdapter
	reports adapter.ReportStore
	ui      controller.UI
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(fs adapter.ModFSAdapter, reports adapter.ReportStore, ui controller.UI) Workflow {
	return &workflow{fs: fs, reports: reports, ui: ui}
}

// Fix runs the full pipeline: discover files and sections, resolve the
// exclusion set and rename option, plan, preview, confirm, apply.
func (w *workflow) Fix(ctx context.Context, args FixArgs) error {
	files, err := w.fs.CollectFiles(defaultPaths(args.Paths), args.Recursive)
	if err != nil {
		return fmt.Errorf("collect files: %w", err)
	}

	if len(files) == 0 {
		w.ui.Infof("No .ini files found.")
		return nil
	}

	slog.Info("scanning mod files", "files", len(files), "recursive", args.Recursive)

	manual, err := w.resolveExclusions(files, args.Exclude, args.Yes)
	if err != nil {
		return err
	}

	rename := args.Rename
	if !args.RenameSet && !args.Yes && w.ui.Interactive() {
		rename, err = w.ui.Confirm(`Rename ps-t0 lines containing "Extra" and "Diffuse" to ps-t1?`)
		if err != nil {
			return err
		}
	}

	plan, err := w.plan(ctx, files, manual, rename, args.Threads)
	if err != nil {
		return err
	}

	if plan.ChangeCount() == 0 {
		w.ui.Infof("\nNo changes detected.")
		return nil
	}

	if err := w.ui.ShowPlan(plan); err != nil {
		return fmt.Errorf("show plan: %w", err)
	}

	if args.DryRun {
		return nil
	}

	if !args.Yes {
		if !w.ui.Interactive() {
			return fmt.Errorf("refusing to rewrite files without confirmation; pass --yes")
		}

		proceed, err := w.ui.Confirm("\nProceed with these changes?")
		if err != nil {
			return err
		}

		if !proceed {
			w.ui.Infof("Aborted, no changes made.")
			return nil
		}
	}

	summary := w.apply(plan, rename, args.Reports)
	w.ui.ShowApplySummary(summary)

	if len(summary.Failed) > 0 {
		return fmt.Errorf("failed to update %d file(s)", len(summary.Failed))
	}

	return nil
}

// List plans without prompting or writing and renders the section table.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	files, err := w.fs.CollectFiles(defaultPaths(args.Paths), args.Recursive)
	if err != nil {
		return fmt.Errorf("collect files: %w", err)
	}

	if len(files) == 0 {
		w.ui.Infof("No .ini files found.")
		return nil
	}

	manual := manualSet(args.Exclude)

	plan, err := w.plan(ctx, files, manual, args.Rename, args.Threads)
	if err != nil {
		return err
	}

	w.ui.ShowSectionTable(w.sectionStats(files, plan, manual))

	for _, fp := range plan.Failed() {
		w.ui.Infof("Skipped %s: %v", fp.File, fp.Err)
	}

	return nil
}

// Revert restores each file from its newest backup sibling.
func (w *workflow) Revert(_ context.Context, paths []m.Path, recursive bool) error {
	files, err := w.fs.CollectFiles(defaultPaths(paths), recursive)
	if err != nil {
		return fmt.Errorf("collect files: %w", err)
	}

	var summary m.RevertSummary

	for _, file := range files {
		backup, err := w.fs.LatestBackup(file)
		if err != nil {
			slog.Error("looking up backup failed", "file", file, "error", err)
			summary.Failed = append(summary.Failed, m.FileReport{File: string(file)})

			continue
		}

		if backup == "" {
			summary.Skipped = append(summary.Skipped, string(file))
			continue
		}

		used, err := w.fs.Restore(file)
		if err != nil {
			slog.Error("restore failed", "file", file, "error", err)
			summary.Failed = append(summary.Failed, m.FileReport{File: string(file)})

			continue
		}

		slog.Info("restored from backup", "file", file, "backup", used)
		summary.Restored = append(summary.Restored, m.FileReport{File: string(file), Backup: string(used)})
	}

	w.ui.ShowRevertSummary(summary)

	if len(summary.Failed) > 0 {
		return fmt.Errorf("failed to restore %d file(s)", len(summary.Failed))
	}

	return nil
}

// View prints the most recent saved run report.
func (w *workflow) View(_ context.Context, reports m.Path) error {
	latest, err := w.reports.Latest(reports)
	if err != nil {
		return fmt.Errorf("find report: %w", err)
	}

	if latest == "" {
		w.ui.Infof("No reports found in %s.", reports)
		return nil
	}

	report, err := w.reports.Load(latest)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	w.ui.Infof("Report %s (rename: %v)", latest, report.Rename)

	for _, file := range report.Files {
		w.ui.Infof("\nFile: %s", file.File)

		if file.Backup != "" {
			w.ui.Infof("  Backup: %s", file.Backup)
		}

		for _, change := range file.Changes {
			w.ui.Infof("  %s", change)
		}
	}

	return nil
}

// resolveExclusions combines the flag-supplied exclusion set with
// interactive per-section answers. Auto-excluded sections are announced
// only; the fixed rule is not overridable.
func (w *workflow) resolveExclusions(files []m.Path, exclude []string, yes bool) (map[string]struct{}, error) {
	manual := manualSet(exclude)

	sections, err := w.collectSections(files)
	if err != nil {
		return nil, err
	}

	for _, section := range sections {
		if engine.AutoExcluded(section) {
			w.ui.AnnounceAutoExcluded(section)
			continue
		}

		if _, ok := manual[section]; ok {
			continue
		}

		if yes || !w.ui.Interactive() {
			continue
		}

		excluded, err := w.ui.Confirm(fmt.Sprintf("Exclude %s?", section))
		if err != nil {
			return nil, err
		}

		if excluded {
			manual[section] = struct{}{}
		}
	}

	return manual, nil
}

// collectSections scans all files once and returns every section header,
// deduplicated and sorted. Unreadable files are skipped here; planning
// reports them properly.
func (w *workflow) collectSections(files []m.Path) ([]string, error) {
	seen := make(map[string]struct{})

	for _, file := range files {
		lines, _, err := w.fs.ReadLines(file)
		if err != nil {
			slog.Warn("skipping unreadable file during section scan", "file", file, "error", err)
			continue
		}

		for _, line := range lines {
			if l := engine.Classify(line); l.Category == m.CategorySectionHeader {
				seen[sectionName(line)] = struct{}{}
			}
		}
	}

	sections := make([]string, 0, len(seen))
	for section := range seen {
		sections = append(sections, section)
	}

	sort.Strings(sections)

	return sections, nil
}

// plan runs the engine over every file, in parallel when threads > 1. A
// file that cannot be read or tokenized fails only its own plan entry.
func (w *workflow) plan(ctx context.Context, files []m.Path, manual map[string]struct{}, rename bool, threads int) (*m.Plan, error) {
	plan := &m.Plan{Files: make([]m.FilePlan, len(files))}

	var mu sync.Mutex

	group, ctx := errgroup.WithContext(ctx)
	if threads > 0 {
		group.SetLimit(threads)
	}

	for i, file := range files {
		i, file := i, file
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			fp := w.planFile(file, manual, rename)

			mu.Lock()
			plan.Files[i] = fp
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return plan, nil
}

func (w *workflow) planFile(file m.Path, manual map[string]struct{}, rename bool) m.FilePlan {
	fp := m.FilePlan{File: file}

	lines, layout, err := w.fs.ReadLines(file)
	if err != nil {
		slog.Error("reading file failed", "file", file, "error", err)
		fp.Err = err

		return fp
	}

	resolver := func(section string) bool {
		return engine.Excluded(section, manual)
	}

	fixed, changes, err := engine.Tokenize(lines, resolver, rename)
	if err != nil {
		slog.Error("tokenizing file failed", "file", file, "error", err)
		fp.Err = err

		return fp
	}

	fp.Lines = fixed
	fp.Layout = layout
	fp.Changes = changes

	slog.Debug("planned file", "file", file, "changes", len(changes))

	return fp
}

// apply writes every changed file with a backup and saves the run report.
func (w *workflow) apply(plan *m.Plan, rename bool, reports m.Path) m.ApplySummary {
	var summary m.ApplySummary

	timestamp := time.Now().Format("2006-01-02_15-04-05")

	for _, fp := range plan.Changed() {
		report := m.FileReport{File: string(fp.File)}
		for _, change := range fp.Changes {
			report.Changes = append(report.Changes, change.String())
		}

		backup, err := w.fs.Backup(fp.File)
		if err != nil {
			slog.Error("backup failed, file left untouched", "file", fp.File, "error", err)
			summary.Failed = append(summary.Failed, report)

			continue
		}

		report.Backup = string(backup)

		if err := w.fs.WriteLines(fp.File, fp.Lines, fp.Layout); err != nil {
			slog.Error("write failed", "file", fp.File, "error", err)
			summary.Failed = append(summary.Failed, report)

			continue
		}

		slog.Info("updated file", "file", fp.File, "backup", backup, "changes", len(fp.Changes))
		summary.Updated = append(summary.Updated, report)
	}

	if len(summary.Updated) > 0 && reports != "" {
		path, err := w.reports.Save(reports, m.RunReport{
			Timestamp: timestamp,
			Rename:    rename,
			Files:     summary.Updated,
		})
		if err != nil {
			slog.Error("saving report failed", "error", err)
		} else {
			summary.Report = path
		}
	}

	return summary
}

// sectionStats attributes planned changes to their sections for the list
// table.
func (w *workflow) sectionStats(files []m.Path, plan *m.Plan, manual map[string]struct{}) []m.SectionStat {
	var stats []m.SectionStat

	for _, fp := range plan.Files {
		if fp.Err != nil {
			continue
		}

		counts := make(map[string]int)
		for _, change := range fp.Changes {
			counts[change.Section]++
		}

		var sections []string

		seen := make(map[string]struct{})

		for _, line := range fp.Lines {
			if l := engine.Classify(line); l.Category == m.CategorySectionHeader {
				name := sectionName(line)
				if _, ok := seen[name]; ok {
					continue
				}

				seen[name] = struct{}{}
				sections = append(sections, name)
			}
		}

		for _, section := range sections {
			stats = append(stats, m.SectionStat{
				File:     fp.File,
				Section:  section,
				Excluded: engine.Excluded(section, manual),
				Changes:  counts[section],
			})
		}
	}

	return stats
}

// sectionName is the section's identity: the full trimmed header line,
// brackets included.
func sectionName(line string) string {
	return strings.TrimSpace(line)
}

func defaultPaths(paths []m.Path) []m.Path {
	if len(paths) == 0 {
		return []m.Path{"."}
	}

	return paths
}

func manualSet(exclude []string) map[string]struct{} {
	manual := make(map[string]struct{}, len(exclude))
	for _, section := range exclude {
		manual[section] = struct{}{}
	}

	return manual
}
