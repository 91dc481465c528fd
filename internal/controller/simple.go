package controller

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "github.com/sanddino/orfix/internal/model"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// SimpleUI implements UI on top of a cobra command's in/out streams.
type SimpleUI struct {
	cmd         *cobra.Command
	interactive bool
	reader      *bufio.Reader
}

// NewSimpleUI creates a SimpleUI. interactive should be false whenever
// stdin or stdout is not a terminal; the UI then never blocks on input.
func NewSimpleUI(cmd *cobra.Command, interactive bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, interactive: interactive}
}

// Interactive reports whether prompts are allowed.
func (s *SimpleUI) Interactive() bool {
	return s.interactive
}

// Confirm asks question until the user answers y or n.
func (s *SimpleUI) Confirm(question string) (bool, error) {
	if s.reader == nil {
		s.reader = bufio.NewReader(s.cmd.InOrStdin())
	}

	for {
		s.printf("%s (y/n): ", question)

		answer, err := s.reader.ReadString('\n')
		if err != nil && answer == "" {
			return false, fmt.Errorf("read answer: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}

		if err != nil {
			return false, fmt.Errorf("read answer: %w", err)
		}
	}
}

// Infof prints one informational line.
func (s *SimpleUI) Infof(format string, args ...any) {
	s.printf(format+"\n", args...)
}

// AnnounceAutoExcluded reports a section exempted by the fixed rules.
func (s *SimpleUI) AnnounceAutoExcluded(section string) {
	s.printf("%s\n", noticeStyle.Render(fmt.Sprintf("Auto-excluded %s", section)))
}

// ShowPlan renders all proposed changes grouped by file. Long previews are
// paged when the UI is interactive.
func (s *SimpleUI) ShowPlan(plan *m.Plan) error {
	lines := renderPlan(plan)

	if s.interactive {
		if f, ok := s.cmd.OutOrStdout().(*os.File); ok {
			_, height, err := term.GetSize(int(f.Fd()))
			if err == nil && len(lines) > height-1 {
				return runPager(lines, f)
			}
		}
	}

	for _, line := range lines {
		s.printf("%s\n", line)
	}

	return nil
}

func renderPlan(plan *m.Plan) []string {
	lines := []string{"", headerStyle.Render("=== Proposed Changes ===")}

	for _, fp := range plan.Changed() {
		lines = append(lines, "", fmt.Sprintf("File: %s", fp.File))
		for _, change := range fp.Changes {
			lines = append(lines, "  "+styleChange(change))
		}
	}

	for _, fp := range plan.Failed() {
		lines = append(lines, "", removedStyle.Render(fmt.Sprintf("File: %s skipped: %v", fp.File, fp.Err)))
	}

	lines = append(lines, headerStyle.Render("========================="))

	return lines
}

func styleChange(change m.Change) string {
	text := change.String()

	switch change.Kind {
	case m.ChangeAddedDirective:
		return addedStyle.Render(text)
	case m.ChangeRemovedDirective, m.ChangeRenamed:
		return removedStyle.Render(text)
	}

	return text
}

// ShowSectionTable renders the per-file, per-section overview.
func (s *SimpleUI) ShowSectionTable(stats []m.SectionStat) {
	var buffer bytes.Buffer

	table := tablewriter.NewWriter(&buffer)
	table.SetHeader([]string{"File", "Section", "Excluded", "Changes"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	totalChanges := 0

	for _, stat := range stats {
		excluded := ""
		if stat.Excluded {
			excluded = "yes"
		}

		table.Append([]string{
			string(stat.File),
			stat.Section,
			excluded,
			fmt.Sprintf("%d", stat.Changes),
		})

		totalChanges += stat.Changes
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Sections %d", len(stats)),
		"",
		"",
		fmt.Sprintf("%d", totalChanges),
	})

	table.Render()

	s.printf("\n%s", buffer.String())
}

// ShowApplySummary renders the outcome of an apply run.
func (s *SimpleUI) ShowApplySummary(summary m.ApplySummary) {
	for _, file := range summary.Updated {
		s.printf("%s\n  Backup: %s\n", addedStyle.Render(fmt.Sprintf("✅ Updated: %s", file.File)), file.Backup)
	}

	for _, file := range summary.Failed {
		s.printf("%s\n", removedStyle.Render(fmt.Sprintf("Failed: %s", file.File)))
	}

	if len(summary.Failed) == 0 {
		s.printf("\nAll changes applied successfully.\n")
	}

	if summary.Report != "" {
		s.printf("Report: %s\n", summary.Report)
	}
}

// ShowRevertSummary renders the outcome of a revert run.
func (s *SimpleUI) ShowRevertSummary(summary m.RevertSummary) {
	for _, file := range summary.Restored {
		s.printf("%s\n", addedStyle.Render(fmt.Sprintf("Restored: %s (from %s)", file.File, file.Backup)))
	}

	for _, file := range summary.Skipped {
		s.printf("%s\n", noticeStyle.Render(fmt.Sprintf("No backup for %s", file)))
	}

	for _, file := range summary.Failed {
		s.printf("%s\n", removedStyle.Render(fmt.Sprintf("Failed to restore %s", file.File)))
	}
}

func (s *SimpleUI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
