package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/sanddino/orfix/internal/model"
)

func newTestUI(t *testing.T, input string) (*SimpleUI, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	cmd := &cobra.Command{Use: "test"}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader(input))

	return NewSimpleUI(cmd, true), out
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "y\n", true},
		{"no", "n\n", false},
		{"uppercase", "Y\n", true},
		{"retries until valid", "maybe\n\nn\n", false},
		{"strips whitespace", "  y  \n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, out := newTestUI(t, tt.input)

			got, err := ui.Confirm("Proceed with these changes?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Proceed with these changes? (y/n):")
		})
	}

	t.Run("eof without answer", func(t *testing.T) {
		ui, _ := newTestUI(t, "")

		_, err := ui.Confirm("Proceed?")
		assert.Error(t, err)
	})
}

func TestShowPlan(t *testing.T) {
	plan := &m.Plan{Files: []m.FilePlan{
		{
			File: "mods/mod.ini",
			Changes: []m.Change{
				{Kind: m.ChangeAddedDirective, Section: "[TextureOverrideBody]", Line: `run = CommandList\global\ORFix\NNFix`},
				{Kind: m.ChangeRemovedDirective, Section: "[TextureOverrideBody]", Line: `run = CommandList\global\ORFix\ORFix`},
			},
		},
		{File: "mods/untouched.ini"},
		{File: "mods/broken.ini", Err: errors.New("content is not valid UTF-8")},
	}}

	ui, out := newTestUI(t, "")
	ui.interactive = false

	require.NoError(t, ui.ShowPlan(plan))

	text := out.String()
	assert.Contains(t, text, "=== Proposed Changes ===")
	assert.Contains(t, text, "File: mods/mod.ini")
	assert.Contains(t, text, "ADDED run line")
	assert.Contains(t, text, "REMOVED misplaced run")
	assert.Contains(t, text, "mods/broken.ini")
	assert.NotContains(t, text, "File: mods/untouched.ini")
}

func TestShowSectionTable(t *testing.T) {
	ui, out := newTestUI(t, "")

	ui.ShowSectionTable([]m.SectionStat{
		{File: "mod.ini", Section: "[TextureOverrideBody]", Changes: 2},
		{File: "mod.ini", Section: "[TextureOverrideBodyIB]", Excluded: true},
	})

	text := out.String()
	assert.Contains(t, text, "[TextureOverrideBody]")
	assert.Contains(t, text, "[TextureOverrideBodyIB]")
	assert.Contains(t, text, "yes")
	assert.Contains(t, text, "2")
}

func TestShowApplySummary(t *testing.T) {
	ui, out := newTestUI(t, "")

	ui.ShowApplySummary(m.ApplySummary{
		Updated: []m.FileReport{
			{File: "mod.ini", Backup: "mod.ini.bak_2025-06-01_10-30-00"},
		},
		Report: "reports/orfix-report-2025-06-01_10-30-00.yaml",
	})

	text := out.String()
	assert.Contains(t, text, "Updated: mod.ini")
	assert.Contains(t, text, "Backup: mod.ini.bak_2025-06-01_10-30-00")
	assert.Contains(t, text, "All changes applied successfully.")
	assert.Contains(t, text, "Report: reports/orfix-report-2025-06-01_10-30-00.yaml")
}

func TestShowRevertSummary(t *testing.T) {
	ui, out := newTestUI(t, "")

	ui.ShowRevertSummary(m.RevertSummary{
		Restored: []m.FileReport{{File: "a.ini", Backup: "a.ini.bak_2025-01-01_00-00-00"}},
		Skipped:  []string{"b.ini"},
	})

	text := out.String()
	assert.Contains(t, text, "Restored: a.ini")
	assert.Contains(t, text, "No backup for b.ini")
}
