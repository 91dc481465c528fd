package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/sanddino/orfix/internal/model"
)

func newFixTestRoot() *cobra.Command {
	cmd := newRootCmd()
	configureRootFlags(cmd)
	cmd.AddCommand(newFixCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return cmd
}

func TestFixCmd_Defaults(t *testing.T) {
	stub := swapWorkflow(t)

	cmd := newFixTestRoot()
	cmd.SetArgs([]string{"fix"})

	require.NoError(t, cmd.Execute())

	require.Len(t, stub.fixCalls, 1)
	args := stub.fixCalls[0]
	assert.Empty(t, args.Paths)
	assert.False(t, args.Recursive)
	assert.False(t, args.Rename)
	assert.False(t, args.RenameSet)
	assert.False(t, args.Yes)
	assert.False(t, args.DryRun)
	assert.Equal(t, 1, args.Threads)
	assert.Equal(t, m.Path(".orfix-reports"), args.Reports)
}

func TestFixCmd_AllFlags(t *testing.T) {
	stub := swapWorkflow(t)

	cmd := newFixTestRoot()
	cmd.SetArgs([]string{
		"fix", "--yes", "--dry-run", "--rename", "--recursive",
		"--parallel", "3", "--exclude", "[TextureOverrideBody]",
		"Mods/CharA", "Mods/CharB",
	})

	require.NoError(t, cmd.Execute())

	require.Len(t, stub.fixCalls, 1)
	args := stub.fixCalls[0]
	assert.Equal(t, []m.Path{"Mods/CharA", "Mods/CharB"}, args.Paths)
	assert.True(t, args.Recursive)
	assert.True(t, args.Rename)
	assert.True(t, args.RenameSet)
	assert.True(t, args.Yes)
	assert.True(t, args.DryRun)
	assert.Equal(t, 3, args.Threads)
	assert.Equal(t, []string{"[TextureOverrideBody]"}, args.Exclude)
}

func TestFixCmd_RenameSetWhenFlagGivenFalse(t *testing.T) {
	stub := swapWorkflow(t)

	cmd := newFixTestRoot()
	cmd.SetArgs([]string{"fix", "--rename=false"})

	require.NoError(t, cmd.Execute())

	require.Len(t, stub.fixCalls, 1)
	assert.False(t, stub.fixCalls[0].Rename)
	assert.True(t, stub.fixCalls[0].RenameSet)
}
