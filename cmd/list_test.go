package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/sanddino/orfix/internal/model"
)

func TestListCmd_PassesArgs(t *testing.T) {
	stub := swapWorkflow(t)

	cmd := newRootCmd()
	configureRootFlags(cmd)
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"list", "--recursive", "Mods"})
	require.NoError(t, cmd.Execute())

	require.Len(t, stub.listCalls, 1)
	args := stub.listCalls[0]
	assert.Equal(t, []m.Path{"Mods"}, args.Paths)
	assert.True(t, args.Recursive)
}
