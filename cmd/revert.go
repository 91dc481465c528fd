package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// revertCmd represents the revert command.
var revertCmd = newRevertCmd()

func newRevertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revert [paths...]",
		Short: "Restore ini files from their newest backup",
		Long: `Restore every .ini file under the given paths from the newest .bak
sibling a previous fix run created. Files without a backup are skipped.

` + pathArgsHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Revert(cmd.Context(), parsePaths(args), viper.GetBool(recursiveConfigKey))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(revertCmd)
}
