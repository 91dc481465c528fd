package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sanddino/orfix/internal/domain"
	m "github.com/sanddino/orfix/internal/model"
)

var fixParallelFlag int
var fixYesFlag bool
var fixDryRunFlag bool

// fixCmd represents the fix command.
var fixCmd = newFixCmd()

func newFixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Fix ORFix run directives in mod ini files",
		Long:  fixLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Fix(cmd.Context(), domain.FixArgs{
				Paths:     parsePaths(args),
				Recursive: viper.GetBool(recursiveConfigKey),
				Rename:    viper.GetBool(renameConfigKey),
				RenameSet: cmd.Flags().Changed(renameFlagName) || viper.InConfig(renameConfigKey),
				Exclude:   viper.GetStringSlice(excludeConfigKey),
				Yes:       fixYesFlag,
				DryRun:    fixDryRunFlag,
				Threads:   viper.GetInt(fixParallelConfigKey),
				Reports:   m.Path(viper.GetString(outputFlagName)),
			})
		},
	}

	configureFixFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(fixCmd)
}

func configureFixFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&fixParallelFlag, fixParallelFlagName, "p", viper.GetInt(fixParallelConfigKey), "number of files analyzed in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(fixParallelFlagName), fixParallelConfigKey)
	cmd.Flags().BoolVarP(&fixYesFlag, "yes", "y", false, "answer yes to every prompt")
	cmd.Flags().BoolVar(&fixDryRunFlag, "dry-run", false, "show the planned changes without writing anything")
}
