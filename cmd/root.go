// Package cmd provides the root command and CLI setup for orfix.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sanddino/orfix/internal/adapter"
	"github.com/sanddino/orfix/internal/controller"
	"github.com/sanddino/orfix/internal/domain"
	m "github.com/sanddino/orfix/internal/model"
)

var fsAdapter adapter.ModFSAdapter
var reportStore adapter.ReportStore
var ui controller.UI
var workflow domain.Workflow

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// excludeSections is a root-level flag listing sections to skip.
var excludeSections []string

// renameFlag enables the ps-t0 to ps-t1 rename for Extra+Diffuse slots.
var renameFlag bool

// recursiveFlag descends into subfolders when scanning for .ini files.
var recursiveFlag bool

// verboseFlag raises the log level to Debug.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewSimpleUI(rootCmd, controller.IsTTY(os.Stdin) && controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalModFSAdapter()
	reportStore = adapter.NewYAMLReportStore()
	workflow = domain.NewWorkflow(fsAdapter, reportStore, ui)
}

const pathArgsHelp = `Paths may be files or folders:
  - orfix fix              scan the current folder
  - orfix fix Mods/Char    scan a specific folder
  - orfix fix -r Mods      scan a folder tree recursively`

const rootLongDescription = `Orfix normalizes ORFix run directives in 3dmigoto mod .ini files: it
removes misplaced run lines, inserts the correct ORFix or NNFix directive
after the last ps-t slot of each override block, and can rename ps-t0
diffuse slots that belong in ps-t1.

` + pathArgsHelp

const fixLongDescription = `Rewrite .ini files under the given paths (default: current folder).
Every rewritten file gets a timestamped .bak sibling first.

` + pathArgsHelp

const listLongDescription = `Show every section found under the given paths with its exclusion state
and the number of changes a fix run would make. No files are written.

` + pathArgsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "orfix",
		Short: "ORFix directive fixer for 3dmigoto mod ini files",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), verboseFlag || viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for run reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringArrayVarP(&excludeSections, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude a section by its full header, e.g. [TextureOverrideBody] (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVar(&renameFlag, renameFlagName, viper.GetBool(renameConfigKey), "rename ps-t0 slots containing Extra and Diffuse to ps-t1")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(renameFlagName), renameConfigKey)

	cmd.PersistentFlags().BoolVarP(&recursiveFlag, recursiveFlagName, "r", viper.GetBool(recursiveConfigKey), "descend into subfolders")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(recursiveFlagName), recursiveConfigKey)

	cmd.PersistentFlags().BoolVar(&verboseFlag, verboseFlagName, viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
