// Package cmd provides the root command and CLI setup for clonex.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"clonex.dev/pkg/clonex/internal/adapter"
	"clonex.dev/pkg/clonex/internal/controller"
	"clonex.dev/pkg/clonex/internal/domain"
)

// logFileFlag overrides log.filename for a single run.
var logFileFlag string

// verboseFlag switches logging to debug level.
var verboseFlag bool

// newWorkflow builds the workflow for one command invocation, with record
// streams and summaries bound to that command's writers.
var newWorkflow = func(cmd *cobra.Command) domain.Workflow {
	return domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewRecordStoreWithStdio(cmd.InOrStdin(), cmd.OutOrStdout()),
		adapter.NewStatsStore(),
		controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout())),
	)
}

const rootLongDescription = `Clonex turns clone-detector reports (NiCad-style <class>/<source> markup)
into JSONL clone groups and annotates every fragment with a best-effort
qualified method name such as com.example.Foo.bar(int x, String y).

Typical pipeline:
  clonex convert --xml report.xml --out clones.jsonl
  clonex annotate --in clones.jsonl --out annotated.jsonl --projects-root ./systems
  clonex filter --in annotated.jsonl --out filtered.jsonl
  clonex view filtered.jsonl`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "clonex",
		Short:        "Clone report conversion and annotation tool",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
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
