package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"clonex.dev/pkg/clonex/internal/domain"
	m "clonex.dev/pkg/clonex/internal/model"
)

var viewStatsFlag string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <file.jsonl>",
		Short: "Browse clone groups of a JSONL file",
		Long: `Show clone groups with their declared size, similarity and fragments.
Uses an interactive pager when stdout is a terminal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return newWorkflow(cmd).View(cmd.Context(), domain.ViewArgs{
				Input: m.Path(args[0]),
				Stats: m.Path(viewStatsFlag),
				Limit: viper.GetInt(viewLimitKey),
			})
		},
	}

	cmd.Flags().StringVar(&viewStatsFlag, statsFlagName, "", "YAML statistics written by convert --stats-out")

	cmd.Flags().Int(limitFlagName, defaultViewLimit, "show at most this many groups (0 shows all)")
	bindFlagToConfig(cmd.Flags().Lookup(limitFlagName), viewLimitKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
