package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"clonex.dev/pkg/clonex/internal/domain"
	m "clonex.dev/pkg/clonex/internal/model"
)

var (
	filterInFlag  string
	filterOutFlag string
)

const filterLongDescription = `Filter a JSONL clone file.

Groups declaring --max-clones or more clones are dropped. Test code is
recognised by directory (src/test, src/it, test, tests, ...) and by file name
(FooTest.java, FooIT.java, ...). With drop_group_if_any_test a group is
dropped when any fragment is test code; with drop_only_test_sources only the
test fragments are removed and groups left empty are dropped.`

// filterCmd represents the filter command.
var filterCmd = newFilterCmd()

func newFilterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Drop oversized clone groups and test code",
		Long:  filterLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := domain.ParseFilterMode(viper.GetString(filterModeKey))
			if err != nil {
				return err
			}

			args := domain.FilterArgs{
				Input:     m.Path(filterInFlag),
				Output:    m.Path(filterOutFlag),
				MaxClones: viper.GetInt(filterMaxClonesKey),
				Mode:      mode,
			}

			return newWorkflow(cmd).Filter(cmd.Context(), args)
		},
	}

	cmd.Flags().StringVar(&filterInFlag, inFlagName, string(m.StdioPath), "JSONL file to read (- for stdin)")
	cmd.Flags().StringVar(&filterOutFlag, outFlagName, string(m.StdioPath), "JSONL file to write (- for stdout)")

	cmd.Flags().Int(maxClonesFlagName, defaultMaxClones, "drop groups declaring at least this many clones (0 disables)")
	bindFlagToConfig(cmd.Flags().Lookup(maxClonesFlagName), filterMaxClonesKey)

	cmd.Flags().String(modeFlagName, defaultFilterMode, "drop_group_if_any_test or drop_only_test_sources")
	bindFlagToConfig(cmd.Flags().Lookup(modeFlagName), filterModeKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(filterCmd)
}
