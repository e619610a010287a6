package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"clonex.dev/pkg/clonex/internal/domain"
	m "clonex.dev/pkg/clonex/internal/model"
)

var (
	convertXMLFlag string
	convertOutFlag string
)

const convertLongDescription = `Convert a clone-detector report into JSONL.

In class mode (the default) every <class> block becomes one clone group with
its <source> fragments. When the report has no <class> blocks, or with
--mode source, every <source> block becomes one flat record instead.
Fragment code is sanitized: control characters are removed, line endings
normalized and blank edge lines trimmed.`

// convertCmd represents the convert command.
var convertCmd = newConvertCmd()

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a clone report to JSONL",
		Long:  convertLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			args := domain.ConvertArgs{
				Report: m.Path(convertXMLFlag),
				Output: m.Path(convertOutFlag),
				Stats:  m.Path(viper.GetString(convertStatsOutKey)),
				Mode:   m.ConvertMode(viper.GetString(convertModeKey)),
				Sanitize: domain.SanitizeOptions{
					KeepControl:      viper.GetBool(convertKeepCtrlKey),
					UnescapeEntities: viper.GetBool(convertUnescapeKey),
				},
			}

			return newWorkflow(cmd).Convert(cmd.Context(), args)
		},
	}

	cmd.Flags().StringVar(&convertXMLFlag, xmlFlagName, "", "clone report to read")
	cmd.Flags().StringVar(&convertOutFlag, outFlagName, "", "JSONL file to write (- for stdout)")
	cobra.CheckErr(cmd.MarkFlagRequired(xmlFlagName))
	cobra.CheckErr(cmd.MarkFlagRequired(outFlagName))

	cmd.Flags().String(modeFlagName, defaultConvertMode, "record layout: class or source")
	bindFlagToConfig(cmd.Flags().Lookup(modeFlagName), convertModeKey)

	cmd.Flags().Bool(unescapeFlagName, defaultUnescape, "decode HTML entities in fragment code")
	bindFlagToConfig(cmd.Flags().Lookup(unescapeFlagName), convertUnescapeKey)

	cmd.Flags().Bool(keepCtrlFlagName, defaultKeepCtrl, "keep control characters in fragment code")
	bindFlagToConfig(cmd.Flags().Lookup(keepCtrlFlagName), convertKeepCtrlKey)

	cmd.Flags().String(statsOutFlagName, "", "write run statistics as YAML to this file")
	bindFlagToConfig(cmd.Flags().Lookup(statsOutFlagName), convertStatsOutKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
