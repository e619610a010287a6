package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"clonex.dev/pkg/clonex/internal/domain"
	m "clonex.dev/pkg/clonex/internal/model"
)

var (
	annotateInFlag  string
	annotateOutFlag string
)

const annotateLongDescription = `Add a qualified_name to every fragment of a JSONL clone file.

Names have the form package.Class.method(params). The package comes from the
fragment's source file, which is looked up as given and then under
--projects-root. Fragments whose file cannot be read are named without a
package. Lines that are not clone groups are copied unchanged.`

// annotateCmd represents the annotate command.
var annotateCmd = newAnnotateCmd()

func newAnnotateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "annotate",
		Short: "Annotate JSONL fragments with qualified method names",
		Long:  annotateLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := resolveProjectsRoot(viper.GetString(projectsRootKey))
			if err != nil {
				return err
			}

			args := domain.AnnotateArgs{
				Input:        m.Path(annotateInFlag),
				Output:       m.Path(annotateOutFlag),
				ProjectsRoot: root,
			}

			return newWorkflow(cmd).Annotate(cmd.Context(), args)
		},
	}

	cmd.Flags().StringVar(&annotateInFlag, inFlagName, string(m.StdioPath), "JSONL file to read (- for stdin)")
	cmd.Flags().StringVar(&annotateOutFlag, outFlagName, string(m.StdioPath), "JSONL file to write (- for stdout)")

	cmd.Flags().String(projectsRootFlagName, "", "directory that fragment paths are relative to")
	bindFlagToConfig(cmd.Flags().Lookup(projectsRootFlagName), projectsRootKey)

	return cmd
}

func resolveProjectsRoot(root string) (m.Path, error) {
	if root == "" {
		return "", nil
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve projects root: %w", err)
	}

	return m.Path(abs), nil
}

func init() {
	rootCmd.AddCommand(annotateCmd)
}
