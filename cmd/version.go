package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// develVersion is what the toolchain reports for builds outside a module
// download, such as go build in a checkout.
const develVersion = "(devel)"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long: `Displays the clonex release, the VCS revision it was built from when
known, and the Go version used to build it.`,
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok {
				cmd.Println("version: unknown")
				return
			}

			for _, line := range versionLines(info) {
				cmd.Println(line)
			}
		},
	}
}

// versionLines renders build info. Checkout builds carry no release version,
// so the VCS revision is shown instead.
func versionLines(info *debug.BuildInfo) []string {
	version := info.Main.Version
	if version == "" {
		version = develVersion
	}

	lines := []string{fmt.Sprintf("clonex version\t %s", version)}

	var revision, modified string

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value
		}
	}

	if version == develVersion && revision != "" {
		if modified == "true" {
			revision += " (modified)"
		}

		lines = append(lines, fmt.Sprintf("commit\t %s", revision))
	}

	return append(lines, fmt.Sprintf("go version\t %s", info.GoVersion))
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
