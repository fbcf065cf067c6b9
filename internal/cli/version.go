// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the release version baked into the binary
const Version = "0.2.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "apt-world version %s\n", Version)
		fmt.Fprintln(out, "List packages explicitly installed by the user")
		fmt.Fprintln(out, "https://github.com/pkgtools/apt-world")
	},
}
