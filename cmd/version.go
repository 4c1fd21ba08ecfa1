package cmd

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
)

// Build information, set at link time via -ldflags.
var (
	// Version is the semantic version of this build.
	Version = "dev"

	// GitCommit is the git commit hash this binary was built from.
	GitCommit = ""

	// BuildTime is the timestamp of this build.
	BuildTime = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		printVersionOutput(cmd.OutOrStdout())
	},
}

// printVersionOutput prints version, build, and runtime information.
//
// Output includes the version string, Go runtime version, and, when set at
// build time, the git commit and build date.
//
// Parameters:
//   - w: Destination writer, typically stdout
func printVersionOutput(w io.Writer) {
	fmt.Fprintf(w, "  Version: %s\n", Version)
	fmt.Fprintf(w, "  Go:      %s\n", runtime.Version())
	if GitCommit != "" {
		fmt.Fprintf(w, "  Git:     %s\n", GitCommit)
	}
	if BuildTime != "" {
		fmt.Fprintf(w, "  Date:    %s\n", BuildTime)
	}
}
