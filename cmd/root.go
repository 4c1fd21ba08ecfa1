// Package cmd implements the command-line interface for depgroups.
// It provides commands for assigning resolved dependencies to dependency
// groups and for inspecting a job's group configuration.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ajxudir/depgroups/pkg/errors"
	"github.com/ajxudir/depgroups/pkg/verbose"
)

var exitFunc = os.Exit
var verboseFlag bool
var versionFlag bool

var rootCmd = &cobra.Command{
	Use:   "depgroups",
	Short: "Assign resolved dependencies to update-job dependency groups",
	Long:  `Distribute a resolved dependency list across the dependency groups declared in an update-job config, so each group can be update-planned independently.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			verbose.Enable()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if versionFlag {
			printVersionOutput(cmd.OutOrStdout())
			return
		}
		_ = cmd.Help()
	},
}

// Execute runs the root command and exits with appropriate code:
//   - 0: Success
//   - 2: Failure (unreadable input, internal error)
//   - 3: Configuration or state error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		code := errors.GetExitCode(err)
		verbose.Infof("Exit code %d: %v", code, err)
		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
//
// Unlike Execute(), this function returns the error directly without calling
// os.Exit, making it suitable for use in test suites.
//
// Returns:
//   - error: Command execution error, or nil on success
func ExecuteTest() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output")

	// Add -v/--version as a LOCAL flag (not persistent) so it only works on root command
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "v", false, "Show version information")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(assignCmd)
}
