package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajxudir/depgroups/pkg/config"
	"github.com/ajxudir/depgroups/pkg/grouping"
	"github.com/ajxudir/depgroups/pkg/output"
)

var groupsJobFlag string

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Show the dependency groups a job would use",
	Long:  `Load an update-job config and list its dependency groups with their patterns, including any catch-all group the engine would synthesize for security-only jobs.`,
	RunE:  runGroups,
}

func init() {
	groupsCmd.Flags().StringVarP(&groupsJobFlag, "job", "j", "", "Job config file path (required)")
	_ = groupsCmd.MarkFlagRequired("job")
}

// runGroups executes the groups command.
//
// Building the engine (rather than just reading the config) means the
// listing reflects catch-all synthesis exactly as an assignment run would.
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Unused positional arguments
//
// Returns:
//   - error: Config load or validation error
func runGroups(cmd *cobra.Command, args []string) error {
	job, err := config.LoadJob(groupsJobFlag)
	if err != nil {
		return err
	}

	engine, err := grouping.FromJob(job)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(engine.Groups()) == 0 {
		fmt.Fprintln(w, "No dependency groups declared; all dependencies would be ungrouped.")
		return nil
	}

	table := output.NewTable().
		AddColumn("NAME").
		AddColumn("PATTERNS").
		AddColumn("EXCLUDE-PATTERNS")

	for _, group := range engine.Groups() {
		table.AddRow(group.Name,
			strings.Join(group.Rules.Patterns, ", "),
			strings.Join(group.Rules.ExcludePatterns, ", "))
	}

	_, err = fmt.Fprint(w, table.Render())
	return err
}
