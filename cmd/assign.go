package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajxudir/depgroups/pkg/config"
	"github.com/ajxudir/depgroups/pkg/deps"
	"github.com/ajxudir/depgroups/pkg/grouping"
	"github.com/ajxudir/depgroups/pkg/output"
	"github.com/ajxudir/depgroups/pkg/warnings"
)

var (
	assignJobFlag    string
	assignDepsFlag   string
	assignOutputFlag string
	assignFileFlag   string
	assignSortFlag   bool
)

var assignCmd = &cobra.Command{
	Use:   "assign",
	Short: "Assign resolved dependencies to dependency groups",
	Long:  `Load an update-job config and a resolved dependency list, run the one-shot assignment pass, and print each group's dependencies plus the ungrouped leftovers.`,
	RunE:  runAssign,
}

func init() {
	assignCmd.Flags().StringVarP(&assignJobFlag, "job", "j", "", "Job config file path (required)")
	assignCmd.Flags().StringVarP(&assignDepsFlag, "deps", "d", "", "Resolved dependency list file, JSON or YAML (required)")
	assignCmd.Flags().StringVarP(&assignOutputFlag, "output", "o", "", "Output format: json, yaml (default: table)")
	assignCmd.Flags().StringVarP(&assignFileFlag, "file", "f", "", "Write output to a file instead of stdout")
	assignCmd.Flags().BoolVarP(&assignSortFlag, "sort", "s", false, "Sort dependencies by name and version instead of processing order")
	_ = assignCmd.MarkFlagRequired("job")
	_ = assignCmd.MarkFlagRequired("deps")
}

// runAssign executes the assign command.
//
// It builds the grouping engine from the job config, parses the resolved
// dependency list, runs the single assignment pass, and renders the result.
// Warnings are buffered while structured output is being produced so JSON
// and YAML never interleave with diagnostic text.
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Unused positional arguments
//
// Returns:
//   - error: Config, parse, or state error; mapped to exit codes by Execute
func runAssign(cmd *cobra.Command, args []string) error {
	format := output.ParseFormat(assignOutputFlag)

	// Buffer warnings so structured output stays parseable.
	collector := &warnings.Collector{}
	restoreWarnings := warnings.SetWarningWriter(collector)
	defer restoreWarnings()
	defer collector.Flush(cmd.ErrOrStderr())

	job, err := config.LoadJob(assignJobFlag)
	if err != nil {
		return err
	}

	dependencies, err := deps.ParseFile(assignDepsFlag)
	if err != nil {
		return err
	}

	engine, err := grouping.FromJob(job)
	if err != nil {
		return err
	}

	if err := engine.AssignToGroups(dependencies); err != nil {
		return err
	}

	writer, closeWriter, err := assignWriter(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeWriter()

	result := output.NewResult(job.PackageManager, engine)
	if assignSortFlag {
		result.SortDependencies()
	}
	return output.NewFormatter(format, writer).Write(result)
}

// assignWriter resolves the output destination for the assign command.
//
// Returns the command's stdout unless --file was given, in which case the
// file is created and a close function returned.
//
// Parameters:
//   - stdout: The command's standard output writer
//
// Returns:
//   - io.Writer: Destination for the rendered result
//   - func(): Cleanup that closes the file when one was opened
//   - error: File creation error
func assignWriter(stdout io.Writer) (io.Writer, func(), error) {
	if assignFileFlag == "" {
		return stdout, func() {}, nil
	}

	f, err := os.Create(assignFileFlag)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
