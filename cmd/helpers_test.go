package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// runCommand executes the root command with the given args and captures output.
//
// Both stdout and stderr are captured into one buffer, matching what a user
// sees in a terminal.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	if args == nil {
		args = []string{}
	}

	// Flag values persist on the shared rootCmd across Execute calls; a stale
	// --help from an earlier test would short-circuit this run into help output.
	if f := rootCmd.Flags().Lookup("help"); f != nil {
		require.NoError(t, f.Value.Set("false"))
		f.Changed = false
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()

	err := ExecuteTest()
	return out.String(), err
}

// writeFixture writes a test fixture file and returns its path.
func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// resetAssignFlags restores assign command flags between tests.
func resetAssignFlags() {
	assignJobFlag = ""
	assignDepsFlag = ""
	assignOutputFlag = ""
	assignFileFlag = ""
	assignSortFlag = false
}

// jobFixture is a two-group job config used across command tests.
const jobFixture = `
package-manager: npm
dependency-groups:
  - name: angular
    rules:
      patterns: ["@angular/*"]
  - name: types
    rules:
      patterns: ["@types/*"]
`

// depsFixture is a resolved dependency list used across command tests.
const depsFixture = `[
  {"name": "@angular/core", "version": "17.0.0", "previous_version": "16.2.0"},
  {"name": "@types/node", "version": "20.1.0"},
  {"name": "lodash", "version": "4.17.21"}
]`
