package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/depgroups/pkg/errors"
)

// TestRunAssignTable tests the assign command with default table output.
//
// It verifies:
//   - Grouped dependencies render under their group names
//   - Unmatched dependencies render as ungrouped
func TestRunAssignTable(t *testing.T) {
	defer resetAssignFlags()
	dir := t.TempDir()
	jobPath := writeFixture(t, dir, "job.yml", jobFixture)
	depsPath := writeFixture(t, dir, "deps.json", depsFixture)

	out, err := runCommand(t, "assign", "-j", jobPath, "-d", depsPath)
	require.NoError(t, err)

	assert.Contains(t, out, "angular")
	assert.Contains(t, out, "@angular/core")
	assert.Contains(t, out, "@types/node")
	assert.Contains(t, out, "(ungrouped)")
	assert.Contains(t, out, "lodash")
	assert.Contains(t, out, "2 grouped, 1 ungrouped across 2 groups")
}

// TestRunAssignJSON tests the assign command with JSON output.
//
// It verifies:
//   - The output is machine-readable JSON with group assignments
func TestRunAssignJSON(t *testing.T) {
	defer resetAssignFlags()
	dir := t.TempDir()
	jobPath := writeFixture(t, dir, "job.yml", jobFixture)
	depsPath := writeFixture(t, dir, "deps.json", depsFixture)

	out, err := runCommand(t, "assign", "-j", jobPath, "-d", depsPath, "-o", "json")
	require.NoError(t, err)

	assert.Contains(t, out, `"package_manager": "npm"`)
	assert.Contains(t, out, `"ungrouped_dependencies"`)
	assert.Contains(t, out, `"@angular/core"`)
}

// TestRunAssignToFile tests writing assign output to a file.
//
// It verifies:
//   - The rendered result lands in the requested file instead of stdout
func TestRunAssignToFile(t *testing.T) {
	defer resetAssignFlags()
	dir := t.TempDir()
	jobPath := writeFixture(t, dir, "job.yml", jobFixture)
	depsPath := writeFixture(t, dir, "deps.json", depsFixture)
	outPath := filepath.Join(dir, "result.yml")

	out, err := runCommand(t, "assign", "-j", jobPath, "-d", depsPath, "-o", "yaml", "-f", outPath)
	require.NoError(t, err)
	assert.NotContains(t, out, "@angular/core")

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "package-manager: npm")
	assert.Contains(t, string(content), "@angular/core")
}

// TestRunAssignEmptyGroupWarning tests warning passthrough.
//
// It verifies:
//   - A group matching nothing produces the consolidated diagnostic
//   - The assignment still succeeds
func TestRunAssignEmptyGroupWarning(t *testing.T) {
	defer resetAssignFlags()
	dir := t.TempDir()
	jobPath := writeFixture(t, dir, "job.yml", jobFixture)
	depsPath := writeFixture(t, dir, "deps.json", `[{"name": "@angular/core", "version": "17.0.0"}]`)

	out, err := runCommand(t, "assign", "-j", jobPath, "-d", depsPath)
	require.NoError(t, err)

	assert.Contains(t, out, "no dependencies matched the following groups: types")
}

// TestRunAssignSorted tests the --sort flag.
//
// It verifies:
//   - Sorted output lists dependencies by name within each section
//   - Default output keeps processing order
func TestRunAssignSorted(t *testing.T) {
	dir := t.TempDir()
	jobPath := writeFixture(t, dir, "job.yml", jobFixture)
	depsPath := writeFixture(t, dir, "deps.json", `[
  {"name": "@angular/router", "version": "17.0.0"},
  {"name": "@angular/core", "version": "17.0.0"},
  {"name": "@types/node", "version": "20.1.0"}
]`)

	t.Run("default keeps processing order", func(t *testing.T) {
		defer resetAssignFlags()
		out, err := runCommand(t, "assign", "-j", jobPath, "-d", depsPath)
		require.NoError(t, err)

		assert.Less(t, strings.Index(out, "@angular/router"), strings.Index(out, "@angular/core"))
	})

	t.Run("sort orders by name", func(t *testing.T) {
		defer resetAssignFlags()
		out, err := runCommand(t, "assign", "-j", jobPath, "-d", depsPath, "--sort")
		require.NoError(t, err)

		assert.Less(t, strings.Index(out, "@angular/core"), strings.Index(out, "@angular/router"))
	})
}

// TestRunAssignErrors tests assign failure modes.
//
// It verifies:
//   - Missing input files surface errors
//   - Invalid job configs surface validation errors with config exit code
func TestRunAssignErrors(t *testing.T) {
	dir := t.TempDir()
	jobPath := writeFixture(t, dir, "job.yml", jobFixture)
	depsPath := writeFixture(t, dir, "deps.json", depsFixture)

	t.Run("missing job file", func(t *testing.T) {
		defer resetAssignFlags()
		_, err := runCommand(t, "assign", "-j", filepath.Join(dir, "missing.yml"), "-d", depsPath)
		assert.Error(t, err)
	})

	t.Run("missing deps file", func(t *testing.T) {
		defer resetAssignFlags()
		_, err := runCommand(t, "assign", "-j", jobPath, "-d", filepath.Join(dir, "missing.json"))
		assert.Error(t, err)
	})

	t.Run("invalid job config", func(t *testing.T) {
		defer resetAssignFlags()
		badJob := writeFixture(t, dir, "bad-job.yml", strings.ReplaceAll(jobFixture, "package-manager: npm", ""))

		_, err := runCommand(t, "assign", "-j", badJob, "-d", depsPath)
		require.Error(t, err)
		assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))
	})

	t.Run("missing required flags", func(t *testing.T) {
		defer resetAssignFlags()
		_, err := runCommand(t, "assign")
		assert.Error(t, err)
	})
}

// TestRunAssignSecuritySynthesis tests catch-all synthesis end to end.
//
// It verifies:
//   - A security-only multi-directory job with no groups assigns everything
//     to the synthesized "<package-manager> group"
func TestRunAssignSecuritySynthesis(t *testing.T) {
	defer resetAssignFlags()
	dir := t.TempDir()
	jobPath := writeFixture(t, dir, "job.yml", `
package-manager: bundler
security-updates-only: true
source:
  directories: ["/app", "/lib"]
`)
	depsPath := writeFixture(t, dir, "deps.json", `[
  {"name": "rails", "version": "7.1.0"},
  {"name": "rack", "version": "3.0.0"}
]`)

	out, err := runCommand(t, "assign", "-j", jobPath, "-d", depsPath)
	require.NoError(t, err)

	assert.Contains(t, out, "bundler group")
	assert.Contains(t, out, "rails")
	assert.Contains(t, out, "rack")
	assert.Contains(t, out, "2 grouped, 0 ungrouped across 1 groups")
}
