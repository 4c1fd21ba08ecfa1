package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPrintVersionOutput tests the behavior of printVersionOutput.
//
// It verifies:
//   - Version and Go runtime are always printed
//   - Git commit and build date appear only when set
func TestPrintVersionOutput(t *testing.T) {
	oldVersion := Version
	oldCommit := GitCommit
	oldBuildTime := BuildTime
	defer func() {
		Version = oldVersion
		GitCommit = oldCommit
		BuildTime = oldBuildTime
	}()

	t.Run("basic output", func(t *testing.T) {
		Version = "1.0.0"
		GitCommit = ""
		BuildTime = ""

		var buf bytes.Buffer
		printVersionOutput(&buf)

		assert.Contains(t, buf.String(), "Version: 1.0.0")
		assert.Contains(t, buf.String(), "Go:")
		assert.NotContains(t, buf.String(), "Git:")
		assert.NotContains(t, buf.String(), "Date:")
	})

	t.Run("full build metadata", func(t *testing.T) {
		Version = "1.2.3"
		GitCommit = "abc1234"
		BuildTime = "2026-01-01T00:00:00Z"

		var buf bytes.Buffer
		printVersionOutput(&buf)

		assert.Contains(t, buf.String(), "Git:     abc1234")
		assert.Contains(t, buf.String(), "Date:    2026-01-01T00:00:00Z")
	})
}

// TestVersionCommand tests the version subcommand end to end.
func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "Version:")
	assert.Contains(t, out, "Go:")
}
