package verbose

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// withCapture runs fn with verbose enabled and output captured.
func withCapture(t *testing.T, fn func()) string {
	t.Helper()

	var buf bytes.Buffer
	SetWriter(&buf)
	Enable()
	defer func() {
		Disable()
		SetWriter(os.Stderr)
	}()

	fn()
	return buf.String()
}

// TestEnableDisable tests the enabled flag transitions.
func TestEnableDisable(t *testing.T) {
	Enable()
	assert.True(t, IsEnabled())

	Disable()
	assert.False(t, IsEnabled())
}

// TestInfoSuppressedWhenDisabled tests that disabled logging writes nothing.
func TestInfoSuppressedWhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	defer SetWriter(os.Stderr)
	Disable()

	Info("hidden")
	Infof("hidden %d", 42)
	JobLoaded("job.yml", 2)
	GroupSynthesized("npm group")
	DependencyAssigned("lodash", "utils")
	DependencyUngrouped("lodash")

	assert.Empty(t, buf.String())
}

// TestInfoOutput tests the [DEBUG] prefix formatting.
func TestInfoOutput(t *testing.T) {
	out := withCapture(t, func() {
		Info("plain message")
		Infof("formatted %s", "message")
	})

	assert.Contains(t, out, "[DEBUG] plain message\n")
	assert.Contains(t, out, "[DEBUG] formatted message\n")
}

// TestDomainHelpers tests the depgroups-specific trace helpers.
//
// It verifies:
//   - Each helper names its subject in the debug output
func TestDomainHelpers(t *testing.T) {
	out := withCapture(t, func() {
		JobLoaded("job.yml", 3)
		GroupSynthesized("npm group")
		DependencyAssigned("@angular/core", "angular")
		DependencyUngrouped("lodash")
	})

	assert.Contains(t, out, "Job config loaded: job.yml (3 dependency groups)")
	assert.Contains(t, out, "Synthesized catch-all group 'npm group'")
	assert.Contains(t, out, "Dependency '@angular/core' assigned to group 'angular'")
	assert.Contains(t, out, "Dependency 'lodash' matched no groups")
}

// TestWithDocRef tests documentation reference lookup.
//
// It verifies:
//   - Known topics append their doc path and hint
//   - Unknown topics print only the message
func TestWithDocRef(t *testing.T) {
	out := withCapture(t, func() {
		WithDocRef("groups", "group matched nothing")
	})
	assert.Contains(t, out, "group matched nothing")
	assert.Contains(t, out, "docs/configuration.md#dependency-groups")

	out = withCapture(t, func() {
		WithDocRef("unknown-topic", "just the message")
	})
	assert.Contains(t, out, "just the message")
	assert.NotContains(t, out, "See")
}
