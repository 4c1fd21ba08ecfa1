// Package verbose provides debug logging with documentation references.
package verbose

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

var (
	mu      sync.RWMutex
	enabled bool
	writer  io.Writer = os.Stderr
)

// Enable turns on verbose logging and allows debug messages to be printed.
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Disable turns off verbose logging and prevents debug messages from being printed.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// IsEnabled returns whether verbose logging is currently enabled.
//
// Returns:
//   - bool: true if verbose logging is enabled, false otherwise
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetWriter sets the output writer for verbose messages.
//
// Parameters:
//   - w: The io.Writer to use for output; if nil, the writer remains unchanged
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w != nil {
		writer = w
	}
}

// getWriter returns the current writer with proper locking for internal use.
func getWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return writer
}

// Info prints an informational verbose message if enabled.
//
// Parameters:
//   - msg: The message string to print
func Info(msg string) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] %s\n", msg)
	}
}

// Infof prints a formatted informational verbose message if enabled.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Infof(format string, args ...any) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] "+format+"\n", args...)
	}
}

// DocRef represents a documentation reference for a specific topic.
//
// Fields:
//   - Topic: A human-readable name for the documentation topic
//   - DocPath: The relative path to the documentation file or section
//   - Hint: A brief description of what the documentation covers
type DocRef struct {
	Topic   string
	DocPath string
	Hint    string
}

// Common documentation references.
var docRefs = map[string]DocRef{
	"job": {
		Topic:   "Job Configuration",
		DocPath: "docs/configuration.md#job",
		Hint:    "See job config schema for security and refresh flags",
	},
	"groups": {
		Topic:   "Dependency Groups",
		DocPath: "docs/configuration.md#dependency-groups",
		Hint:    "Declare groups with patterns and exclude-patterns",
	},
	"patterns": {
		Topic:   "Group Patterns",
		DocPath: "docs/configuration.md#patterns",
		Hint:    "Patterns are case-insensitive globs; prefix with ! to exclude",
	},
	"deps": {
		Topic:   "Dependency Input",
		DocPath: "docs/cli.md#dependency-files",
		Hint:    "Supply resolver output as a JSON or YAML dependency list",
	},
}

// WithDocRef prints a verbose message with a documentation reference if enabled.
//
// Parameters:
//   - topic: The documentation topic key (e.g., "job", "groups", "patterns")
//   - message: The main message to print
func WithDocRef(topic, message string) {
	if !IsEnabled() {
		return
	}
	w := getWriter()
	_, _ = fmt.Fprintf(w, "[DEBUG] %s\n", message)
	if ref, ok := docRefs[strings.ToLower(topic)]; ok {
		_, _ = fmt.Fprintf(w, "        See %s: %s\n", ref.Topic, ref.DocPath)
		_, _ = fmt.Fprintf(w, "        %s\n", ref.Hint)
	}
}

// JobLoaded logs which job configuration file was loaded if enabled.
//
// Parameters:
//   - path: The file path to the job configuration that was loaded
//   - groups: Number of declared dependency groups in the job
func JobLoaded(path string, groups int) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Job config loaded: %s (%d dependency groups)\n", path, groups)
	}
}

// GroupSynthesized logs the creation of a synthetic catch-all group if enabled.
//
// Parameters:
//   - name: The synthesized group name
func GroupSynthesized(name string) {
	if IsEnabled() {
		w := getWriter()
		_, _ = fmt.Fprintf(w, "[DEBUG] Synthesized catch-all group '%s'\n", name)
		_, _ = fmt.Fprintf(w, "        Security-only jobs with multiple directories group everything\n")
	}
}

// DependencyAssigned logs a single group assignment if enabled.
//
// Parameters:
//   - dependency: The dependency name
//   - group: The group the dependency was appended to
func DependencyAssigned(dependency, group string) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Dependency '%s' assigned to group '%s'\n", dependency, group)
	}
}

// DependencyUngrouped logs a dependency that matched no groups if enabled.
//
// Parameters:
//   - dependency: The dependency name
func DependencyUngrouped(dependency string) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Dependency '%s' matched no groups\n", dependency)
	}
}
