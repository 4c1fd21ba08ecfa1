package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/iancoleman/orderedmap"
	"gopkg.in/yaml.v3"
)

// Format represents the output format type.
type Format string

const (
	// FormatTable is the default terminal table output.
	FormatTable Format = "table"
	// FormatJSON outputs data as JSON.
	FormatJSON Format = "json"
	// FormatYAML outputs data as YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format string into a Format type.
//
// The parsing is case-insensitive. Valid values are "json" and "yaml".
// Any unrecognized format returns FormatTable as the default.
//
// Parameters:
//   - s: Format string to parse (e.g., "json", "YAML")
//
// Returns:
//   - Format: The parsed format, or FormatTable if unrecognized
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON
	case "yaml", "yml":
		return FormatYAML
	default:
		return FormatTable
	}
}

// IsStructuredFormat returns true if the format produces machine-readable output.
//
// Structured formats (JSON, YAML) must not be interleaved with warning text
// on the same stream.
//
// Parameters:
//   - f: The format to check
//
// Returns:
//   - bool: true if format is JSON or YAML; false for table format
func IsStructuredFormat(f Format) bool {
	return f == FormatJSON || f == FormatYAML
}

// Formatter handles writing an assignment result in a specific format.
//
// Fields:
//   - format: The output format (Table, JSON, or YAML)
//   - writer: Destination for formatted output
type Formatter struct {
	format Format
	writer io.Writer
}

// NewFormatter creates a new formatter for the given format and writer.
//
// Parameters:
//   - format: The desired output format
//   - writer: Destination for formatted output
//
// Returns:
//   - *Formatter: A new formatter instance ready to write a result
func NewFormatter(format Format, writer io.Writer) *Formatter {
	return &Formatter{
		format: format,
		writer: writer,
	}
}

// Format returns the configured format.
//
// Returns:
//   - Format: The format this formatter writes
func (f *Formatter) Format() Format {
	return f.format
}

// Write renders the result in the configured format.
//
// Parameters:
//   - result: The assignment result to render
//
// Returns:
//   - error: Marshal or write error; nil on success
func (f *Formatter) Write(result *Result) error {
	switch f.format {
	case FormatJSON:
		return f.writeJSON(result)
	case FormatYAML:
		return f.writeYAML(result)
	default:
		return f.writeTable(result)
	}
}

// writeJSON renders the result as indented JSON.
//
// Groups serialize as an ordered object keyed by group name so declaration
// order survives serialization.
func (f *Formatter) writeJSON(result *Result) error {
	data := orderedmap.New()
	data.Set("package_manager", result.PackageManager)

	groups := orderedmap.New()
	for _, group := range result.Groups {
		entry := orderedmap.New()
		entry.Set("patterns", group.Patterns)
		if len(group.ExcludePatterns) > 0 {
			entry.Set("exclude_patterns", group.ExcludePatterns)
		}
		entry.Set("dependencies", group.Dependencies)
		groups.Set(group.Name, entry)
	}
	data.Set("groups", groups)
	data.Set("ungrouped_dependencies", result.Ungrouped)

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to marshal JSON output: %w", err)
	}

	_, err := f.writer.Write(buf.Bytes())
	return err
}

// writeYAML renders the result as YAML.
func (f *Formatter) writeYAML(result *Result) error {
	content, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML output: %w", err)
	}

	_, err = f.writer.Write(content)
	return err
}
