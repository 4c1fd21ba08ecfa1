package deps

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ajxudir/depgroups/pkg/errors"
	"github.com/ajxudir/depgroups/pkg/verbose"
)

// ParseFile reads and parses a resolved-dependency list from a file.
//
// The format is chosen by file extension: .json parses as JSON, .yml/.yaml
// parse as YAML. Unknown extensions try JSON first, then YAML.
//
// Parameters:
//   - path: Path to the dependency list file
//
// Returns:
//   - []Dependency: Parsed dependencies in file order
//   - error: Read error, parse error, or validation error
//
// Example:
//
//	dependencies, err := deps.ParseFile("resolved.json")
func ParseFile(path string) ([]Dependency, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dependency file: %w", err)
	}

	var dependencies []Dependency
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		dependencies, err = ParseJSON(content)
	case ".yml", ".yaml":
		dependencies, err = ParseYAML(content)
	default:
		dependencies, err = ParseJSON(content)
		if err != nil {
			dependencies, err = ParseYAML(content)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	verbose.Infof("Parsed %d resolved dependencies from %s", len(dependencies), path)
	return dependencies, nil
}

// ParseJSON parses a resolved-dependency list from JSON content.
//
// Both shapes produced by resolvers are accepted:
//   - A bare array: [{"name": "lodash", "version": "4.17.21"}, ...]
//   - A wrapped list: {"dependencies": [...]}
//
// Parameters:
//   - content: Raw JSON bytes
//
// Returns:
//   - []Dependency: Parsed dependencies in declaration order
//   - error: Parse or validation error
func ParseJSON(content []byte) ([]Dependency, error) {
	trimmed := strings.TrimSpace(string(content))
	if strings.HasPrefix(trimmed, "[") {
		var dependencies []Dependency
		if err := json.Unmarshal(content, &dependencies); err != nil {
			return nil, err
		}
		return validate(dependencies)
	}

	var list List
	if err := json.Unmarshal(content, &list); err != nil {
		return nil, err
	}
	return validate(list.Dependencies)
}

// ParseYAML parses a resolved-dependency list from YAML content.
//
// Both a bare sequence and a mapping with a "dependencies" key are accepted,
// mirroring ParseJSON.
//
// Parameters:
//   - content: Raw YAML bytes
//
// Returns:
//   - []Dependency: Parsed dependencies in declaration order
//   - error: Parse or validation error
func ParseYAML(content []byte) ([]Dependency, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(content, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	if node.Content[0].Kind == yaml.SequenceNode {
		var dependencies []Dependency
		if err := node.Decode(&dependencies); err != nil {
			return nil, err
		}
		return validate(dependencies)
	}

	var list List
	if err := node.Decode(&list); err != nil {
		return nil, err
	}
	return validate(list.Dependencies)
}

// validate rejects entries without a name.
//
// Unnamed entries cannot participate in group matching, so they fail parsing
// instead of silently landing in the ungrouped collection.
func validate(dependencies []Dependency) ([]Dependency, error) {
	for i, d := range dependencies {
		if strings.TrimSpace(d.Name) == "" {
			return nil, &errors.ValidationError{
				Category: errors.ValidationCategoryDependency,
				Field:    fmt.Sprintf("dependencies[%d].name", i),
				Message:  "dependency entry has no name",
				Expected: "a non-empty package name",
			}
		}
	}
	return dependencies, nil
}
