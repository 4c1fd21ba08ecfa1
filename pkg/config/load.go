package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ajxudir/depgroups/pkg/errors"
	"github.com/ajxudir/depgroups/pkg/matching"
	"github.com/ajxudir/depgroups/pkg/verbose"
)

// LoadJob loads and validates a job descriptor from a YAML file.
//
// Parameters:
//   - path: Path to the job configuration file
//
// Returns:
//   - *Job: The loaded and validated job descriptor
//   - error: Read error, YAML error, or validation error
//
// Example:
//
//	job, err := config.LoadJob(".depgroups-job.yml")
func LoadJob(path string) (*Job, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job config: %w", err)
	}

	job := &Job{}
	if err := yaml.Unmarshal(content, job); err != nil {
		return nil, fmt.Errorf("failed to parse job config: %w", err)
	}

	if err := ValidateJob(job); err != nil {
		return nil, err
	}

	verbose.JobLoaded(path, len(job.DependencyGroups))
	return job, nil
}

// ValidateJob checks a job descriptor for configuration errors.
//
// It verifies:
//   - The package-manager identifier is present
//   - Every declared group has a non-empty, unique name
//   - Every declared group has at least one inclusion pattern
//   - All patterns compile into matchers
//
// Parameters:
//   - job: The job descriptor to validate
//
// Returns:
//   - error: A ValidationError describing the first problem found, or nil
func ValidateJob(job *Job) error {
	if strings.TrimSpace(job.PackageManager) == "" {
		return &errors.ValidationError{
			Category: errors.ValidationCategoryJob,
			Field:    "package-manager",
			Message:  "package-manager is required",
			Expected: "an ecosystem identifier such as \"npm\" or \"bundler\"",
		}
	}

	seen := make(map[string]struct{}, len(job.DependencyGroups))
	for i, group := range job.DependencyGroups {
		name := strings.TrimSpace(group.Name)
		if name == "" {
			return &errors.ValidationError{
				Category: errors.ValidationCategoryGroup,
				Field:    fmt.Sprintf("dependency-groups[%d].name", i),
				Message:  "group has no name",
				Expected: "a unique, non-empty group name",
			}
		}

		if _, exists := seen[name]; exists {
			return &errors.ValidationError{
				Category: errors.ValidationCategoryGroup,
				Field:    fmt.Sprintf("dependency-groups[%d].name", i),
				Message:  fmt.Sprintf("duplicate group name %q", name),
				Expected: "each group name to appear once",
				Hint:     "Merge the pattern lists of duplicate groups into one entry",
			}
		}
		seen[name] = struct{}{}

		if err := validateRules(i, group.Rules); err != nil {
			return err
		}
	}

	return nil
}

// validateRules checks one group's pattern lists.
func validateRules(index int, rules GroupRules) error {
	if len(rules.Patterns) == 0 {
		return &errors.ValidationError{
			Category: errors.ValidationCategoryGroup,
			Field:    fmt.Sprintf("dependency-groups[%d].rules.patterns", index),
			Message:  "group declares no inclusion patterns",
			Expected: "at least one pattern, e.g. [\"@angular/*\"]",
			Hint:     "Use the pattern \"*\" to match every dependency",
		}
	}

	if _, err := matching.ParseMatchers(rules.Patterns); err != nil {
		return &errors.ValidationError{
			Category: errors.ValidationCategoryGroup,
			Field:    fmt.Sprintf("dependency-groups[%d].rules.patterns", index),
			Message:  err.Error(),
			Expected: "glob-like patterns such as \"lodash\", \"@types/*\" or \"*-plugin\"",
		}
	}

	if _, err := matching.ParseMatchers(rules.ExcludePatterns); err != nil {
		return &errors.ValidationError{
			Category: errors.ValidationCategoryGroup,
			Field:    fmt.Sprintf("dependency-groups[%d].rules.exclude-patterns", index),
			Message:  err.Error(),
			Expected: "glob-like patterns such as \"@angular/cli\"",
		}
	}

	return nil
}
