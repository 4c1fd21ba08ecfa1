// Package output provides formatters for exporting assignment results.
// It supports JSON and YAML output formats as alternatives to the default
// table display.
package output

import (
	"github.com/ajxudir/depgroups/pkg/deps"
	"github.com/ajxudir/depgroups/pkg/grouping"
)

// Result is the serializable outcome of one assignment pass.
//
// Fields:
//   - PackageManager: The job's ecosystem identifier
//   - Groups: Per-group assignment outcomes in declaration order
//   - Ungrouped: Dependencies that matched no group, in input order
type Result struct {
	PackageManager string            `json:"package_manager" yaml:"package-manager"`
	Groups         []GroupResult     `json:"groups" yaml:"groups"`
	Ungrouped      []deps.Dependency `json:"ungrouped_dependencies" yaml:"ungrouped-dependencies"`
}

// GroupResult is one group's share of the assignment outcome.
//
// Fields:
//   - Name: The group name
//   - Patterns: The inclusion patterns the group was declared with
//   - ExcludePatterns: The exclusion patterns, if any
//   - Dependencies: Dependencies assigned to this group, in processing order
type GroupResult struct {
	Name            string            `json:"name" yaml:"name"`
	Patterns        []string          `json:"patterns" yaml:"patterns"`
	ExcludePatterns []string          `json:"exclude_patterns,omitempty" yaml:"exclude-patterns,omitempty"`
	Dependencies    []deps.Dependency `json:"dependencies" yaml:"dependencies"`
}

// NewResult captures an engine's state into a serializable result.
//
// Parameters:
//   - packageManager: The job's ecosystem identifier
//   - engine: The configured grouping engine to read from
//
// Returns:
//   - *Result: Snapshot of groups and ungrouped dependencies
//
// Example:
//
//	result := output.NewResult(job.PackageManager, engine)
func NewResult(packageManager string, engine *grouping.Engine) *Result {
	groups := make([]GroupResult, 0, len(engine.Groups()))
	for _, group := range engine.Groups() {
		groups = append(groups, GroupResult{
			Name:            group.Name,
			Patterns:        group.Rules.Patterns,
			ExcludePatterns: group.Rules.ExcludePatterns,
			Dependencies:    group.Dependencies,
		})
	}

	return &Result{
		PackageManager: packageManager,
		Groups:         groups,
		Ungrouped:      engine.UngroupedDependencies(),
	}
}

// SortDependencies reorders every dependency list for display.
//
// Each group's dependencies and the ungrouped collection are sorted by name
// and canonical semver. Group order itself stays as declared; only the lists
// inside each section change.
func (r *Result) SortDependencies() {
	for i := range r.Groups {
		r.Groups[i].Dependencies = deps.SortForDisplay(r.Groups[i].Dependencies)
	}
	r.Ungrouped = deps.SortForDisplay(r.Ungrouped)
}
