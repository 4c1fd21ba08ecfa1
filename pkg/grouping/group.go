// Package grouping assigns resolved dependencies to declared dependency
// groups so downstream update planning can process each group, and any
// leftover ungrouped dependencies, independently.
//
// The package sits between dependency resolution (upstream) and per-group
// update planning (downstream): an Engine is built once per update job,
// performs exactly one assignment pass, and is read-only afterwards.
package grouping

import (
	"github.com/ajxudir/depgroups/pkg/config"
	"github.com/ajxudir/depgroups/pkg/deps"
	"github.com/ajxudir/depgroups/pkg/matching"
)

// Group is a named bucket of dependencies with matching rules.
//
// A Group accumulates dependencies during the engine's single assignment
// pass; its Dependencies collection is only ever appended to, and only
// during that pass.
//
// Fields:
//   - Name: Unique group identifier within an engine instance
//   - Rules: The declared pattern lists this group was built from
//   - Dependencies: Dependencies assigned during the assignment pass, in
//     processing order; empty until assignment runs
type Group struct {
	Name         string
	Rules        config.GroupRules
	Dependencies []deps.Dependency

	include []matching.Matcher
	exclude []matching.Matcher
}

// NewGroup creates a group and compiles its rule patterns into matchers.
//
// Patterns are compiled once here so the membership predicate never
// re-parses them during assignment.
//
// Parameters:
//   - name: The group name
//   - rules: Inclusion patterns and optional exclusion patterns
//
// Returns:
//   - *Group: A new group with an empty dependency collection
//   - error: Pattern parse error if any rule pattern is invalid
//
// Example:
//
//	group, err := grouping.NewGroup("angular", config.GroupRules{
//	    Patterns: []string{"@angular/*"},
//	})
func NewGroup(name string, rules config.GroupRules) (*Group, error) {
	include, err := matching.ParseMatchers(rules.Patterns)
	if err != nil {
		return nil, err
	}

	exclude, err := matching.ParseMatchers(rules.ExcludePatterns)
	if err != nil {
		return nil, err
	}

	return &Group{
		Name:         name,
		Rules:        rules,
		Dependencies: make([]deps.Dependency, 0),
		include:      include,
		exclude:      exclude,
	}, nil
}

// Contains is the membership predicate: it reports whether the dependency
// belongs to this group.
//
// A dependency belongs when its name matches at least one inclusion pattern
// and no exclusion pattern. Exclusions always win over inclusions.
//
// Parameters:
//   - dependency: The dependency to test
//
// Returns:
//   - bool: true if the dependency belongs to this group
func (g *Group) Contains(dependency deps.Dependency) bool {
	name := dependency.GetName()
	if matching.MatchesAny(name, g.exclude) {
		return false
	}
	return matching.MatchesAny(name, g.include)
}

// add appends a dependency to the group's collection.
//
// Only the engine's assignment pass calls this; appends preserve dependency
// processing order.
func (g *Group) add(dependency deps.Dependency) {
	g.Dependencies = append(g.Dependencies, dependency)
}
