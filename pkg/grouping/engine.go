package grouping

import (
	"fmt"
	"strings"

	"github.com/ajxudir/depgroups/pkg/config"
	"github.com/ajxudir/depgroups/pkg/deps"
	"github.com/ajxudir/depgroups/pkg/errors"
	"github.com/ajxudir/depgroups/pkg/verbose"
	"github.com/ajxudir/depgroups/pkg/warnings"
)

// assignmentState models the engine's one-shot lifecycle explicitly.
//
// The only legal transition is stateUnconfigured -> stateConfigured, taken
// exactly once at the end of a successful assignment pass.
type assignmentState int

const (
	// stateUnconfigured means no assignment pass has run yet.
	stateUnconfigured assignmentState = iota

	// stateConfigured means the single assignment pass has completed and the
	// engine is read-only.
	stateConfigured
)

// Engine distributes resolved dependencies across dependency groups.
//
// An Engine is built once per update job via FromJob, performs exactly one
// AssignToGroups pass, and is read-only afterwards. It is not safe for
// concurrent use; callers must guarantee at most one in-flight assignment
// per instance.
type Engine struct {
	groups    []*Group
	ungrouped []deps.Dependency
	state     assignmentState
}

// FromJob builds an engine from a job descriptor.
//
// It performs the following operations:
//   - Step 1: Synthesizes a catch-all group when the job shape requires one
//     (see catchAllGroup), appending it to the job's declared groups
//   - Step 2: Instantiates one Group per declared group, preserving
//     declaration order and compiling rule patterns
//   - Step 3: Returns an unconfigured engine with an empty ungrouped collection
//
// The job descriptor may be mutated: synthesis appends to DependencyGroups
// and, when a pull request is being refreshed, invokes the job's
// refresh-override hook with the synthesized group's name.
//
// Parameters:
//   - job: The update-job descriptor
//
// Returns:
//   - *Engine: A new unconfigured engine
//   - error: ValidationError if a group's rule patterns fail to compile
//
// Example:
//
//	engine, err := grouping.FromJob(job)
func FromJob(job *config.Job) (*Engine, error) {
	if synthetic, ok := catchAllGroup(job); ok {
		job.DependencyGroups = append(job.DependencyGroups, synthetic)
		verbose.GroupSynthesized(synthetic.Name)

		// Security pull requests opened before catch-all synthesis existed
		// carry no group name; refreshing one must target the new group.
		if job.UpdatingAPullRequest {
			job.OverrideGroupToRefreshDueToOldDefaults(synthetic.Name)
		}
	}

	groups := make([]*Group, 0, len(job.DependencyGroups))
	for i, declared := range job.DependencyGroups {
		group, err := NewGroup(declared.Name, declared.Rules)
		if err != nil {
			return nil, &errors.ValidationError{
				Category: errors.ValidationCategoryGroup,
				Field:    fmt.Sprintf("dependency-groups[%d].rules", i),
				Message:  err.Error(),
				Expected: "glob-like patterns such as \"lodash\" or \"@types/*\"",
			}
		}
		groups = append(groups, group)
	}

	return &Engine{
		groups:    groups,
		ungrouped: make([]deps.Dependency, 0),
		state:     stateUnconfigured,
	}, nil
}

// catchAllGroup decides whether the job shape requires a synthesized group.
//
// Security-only jobs spanning multiple source directories must still be
// grouped so the rest of the pipeline can treat them uniformly; when no
// groups were declared, everything defaults into one catch-all group named
// "<package-manager> group" that matches every dependency.
//
// Parameters:
//   - job: The update-job descriptor
//
// Returns:
//   - config.GroupConfig: The synthetic group descriptor
//   - bool: true if synthesis applies to this job
func catchAllGroup(job *config.Job) (config.GroupConfig, bool) {
	if !job.SecurityUpdatesOnly || !job.MultiDirectory() || len(job.DependencyGroups) > 0 {
		return config.GroupConfig{}, false
	}

	return config.GroupConfig{
		Name:  fmt.Sprintf("%s group", job.PackageManager),
		Rules: config.GroupRules{Patterns: []string{"*"}},
	}, true
}

// FindGroup returns the first group with the given name.
//
// Pure lookup with no mutation.
//
// Parameters:
//   - name: The group name to look up
//
// Returns:
//   - *Group: The first group whose name equals the input, or nil if none
func (e *Engine) FindGroup(name string) *Group {
	for _, group := range e.groups {
		if group.Name == name {
			return group
		}
	}
	return nil
}

// AssignToGroups runs the single assignment pass over resolved dependencies.
//
// It performs the following operations:
//   - Step 1: Rejects the call with a StateError if a pass already ran,
//     leaving all engine state unchanged
//   - Step 2: With no groups, moves the entire input verbatim to the
//     ungrouped collection
//   - Step 3: Otherwise appends each dependency, in input order, to every
//     group whose membership predicate matches; dependencies matching
//     multiple groups land in all of them, dependencies matching none land
//     in the ungrouped collection
//   - Step 4: Emits one consolidated warning naming every group that
//     matched nothing (advisory only)
//   - Step 5: Transitions the engine to its configured, read-only state
//
// Parameters:
//   - dependencies: Resolved dependencies in resolver order; may be empty
//
// Returns:
//   - error: StateError if the engine was already configured, nil otherwise
func (e *Engine) AssignToGroups(dependencies []deps.Dependency) error {
	if e.state == stateConfigured {
		return errors.NewStateError("assign", "dependencies have already been assigned to groups")
	}

	if len(e.groups) == 0 {
		e.ungrouped = append(e.ungrouped, dependencies...)
	} else {
		for _, dependency := range dependencies {
			matched := false
			for _, group := range e.groups {
				if !group.Contains(dependency) {
					continue
				}
				group.add(dependency)
				matched = true
				verbose.DependencyAssigned(dependency.Name, group.Name)
			}
			if !matched {
				e.ungrouped = append(e.ungrouped, dependency)
				verbose.DependencyUngrouped(dependency.Name)
			}
		}
	}

	e.warnEmptyGroups()
	e.state = stateConfigured
	return nil
}

// Groups returns the ordered group collection.
//
// Returns:
//   - []*Group: Groups in declaration order
func (e *Engine) Groups() []*Group {
	return e.groups
}

// UngroupedDependencies returns the dependencies that matched no group.
//
// Returns:
//   - []deps.Dependency: Ungrouped dependencies in input order; empty until
//     the assignment pass has run
func (e *Engine) UngroupedDependencies() []deps.Dependency {
	return e.ungrouped
}

// Configured reports whether the assignment pass has completed.
//
// Returns:
//   - bool: true once AssignToGroups has run successfully
func (e *Engine) Configured() bool {
	return e.state == stateConfigured
}

// warnEmptyGroups emits one consolidated diagnostic for groups that matched
// no dependencies.
//
// Advisory only: it never fails the assignment pass and never alters any
// collection. All empty group names appear in a single message.
func (e *Engine) warnEmptyGroups() {
	var empty []string
	for _, group := range e.groups {
		if len(group.Dependencies) == 0 {
			empty = append(empty, group.Name)
		}
	}
	if len(empty) == 0 {
		return
	}

	warnings.Warnf("Warning: no dependencies matched the following groups: %s\n", strings.Join(empty, ", "))
	warnings.Warnf("  Hint: check for misspelled patterns, overly restrictive allow rules, or dependencies that no longer exist\n")
}
