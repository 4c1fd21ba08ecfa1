// Package config handles loading and validation of update-job configuration.
// A job descriptor names the package-manager ecosystem, the source directories
// being updated, and the declared dependency groups with their matching rules.
package config

// Job is the descriptor for a single automated update job.
//
// Fields:
//   - PackageManager: Ecosystem identifier (e.g., "npm", "bundler"); also names
//     the synthesized catch-all group for security-only jobs
//   - SecurityUpdatesOnly: Whether this run only applies security updates
//   - UpdatingAPullRequest: Whether this run refreshes an existing pull request
//   - DependencyGroupToRefresh: The group an existing pull request was opened for
//   - Source: The repository source being updated
//   - DependencyGroups: Ordered, user-declared dependency groups; the grouping
//     engine may append one synthesized group during construction
type Job struct {
	PackageManager           string        `yaml:"package-manager"`
	SecurityUpdatesOnly      bool          `yaml:"security-updates-only,omitempty"`
	UpdatingAPullRequest     bool          `yaml:"updating-a-pull-request,omitempty"`
	DependencyGroupToRefresh string        `yaml:"dependency-group-to-refresh,omitempty"`
	Source                   Source        `yaml:"source,omitempty"`
	DependencyGroups         []GroupConfig `yaml:"dependency-groups,omitempty"`

	// refreshOverrideCount tracks invocations of the refresh-override hook.
	// Runtime-only bookkeeping, never persisted to YAML.
	refreshOverrideCount int `yaml:"-"`
}

// Source describes where a job's manifests live.
//
// Jobs configured before multi-directory support carry a single Directory;
// newer jobs carry Directories. Only the directory count matters to the
// grouping engine.
//
// Fields:
//   - Directory: Legacy single source directory
//   - Directories: Source directories for multi-directory jobs
type Source struct {
	Directory   string   `yaml:"directory,omitempty"`
	Directories []string `yaml:"directories,omitempty"`
}

// GroupConfig is one declared dependency group: a name plus matching rules.
//
// Fields:
//   - Name: Unique group identifier within the job
//   - AppliesTo: Optional update-type scope (e.g., "version-updates")
//   - Rules: The inclusion and exclusion patterns for membership
type GroupConfig struct {
	Name      string     `yaml:"name"`
	AppliesTo string     `yaml:"applies-to,omitempty"`
	Rules     GroupRules `yaml:"rules"`
}

// GroupRules holds the pattern lists a group matches dependencies against.
//
// Fields:
//   - Patterns: Glob-like inclusion patterns; at least one is required
//   - ExcludePatterns: Optional exclusion patterns that override inclusions
type GroupRules struct {
	Patterns        []string `yaml:"patterns"`
	ExcludePatterns []string `yaml:"exclude-patterns,omitempty"`
}

// OverrideGroupToRefreshDueToOldDefaults redirects a pull-request refresh at a
// different group.
//
// Security-only jobs created before catch-all synthesis existed opened pull
// requests without a group name. When such a pull request is refreshed and a
// catch-all group is synthesized, the refresh must target the synthesized
// group instead, so the engine invokes this hook with the new name.
//
// Parameters:
//   - name: The group name the refresh should target
func (j *Job) OverrideGroupToRefreshDueToOldDefaults(name string) {
	j.DependencyGroupToRefresh = name
	j.refreshOverrideCount++
}

// RefreshOverrideCount reports how often the refresh-override hook ran.
//
// Returns:
//   - int: Number of OverrideGroupToRefreshDueToOldDefaults invocations
func (j *Job) RefreshOverrideCount() int {
	return j.refreshOverrideCount
}

// MultiDirectory reports whether the job targets more than one source directory.
//
// Returns:
//   - bool: true if Source.Directories has two or more entries
func (j *Job) MultiDirectory() bool {
	return len(j.Source.Directories) > 1
}
