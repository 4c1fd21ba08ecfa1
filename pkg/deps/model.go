// Package deps defines the resolved-dependency model consumed by the
// grouping engine. It parses resolver output from JSON or YAML dependency
// lists and provides deterministic ordering helpers.
package deps

import (
	"sort"
	"strings"

	"golang.org/x/mod/semver"
)

// Dependency represents a single resolved dependency handed over by the
// resolver for grouping.
//
// The grouping engine only reads the Name field; everything else travels
// through untouched for downstream update planning.
//
// Fields:
//   - Name: The package name as known to the registry (e.g., "@angular/core")
//   - Version: The resolved target version (e.g., "1.2.3")
//   - PreviousVersion: The currently installed version, if known
//   - Directory: The source directory this dependency was resolved in
//   - Type: The dependency type ("prod" for production, "dev" for development)
//   - PackageManager: The package manager ecosystem (e.g., "npm", "bundler")
type Dependency struct {
	Name            string `json:"name" yaml:"name"`
	Version         string `json:"version" yaml:"version"`
	PreviousVersion string `json:"previous_version,omitempty" yaml:"previous-version,omitempty"`
	Directory       string `json:"directory,omitempty" yaml:"directory,omitempty"`
	Type            string `json:"type,omitempty" yaml:"type,omitempty"`
	PackageManager  string `json:"package_manager,omitempty" yaml:"package-manager,omitempty"`
}

// GetName returns the dependency name used by group membership matching.
//
// Returns:
//   - string: The dependency name from the Name field
func (d Dependency) GetName() string {
	return d.Name
}

// List is an insertion-ordered collection of resolved dependencies.
type List struct {
	Dependencies []Dependency `json:"dependencies" yaml:"dependencies"`
}

// Names returns the dependency names in input order.
//
// Returns:
//   - []string: One name per dependency, preserving order
func Names(dependencies []Dependency) []string {
	names := make([]string, 0, len(dependencies))
	for _, d := range dependencies {
		names = append(names, d.Name)
	}
	return names
}

// SortForDisplay returns dependencies sorted for display output.
//
// Sort order:
// 1. Name (case-insensitive alphabetical)
// 2. Version (canonical semver, oldest first; non-semver compared as strings)
//
// The input slice is not modified.
//
// Parameters:
//   - dependencies: Dependencies to sort
//
// Returns:
//   - []Dependency: Sorted copy of the dependencies
func SortForDisplay(dependencies []Dependency) []Dependency {
	sorted := append([]Dependency(nil), dependencies...)

	sort.SliceStable(sorted, func(i, j int) bool {
		a := strings.ToLower(sorted[i].Name)
		b := strings.ToLower(sorted[j].Name)
		if a != b {
			return a < b
		}
		return CompareVersions(sorted[i].Version, sorted[j].Version) < 0
	})

	return sorted
}

// CompareVersions compares two version strings.
//
// Versions that canonicalize as semver are compared semantically; anything
// else falls back to plain string comparison so ordering stays total.
//
// Parameters:
//   - a: First version string
//   - b: Second version string
//
// Returns:
//   - int: -1 if a < b, 0 if equal, 1 if a > b
func CompareVersions(a, b string) int {
	canonA := canonicalVersion(a)
	canonB := canonicalVersion(b)

	if canonA != "" && canonB != "" {
		return semver.Compare(canonA, canonB)
	}

	if a == b {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}

// canonicalVersion normalizes a version string into canonical semver form.
//
// Accepts versions with or without a leading "v". Returns an empty string
// when the input is not valid semver.
func canonicalVersion(version string) string {
	v := strings.TrimSpace(version)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return ""
	}
	return semver.Canonical(v)
}
