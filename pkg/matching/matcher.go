// Package matching provides pattern matchers for dependency names.
// Group rules are lists of glob-like pattern strings; this package compiles
// them into Matcher values so membership checks never re-parse patterns.
//
// Matching is case-insensitive throughout: dependency registries generally
// treat "Lodash" and "lodash" as the same package.
package matching

import (
	"strings"

	"github.com/ajxudir/depgroups/pkg/utils"
)

// Matcher defines the interface for dependency-name matching strategies.
//
// Implementations provide different matching algorithms:
// exact, prefix, suffix, glob, or negated matching.
//
// Example:
//
//	matcher, _ := matching.ParseMatcher("@types/*")
//	if matcher.Match("@types/node") {
//	    fmt.Println("matched!")
//	}
type Matcher interface {
	// Match tests if the given value matches the pattern.
	//
	// Parameters:
	//   - value: String to test against the pattern
	//
	// Returns:
	//   - bool: true if value matches the pattern
	Match(value string) bool

	// String returns a string representation of the matcher.
	//
	// Returns:
	//   - string: Description of the pattern
	String() string
}

// ExactMatcher matches strings that exactly equal the pattern, ignoring case.
//
// Example:
//
//	matcher := &matching.ExactMatcher{Pattern: "lodash"}
//	matcher.Match("Lodash")  // returns true
//	matcher.Match("lodash2") // returns false
type ExactMatcher struct {
	// Pattern is the exact string to match.
	Pattern string
}

// Match tests if value equals the pattern, ignoring case.
//
// Parameters:
//   - value: String to test
//
// Returns:
//   - bool: true if value equals pattern
func (m *ExactMatcher) Match(value string) bool {
	return strings.EqualFold(value, m.Pattern)
}

// String returns the pattern string.
func (m *ExactMatcher) String() string {
	return m.Pattern
}

// PrefixMatcher matches strings that start with the pattern, ignoring case.
//
// An empty prefix matches every value; this is how the catch-all pattern "*"
// used by synthesized security groups is compiled.
//
// Example:
//
//	matcher := &matching.PrefixMatcher{Prefix: "@angular/"}
//	matcher.Match("@angular/core")  // returns true
//	matcher.Match("react")          // returns false
type PrefixMatcher struct {
	// Prefix is the string that values must start with.
	Prefix string
}

// Match tests if value starts with the prefix, ignoring case.
//
// Parameters:
//   - value: String to test
//
// Returns:
//   - bool: true if value starts with prefix
func (m *PrefixMatcher) Match(value string) bool {
	return strings.HasPrefix(strings.ToLower(value), strings.ToLower(m.Prefix))
}

// String returns the prefix with a trailing asterisk (e.g., "prefix*").
func (m *PrefixMatcher) String() string {
	return m.Prefix + "*"
}

// SuffixMatcher matches strings that end with the pattern, ignoring case.
//
// Example:
//
//	matcher := &matching.SuffixMatcher{Suffix: "-plugin"}
//	matcher.Match("babel-plugin")  // returns true
//	matcher.Match("plugin-babel")  // returns false
type SuffixMatcher struct {
	// Suffix is the string that values must end with.
	Suffix string
}

// Match tests if value ends with the suffix, ignoring case.
//
// Parameters:
//   - value: String to test
//
// Returns:
//   - bool: true if value ends with suffix
func (m *SuffixMatcher) Match(value string) bool {
	return strings.HasSuffix(strings.ToLower(value), strings.ToLower(m.Suffix))
}

// String returns the suffix with a leading asterisk (e.g., "*suffix").
func (m *SuffixMatcher) String() string {
	return "*" + m.Suffix
}

// GlobMatcher matches strings using glob patterns, ignoring case.
//
// Supports * (any sequence within a segment), ** (any sequence including /),
// and ? (single character).
//
// Example:
//
//	matcher := &matching.GlobMatcher{Pattern: "react-?om"}
//	matcher.Match("react-dom")  // returns true
type GlobMatcher struct {
	// Pattern is the glob pattern string.
	Pattern string
}

// Match tests if value matches the glob pattern, ignoring case.
//
// Parameters:
//   - value: String to test
//
// Returns:
//   - bool: true if value matches the glob pattern
func (m *GlobMatcher) Match(value string) bool {
	return utils.MatchGlob(strings.ToLower(value), strings.ToLower(m.Pattern))
}

// String returns the glob pattern.
func (m *GlobMatcher) String() string {
	return m.Pattern
}

// NotMatcher negates another matcher's result.
//
// Example:
//
//	matcher, _ := matching.ParseMatcher("!@types/*")
//	matcher.Match("@types/node")  // returns false
//	matcher.Match("lodash")       // returns true
type NotMatcher struct {
	// Matcher is the matcher to negate.
	Matcher Matcher
}

// Match returns the opposite of the wrapped matcher.
func (m *NotMatcher) Match(value string) bool {
	return !m.Matcher.Match(value)
}

// String returns the negated pattern prefixed with "!" (e.g., "!pattern*").
func (m *NotMatcher) String() string {
	return "!" + m.Matcher.String()
}

// AnyMatcher matches if any of the contained matchers match (OR logic).
type AnyMatcher struct {
	// Matchers is the list of matchers (OR logic).
	Matchers []Matcher
}

// Match returns true if any matcher matches.
func (m *AnyMatcher) Match(value string) bool {
	for _, matcher := range m.Matchers {
		if matcher.Match(value) {
			return true
		}
	}
	return false
}

// String returns a description in the format "any(pattern1, pattern2, ...)".
func (m *AnyMatcher) String() string {
	var patterns []string
	for _, matcher := range m.Matchers {
		patterns = append(patterns, matcher.String())
	}
	return "any(" + strings.Join(patterns, ", ") + ")"
}

// ParseMatcher creates a matcher from a pattern string.
//
// The pattern format is interpreted as follows:
//   - "exact" - exact match
//   - "prefix*" - prefix match
//   - "*suffix" - suffix match
//   - "re?ct*dom" - glob match (any other use of * or ?)
//   - "!pattern" - negated match
//
// Parameters:
//   - pattern: Pattern string to parse
//
// Returns:
//   - Matcher: Appropriate matcher for the pattern
//   - error: Error if pattern is empty or only a negation prefix
//
// Example:
//
//	matcher, _ := matching.ParseMatcher("@types/*")  // PrefixMatcher
//	matcher, _ := matching.ParseMatcher("!test*")    // NotMatcher(PrefixMatcher)
func ParseMatcher(pattern string) (Matcher, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, &EmptyPatternError{}
	}

	if strings.HasPrefix(pattern, "!") {
		inner, err := ParseMatcher(pattern[1:])
		if err != nil {
			return nil, err
		}
		return &NotMatcher{Matcher: inner}, nil
	}

	if strings.ContainsAny(pattern, "*?") {
		if strings.HasSuffix(pattern, "*") && !strings.ContainsAny(pattern[:len(pattern)-1], "*?") {
			return &PrefixMatcher{Prefix: pattern[:len(pattern)-1]}, nil
		}
		if strings.HasPrefix(pattern, "*") && !strings.ContainsAny(pattern[1:], "*?") {
			return &SuffixMatcher{Suffix: pattern[1:]}, nil
		}
		return &GlobMatcher{Pattern: pattern}, nil
	}

	return &ExactMatcher{Pattern: pattern}, nil
}

// ParseMatchers creates matchers from multiple pattern strings.
//
// Parameters:
//   - patterns: Slice of pattern strings
//
// Returns:
//   - []Matcher: Slice of matchers, one per pattern
//   - error: First parse error encountered
//
// Example:
//
//	matchers, err := matching.ParseMatchers([]string{"@types/*", "lodash"})
func ParseMatchers(patterns []string) ([]Matcher, error) {
	matchers := make([]Matcher, 0, len(patterns))
	for _, pattern := range patterns {
		m, err := ParseMatcher(pattern)
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, m)
	}
	return matchers, nil
}

// MatchesAny tests if value matches any of the compiled matchers.
//
// Parameters:
//   - value: String to test
//   - matchers: Compiled matchers to test against
//
// Returns:
//   - bool: true if value matches at least one matcher
func MatchesAny(value string, matchers []Matcher) bool {
	for _, m := range matchers {
		if m.Match(value) {
			return true
		}
	}
	return false
}

// EmptyPatternError reports a pattern string with no matchable content.
type EmptyPatternError struct{}

// Error implements the error interface.
func (e *EmptyPatternError) Error() string {
	return "pattern must not be empty"
}

// Verify interface implementations.
var (
	_ Matcher = (*ExactMatcher)(nil)
	_ Matcher = (*PrefixMatcher)(nil)
	_ Matcher = (*SuffixMatcher)(nil)
	_ Matcher = (*GlobMatcher)(nil)
	_ Matcher = (*NotMatcher)(nil)
	_ Matcher = (*AnyMatcher)(nil)
)
