// Package utils provides shared helpers for glob matching and terminal
// display width calculations.
package utils

import (
	"path/filepath"
	"regexp"
	"strings"
)

// MatchGlob matches a value against a glob pattern.
//
// It performs the following operations:
//   - Step 1: Checks for ! prefix to determine negation
//   - Step 2: Normalizes value and pattern to use forward slashes
//   - Step 3: Uses regex matching for ** patterns, filepath.Match for simple patterns
//   - Step 4: Negates result if ! prefix was present
//
// Supported patterns:
//   - * matches any sequence of characters within a segment
//   - ** matches zero or more segments recursively
//   - ? matches a single character
//   - ! prefix negates the match
//
// Parameters:
//   - value: The string to match against (package name or path)
//   - pattern: The glob pattern (supports **, *, ?, and ! prefix)
//
// Returns:
//   - bool: true if value matches pattern (or doesn't match if negated), false otherwise
func MatchGlob(value, pattern string) bool {
	negate := false
	if strings.HasPrefix(pattern, "!") {
		negate = true
		pattern = pattern[1:]
	}

	value = filepath.ToSlash(value)
	pattern = filepath.ToSlash(pattern)

	var matched bool

	if strings.Contains(pattern, "**") {
		regexPattern := globToRegex(pattern)
		matched, _ = regexp.MatchString(regexPattern, value)
	} else {
		var err error
		matched, err = filepath.Match(pattern, value)
		if err != nil {
			regexPattern := globToRegex(pattern)
			matched, _ = regexp.MatchString(regexPattern, value)
		}
	}

	if negate {
		return !matched
	}
	return matched
}

// globToRegex converts a glob pattern to a regular expression pattern.
//
// It performs the following conversions:
//   - **/ becomes (?:.*/)?  (optional segments)
//   - ** becomes .*         (any characters including /)
//   - * becomes [^/]*       (any characters except /)
//   - ? becomes .           (single character)
//   - Other characters are escaped with regexp.QuoteMeta
//
// Parameters:
//   - pattern: The glob pattern to convert
//
// Returns:
//   - string: The equivalent regular expression pattern
func globToRegex(pattern string) string {
	pattern = filepath.ToSlash(pattern)
	var builder strings.Builder
	builder.WriteString("^")

	for i := 0; i < len(pattern); {
		if strings.HasPrefix(pattern[i:], "**/") {
			builder.WriteString("(?:.*/)?")
			i += 3
			continue
		}
		if strings.HasPrefix(pattern[i:], "**") {
			builder.WriteString(".*")
			i += 2
			continue
		}
		switch pattern[i] {
		case '*':
			builder.WriteString("[^/]*")
		case '?':
			builder.WriteString(".")
		default:
			builder.WriteString(regexp.QuoteMeta(string(pattern[i])))
		}
		i++
	}

	builder.WriteString("$")
	return builder.String()
}
