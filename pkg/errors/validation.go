package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationCategory identifies the source of a validation error.
type ValidationCategory string

const (
	// ValidationCategoryJob indicates a job configuration validation error.
	ValidationCategoryJob ValidationCategory = "job"

	// ValidationCategoryGroup indicates a dependency-group rule validation error.
	ValidationCategoryGroup ValidationCategory = "group"

	// ValidationCategoryDependency indicates an invalid resolved-dependency entry.
	ValidationCategoryDependency ValidationCategory = "dependency"
)

// ValidationError represents a job or group configuration validation failure.
//
// Fields:
//   - Category: Source of validation ("job", "group", "dependency")
//   - Field: Name of the invalid field or setting
//   - Message: Description of what's wrong
//   - Expected: What the valid value should look like
//   - Hint: Actionable hint for fixing the error
//
// Example:
//
//	return &ValidationError{
//	    Category: ValidationCategoryGroup,
//	    Field:    "dependency-groups[0].rules.patterns",
//	    Message:  "group declares no inclusion patterns",
//	    Expected: "at least one pattern, e.g. [\"@angular/*\"]",
//	}
type ValidationError struct {
	// Category identifies the validation source.
	// Values: "job", "group", "dependency"
	Category ValidationCategory

	// Field is the name of the field that failed validation.
	Field string

	// Message describes what is wrong with the field.
	Message string

	// Expected describes what a valid value should look like.
	Expected string

	// Hint provides an actionable suggestion for fixing the error.
	Hint string
}

// Error implements the error interface.
//
// Returns:
//   - string: Formatted error message including the field when set
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// VerboseError returns an extended error message with expected values and hints.
//
// Returns:
//   - string: Multi-line message including Expected and Hint when present
func (e *ValidationError) VerboseError() string {
	var sb strings.Builder
	sb.WriteString(e.Error())
	if e.Expected != "" {
		sb.WriteString(fmt.Sprintf("\n  Expected: %s", e.Expected))
	}
	if e.Hint != "" {
		sb.WriteString(fmt.Sprintf("\n  Hint: %s", e.Hint))
	}
	return sb.String()
}

// IsValidationError checks if err is a ValidationError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *ValidationError: The validation error, or nil if err is not one
//   - bool: true if err is a ValidationError
func IsValidationError(err error) (*ValidationError, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}
	return nil, false
}
