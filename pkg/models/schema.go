package models

// Schema is the narrow validation capability a workflow may declare for its
// payload. Any conforming validator can be supplied; the framework depends
// only on this interface.
type Schema interface {
	// Validate inspects an untyped payload and returns either a valid result
	// carrying the normalized value, or an invalid one carrying details.
	Validate(input any) *ValidationResult
}

// ValidationIssue describes a single payload defect in a form suitable for
// returning to the caller.
type ValidationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult is the outcome of a Schema check.
type ValidationResult struct {
	Valid bool
	// Value is the normalized payload; set only when Valid. Validators that
	// do not transform their input return it unchanged.
	Value any
	// Details enumerates what failed; set only when not Valid.
	Details []ValidationIssue
}

// ValidResult builds a passing result carrying the normalized value.
func ValidResult(value any) *ValidationResult {
	return &ValidationResult{Valid: true, Value: value}
}

// InvalidResult builds a failing result from one or more issues.
func InvalidResult(issues ...ValidationIssue) *ValidationResult {
	return &ValidationResult{Valid: false, Details: issues}
}
