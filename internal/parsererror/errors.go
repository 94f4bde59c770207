package parsererror

import "fmt"

// FormatError represents a single malformed value, such as an amount
// cell without the currency marker. Row-scoped: the offending row is
// skipped, the batch continues.
type FormatError struct {
	Field  string
	Value  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Value, e.Reason)
}

// ValidationError represents a record that failed a construction
// invariant, typically a blank required field. Row-scoped.
type ValidationError struct {
	Record string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Record, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// InputError represents a missing or empty required input, such as an
// invocation with no invoice data at all. Unlike the row-scoped errors
// above it fails the whole operation.
type InputError struct {
	Name   string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Name, e.Reason)
}
