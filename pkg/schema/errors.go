package schema

import "fmt"

// ValidationError represents a request field rejected at the boundary.
type ValidationError struct {
	Key    string // Field name
	Reason string // Human-readable reason, returned to clients verbatim
	Value  any    // The value that failed validation
	Err    error  // Underlying domain sentinel, if any
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("field %q: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("field %q: %s (got %T)", e.Key, e.Reason, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
