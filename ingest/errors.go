package ingest

import "fmt"

// MissingFieldError marks a row that lacks a field the pipeline cannot
// proceed without. It is row-scoped: the reconciler records it and moves on.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// ValidationError marks a derived value that fails a domain constraint,
// e.g. a registration number with no digits in it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
