package domain

import "fmt"

// DomainError reports a violated mathematical precondition that would
// otherwise surface as NaN or Infinity in a computed result.
type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// InputShapeError reports a missing or malformed field at the request
// boundary. The engines never coerce bad input into a value.
type InputShapeError struct {
	Field  string
	Reason string
}

func (e *InputShapeError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Field, e.Reason)
}
