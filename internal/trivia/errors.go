package trivia

import "fmt"

// MalformedOutputError indicates the raw model output did not contain a
// parseable question array. It is never downgraded to an empty set.
type MalformedOutputError struct {
	Raw string
	Err error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed generator output: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error { return e.Err }

// InvalidFormatError indicates a parsed question violates the question
// invariant: wrong choice count, duplicate or empty choices, or a missing
// or unmatched answer. One bad element rejects the entire set.
type InvalidFormatError struct {
	// Index is the offending question's position, or -1 for a set-level
	// violation.
	Index  int
	Reason string
}

func (e *InvalidFormatError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid question set: %s", e.Reason)
	}
	return fmt.Sprintf("invalid question %d: %s", e.Index, e.Reason)
}
