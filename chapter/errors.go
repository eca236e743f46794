package chapter

import "fmt"

// NotFoundError reports a label lookup that matched no entry. It is a local,
// recoverable condition for the caller, not a parse failure.
type NotFoundError struct {
	Label string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no entry with label %q", e.Label)
}

// DuplicateLabelError reports two entries sharing the same non-empty label.
type DuplicateLabelError struct {
	Label string
}

func (e *DuplicateLabelError) Error() string {
	return fmt.Sprintf("duplicate label %q", e.Label)
}
