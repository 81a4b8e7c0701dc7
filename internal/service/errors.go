package service

import "fmt"

// The service layer returns typed errors so handlers can map them to HTTP
// statuses without string matching. All four are recoverable: the caller is
// expected to fix its input (or re-read and retry by hand) and call again.

// ValidationError reports malformed or out-of-range input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// StateTransitionError reports a transition the workflow graph forbids,
// including any attempt to leave a terminal state.
type StateTransitionError struct {
	From string
	To   string
}

func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("cannot transition from %s to %s", e.From, e.To)
}

// ConflictError reports a lost optimistic-concurrency race: the stored status
// moved between the caller's read and its write. The operation is never
// retried automatically; the caller must re-read and decide.
type ConflictError struct {
	Expected string
	Actual   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("status changed concurrently: expected %s, found %s", e.Expected, e.Actual)
}

// NotFoundError reports a missing or inaccessible resource. Soft-deleted rows
// and rows belonging to another company are indistinguishable from absent ones.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}
