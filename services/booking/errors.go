package booking

import "fmt"

// ValidationError reports malformed input.
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

// NotFoundError reports a missing referenced entity.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// SchedulingConflictError reports a temporal overlap with an existing
// active booking for the same photographer.
type SchedulingConflictError struct {
	BookingID string
	Message   string
}

func (e *SchedulingConflictError) Error() string {
	return e.Message
}

// InvalidTransitionError reports a status change not permitted from the
// current state.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition booking from %s to %s", e.From, e.To)
}

// WindowClosedError reports a cancellation or modification requested too
// close to the event.
type WindowClosedError struct {
	Message string
}

func (e *WindowClosedError) Error() string {
	return e.Message
}

// UnauthorizedError reports an actor lacking role or ownership for the
// requested mutation.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return e.Message
}
