package scheduling

import "fmt"

// ValidationError reports malformed caller input (degenerate window,
// window in the past, missing fields). Always recoverable by the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s", e.Message)
}

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an unknown room or reservation id.
type NotFoundError struct {
	Kind string // "room" or "reservation"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// ConflictError reports a scheduling overlap. It carries the room and
// window so the caller can pick a different slot; retryable by nature.
type ConflictError struct {
	RoomNumber string
	Window     string // clock label of the requested window
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("room %s is already reserved during %s", e.RoomNumber, e.Window)
}

// AlreadyCancelledError reports a second cancellation of the same
// reservation. Distinct from ConflictError: re-cancellation is invalid,
// not retryable.
type AlreadyCancelledError struct {
	ID string
}

func (e *AlreadyCancelledError) Error() string {
	return fmt.Sprintf("reservation %s is already cancelled", e.ID)
}
