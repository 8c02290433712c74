package booking

import "errors"

var (
	// ErrIndexOutOfRange is returned when an event option index is past the
	// end of the list. This indicates broken UI wiring, not user error.
	ErrIndexOutOfRange = errors.New("event option index out of range")

	// ErrUnknownField is returned when Update names a field the form does not have
	ErrUnknownField = errors.New("unknown form field")

	// ErrDraftNotFound is returned when no draft exists for a session
	ErrDraftNotFound = errors.New("draft not found")
)
