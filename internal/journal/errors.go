package journal

import "errors"

var (
	// ErrInvalidEntry is returned when a journal entry breaks its invariants:
	// no owner, no changes, or a change record that cannot be applied.
	ErrInvalidEntry = errors.New("invalid journal entry")

	// ErrMalformedEntry is returned when a queued payload cannot be decoded.
	ErrMalformedEntry = errors.New("malformed journal entry")

	// ErrUnroutable is returned when no owner could be resolved for a change.
	ErrUnroutable = errors.New("change has no owner")
)
