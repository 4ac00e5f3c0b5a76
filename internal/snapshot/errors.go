package snapshot

import "errors"

// Sentinel errors returned by the snapshot store and its backends.
var (
	// ErrNotFound is returned when no snapshot exists for a user. Both
	// backends translate their native "missing" condition into it.
	ErrNotFound = errors.New("snapshot not found")

	// ErrTransport is returned when the backing storage could not be
	// reached or rejected a request for reasons other than a missing key.
	ErrTransport = errors.New("snapshot storage transport failure")

	// ErrSchemaViolation is returned when a change record references a
	// column that the snapshot schema does not declare for its table.
	ErrSchemaViolation = errors.New("change does not match snapshot schema")

	// ErrInvalidChange is returned for change records with an unknown
	// table or action, or without a row uuid.
	ErrInvalidChange = errors.New("invalid change record")

	// ErrInvalidUserID is returned when a snapshot is requested for a
	// non-positive user id.
	ErrInvalidUserID = errors.New("invalid snapshot owner")
)
