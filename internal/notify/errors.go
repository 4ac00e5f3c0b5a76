package notify

import "errors"

var (
	// ErrPushRejected is returned when the gateway answers with a non-2xx status.
	ErrPushRejected = errors.New("push gateway rejected notification")

	// ErrPushUnavailable is returned when the gateway could not be reached.
	ErrPushUnavailable = errors.New("push gateway unavailable")

	ErrInvalidPushURL = errors.New("invalid push gateway url")
)
