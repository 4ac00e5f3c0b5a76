package coordination

import "errors"

// ErrLockTimeout is returned when the caller's context ends before the lock
// could be obtained.
var ErrLockTimeout = errors.New("timed out waiting for snapshot lock")
