package worker

import (
	"errors"

	"github.com/MKhiriev/go-db-journal/internal/journal"
	"github.com/MKhiriev/go-db-journal/internal/snapshot"
	"github.com/MKhiriev/go-db-journal/internal/store"
)

// ErrApplyFailure wraps the error of an entry that failed fatally.
var ErrApplyFailure = errors.New("journal entry apply failed")

// IsRetryable reports whether an entry that failed with err may succeed when
// resubmitted. Malformed entries, schema violations and permanent database
// errors fail the same way every time.
func IsRetryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, journal.ErrMalformedEntry),
		errors.Is(err, journal.ErrInvalidEntry),
		errors.Is(err, snapshot.ErrSchemaViolation),
		errors.Is(err, snapshot.ErrInvalidChange),
		errors.Is(err, snapshot.ErrInvalidUserID):
		return false
	case store.IsPermanent(err):
		return false
	}
	return true
}
