package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-db-journal/internal/coordination"
	"github.com/MKhiriev/go-db-journal/internal/service"
	"github.com/MKhiriev/go-db-journal/internal/snapshot"
	"github.com/MKhiriev/go-db-journal/internal/store"
	"github.com/MKhiriev/go-db-journal/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrProfileUnavailable:  http.StatusConflict,
	service.ErrCardUnavailable:     http.StatusConflict,
	service.ErrJournalNotPublished: http.StatusInternalServerError,

	validators.ErrUnsupportedType: http.StatusBadRequest,

	snapshot.ErrInvalidUserID:   http.StatusBadRequest,
	snapshot.ErrNotFound:        http.StatusNotFound,
	coordination.ErrLockTimeout: http.StatusServiceUnavailable,

	store.ErrRowNotFound:   http.StatusNotFound,
	store.ErrForbidden:     http.StatusForbidden,
	store.ErrAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
