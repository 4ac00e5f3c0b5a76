package http

import (
	"net/http"

	"github.com/MKhiriev/go-db-journal/internal/logger"
	"github.com/MKhiriev/go-db-journal/internal/utils"
	"github.com/go-chi/chi/v5"
)

// userOrReject returns the caller's user id, answering 400 when the auth
// middleware did not provide one.
func userOrReject(w http.ResponseWriter, r *http.Request, funcName string) (int64, bool) {
	userID, found := utils.GetUserIDFromContext(r.Context())
	if !found {
		logger.FromRequest(r).Error().Str("func", funcName).Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
	}
	return userID, found
}

// decodeOrReject decodes the JSON body into dst, answering 400 on failure.
func decodeOrReject(w http.ResponseWriter, r *http.Request, dst any, funcName string) bool {
	if err := utils.DecodeJSON(r, dst); err != nil {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return false
	}
	return true
}

// respond writes result as JSON with status, or maps err to a status code.
func respond(w http.ResponseWriter, r *http.Request, result any, err error, status int, funcName string) {
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg("write rejected")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}
	if result == nil {
		w.WriteHeader(status)
		return
	}
	utils.WriteJSON(w, result, status)
}

func (h *Handler) deleteByUUID(fn func(r *http.Request, userID int64, uuid string) error, funcName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userOrReject(w, r, funcName)
		if !ok {
			return
		}
		err := fn(r, userID, chi.URLParam(r, "uuid"))
		respond(w, r, nil, err, http.StatusNoContent, funcName)
	}
}
