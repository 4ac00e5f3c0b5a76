package http

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-db-journal/internal/logger"
	"github.com/MKhiriev/go-db-journal/internal/utils"
	"github.com/MKhiriev/go-db-journal/models"
)

// syncHash answers HEAD /api/sync with the snapshot hash in the ETag header.
func (h *Handler) syncHash(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.syncHash").Msg("no user ID was given")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	hash, err := h.services.SyncService.Hash(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncHash").Int64("user_id", userID).Msg("error getting snapshot hash")
		w.WriteHeader(statusFromError(err))
		return
	}

	w.Header().Set("ETag", quoteETag(hash))
	w.WriteHeader(http.StatusOK)
}

// syncFetch answers GET /api/sync. A client hash given in If-None-Match,
// If-Match or the hash query parameter that equals the current hash yields
// 304 Not Modified.
func (h *Handler) syncFetch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.syncFetch").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	snap, err := h.services.SyncService.Fetch(ctx, userID, clientHash(r))
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncFetch").Int64("user_id", userID).Msg("error fetching snapshot")
		http.Error(w, "error fetching snapshot", statusFromError(err))
		return
	}

	w.Header().Set("ETag", quoteETag(snap.Hash))
	if snap.NotModified {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	utils.WriteJSON(w, syncResponse(snap), http.StatusOK)
}

// syncReset answers DELETE /api/sync by rebuilding the snapshot from the
// primary database and returning it.
func (h *Handler) syncReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.syncReset").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	snap, err := h.services.SyncService.Reset(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncReset").Int64("user_id", userID).Msg("error resetting snapshot")
		http.Error(w, "error resetting snapshot", http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", quoteETag(snap.Hash))
	utils.WriteJSON(w, syncResponse(snap), http.StatusOK)
}

func syncResponse(snap models.SyncSnapshot) models.SyncResponse {
	return models.SyncResponse{
		Hash: snap.Hash,
		DB:   base64.URLEncoding.EncodeToString(snap.DB),
	}
}

func clientHash(r *http.Request) string {
	for _, header := range []string{"If-None-Match", "If-Match"} {
		if v := r.Header.Get(header); v != "" {
			return unquoteETag(v)
		}
	}
	return r.URL.Query().Get("hash")
}

func quoteETag(hash string) string {
	return `"` + hash + `"`
}

func unquoteETag(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "W/")
	return strings.Trim(v, `"`)
}
