package http

import (
	"net/http"

	"github.com/MKhiriev/go-db-journal/internal/utils"
	"github.com/MKhiriev/go-db-journal/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) registerDevice(w http.ResponseWriter, r *http.Request) {
	userID, ok := userOrReject(w, r, "*Handler.registerDevice")
	if !ok {
		return
	}
	var in models.DeviceInput
	if !decodeOrReject(w, r, &in, "*Handler.registerDevice") {
		return
	}

	err := h.services.DeviceService.RegisterDevice(r.Context(), userID, in)
	respond(w, r, nil, err, http.StatusNoContent, "*Handler.registerDevice")
}

func (h *Handler) revokeDevice(w http.ResponseWriter, r *http.Request) {
	userID, ok := userOrReject(w, r, "*Handler.revokeDevice")
	if !ok {
		return
	}

	err := h.services.DeviceService.RevokeDevice(r.Context(), userID, chi.URLParam(r, "token"))
	respond(w, r, nil, err, http.StatusNoContent, "*Handler.revokeDevice")
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status, healthy := h.services.HealthService.Check(r.Context())
	code := http.StatusOK
	if !healthy {
		code = http.StatusServiceUnavailable
	}
	utils.WriteJSON(w, status, code)
}
