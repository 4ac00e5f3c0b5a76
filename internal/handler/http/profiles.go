package http

import (
	"net/http"

	"github.com/MKhiriev/go-db-journal/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userOrReject(w, r, "*Handler.createProfile")
	if !ok {
		return
	}
	var in models.ProfileInput
	if !decodeOrReject(w, r, &in, "*Handler.createProfile") {
		return
	}

	profile, err := h.services.DomainService.CreateProfile(r.Context(), userID, in)
	respond(w, r, profile, err, http.StatusCreated, "*Handler.createProfile")
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userOrReject(w, r, "*Handler.updateProfile")
	if !ok {
		return
	}
	var patch models.ProfilePatch
	if !decodeOrReject(w, r, &patch, "*Handler.updateProfile") {
		return
	}

	profile, err := h.services.DomainService.UpdateProfile(r.Context(), userID, chi.URLParam(r, "uuid"), patch)
	respond(w, r, profile, err, http.StatusOK, "*Handler.updateProfile")
}

func (h *Handler) deleteProfile(w http.ResponseWriter, r *http.Request) {
	h.deleteByUUID(func(r *http.Request, userID int64, uuid string) error {
		return h.services.DomainService.DeleteProfile(r.Context(), userID, uuid)
	}, "*Handler.deleteProfile")(w, r)
}

func (h *Handler) createCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := userOrReject(w, r, "*Handler.createCard")
	if !ok {
		return
	}
	var in models.CardInput
	if !decodeOrReject(w, r, &in, "*Handler.createCard") {
		return
	}

	card, err := h.services.DomainService.CreateCard(r.Context(), userID, in)
	respond(w, r, card, err, http.StatusCreated, "*Handler.createCard")
}

func (h *Handler) updateCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := userOrReject(w, r, "*Handler.updateCard")
	if !ok {
		return
	}
	var patch models.CardPatch
	if !decodeOrReject(w, r, &patch, "*Handler.updateCard") {
		return
	}

	card, err := h.services.DomainService.UpdateCard(r.Context(), userID, chi.URLParam(r, "uuid"), patch)
	respond(w, r, card, err, http.StatusOK, "*Handler.updateCard")
}

func (h *Handler) deleteCard(w http.ResponseWriter, r *http.Request) {
	h.deleteByUUID(func(r *http.Request, userID int64, uuid string) error {
		return h.services.DomainService.DeleteCard(r.Context(), userID, uuid)
	}, "*Handler.deleteCard")(w, r)
}
