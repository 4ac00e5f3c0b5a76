package http

import (
	"net/http"

	"github.com/MKhiriev/go-db-journal/models"
)

// putRelation creates the relation between two profiles or changes its status.
func (h *Handler) putRelation(w http.ResponseWriter, r *http.Request) {
	userID, ok := userOrReject(w, r, "*Handler.putRelation")
	if !ok {
		return
	}
	var in models.RelationInput
	if !decodeOrReject(w, r, &in, "*Handler.putRelation") {
		return
	}

	relation, err := h.services.DomainService.PutRelation(r.Context(), userID, in)
	respond(w, r, relation, err, http.StatusOK, "*Handler.putRelation")
}

func (h *Handler) deleteRelation(w http.ResponseWriter, r *http.Request) {
	h.deleteByUUID(func(r *http.Request, userID int64, uuid string) error {
		return h.services.DomainService.DeleteRelation(r.Context(), userID, uuid)
	}, "*Handler.deleteRelation")(w, r)
}

func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	userID, ok := userOrReject(w, r, "*Handler.subscribe")
	if !ok {
		return
	}
	var in models.SubscriptionInput
	if !decodeOrReject(w, r, &in, "*Handler.subscribe") {
		return
	}

	sub, err := h.services.DomainService.Subscribe(r.Context(), userID, in)
	respond(w, r, sub, err, http.StatusCreated, "*Handler.subscribe")
}

func (h *Handler) unsubscribe(w http.ResponseWriter, r *http.Request) {
	h.deleteByUUID(func(r *http.Request, userID int64, uuid string) error {
		return h.services.DomainService.Unsubscribe(r.Context(), userID, uuid)
	}, "*Handler.unsubscribe")(w, r)
}
