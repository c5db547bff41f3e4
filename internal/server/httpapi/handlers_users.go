package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fundacionraices/backend/internal/common"
	"github.com/fundacionraices/backend/internal/server/models"
)

func (h *Handlers) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handlers) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.Users.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type roleRequest struct {
	Role string `json:"role"`
}

func (h *Handlers) grantRole(w http.ResponseWriter, r *http.Request) {
	var req roleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Role == "" {
		writeError(w, common.ErrorValidation)
		return
	}
	if err := h.Users.GrantRole(r.Context(), chi.URLParam(r, "id"), req.Role); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) revokeRole(w http.ResponseWriter, r *http.Request) {
	var req roleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Role == "" {
		writeError(w, common.ErrorValidation)
		return
	}
	if err := h.Users.RevokeRole(r.Context(), chi.URLParam(r, "id"), req.Role); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) createDonation(w http.ResponseWriter, r *http.Request) {
	var item models.Donation
	if err := decodeJSON(r, &item); err != nil {
		writeError(w, err)
		return
	}
	created, err := h.Donations.Create(r.Context(), &item)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) listDonations(w http.ResponseWriter, r *http.Request) {
	items, err := h.Donations.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// myDonations lists the donations linked to the authenticated user.
func (h *Handlers) myDonations(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())
	if identity == nil {
		writeError(w, common.ErrorMissingToken)
		return
	}
	items, err := h.Donations.ListByUser(r.Context(), identity.Subject)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type enrollVolunteerRequest struct {
	Availability string `json:"availability"`
}

// enrollVolunteer creates the volunteer profile for the caller's own
// account; the subject comes from the verified token, never from the body.
func (h *Handlers) enrollVolunteer(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())
	if identity == nil {
		writeError(w, common.ErrorMissingToken)
		return
	}

	var req enrollVolunteerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	v, err := h.Volunteers.Enroll(r.Context(), identity.Subject, req.Availability)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

func (h *Handlers) listVolunteers(w http.ResponseWriter, r *http.Request) {
	items, err := h.Volunteers.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type assignEventRequest struct {
	EventID string `json:"eventId"`
}

func (h *Handlers) assignVolunteerEvent(w http.ResponseWriter, r *http.Request) {
	var req assignEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.Volunteers.AssignEvent(r.Context(), chi.URLParam(r, "id"), req.EventID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type proposalRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h *Handlers) createProposal(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())
	if identity == nil {
		writeError(w, common.ErrorMissingToken)
		return
	}

	var req proposalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.Proposals.Create(r.Context(), &models.Proposal{
		Title:       req.Title,
		Description: req.Description,
		UserID:      identity.Subject,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) listProposals(w http.ResponseWriter, r *http.Request) {
	items, err := h.Proposals.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) deleteProposal(w http.ResponseWriter, r *http.Request) {
	if err := h.Proposals.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type uploadURLResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// uploadURL hands the caller a presigned PUT URL; the upload itself goes
// straight to the object store.
func (h *Handlers) uploadURL(w http.ResponseWriter, r *http.Request) {
	key, url, err := h.Storage.GetPresignedPutUrl(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, uploadURLResponse{Key: key, URL: url})
}

func (h *Handlers) downloadURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeError(w, common.ErrorValidation)
		return
	}
	url, err := h.Storage.GetPresignedGetUrl(r.Context(), key)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, uploadURLResponse{Key: key, URL: url})
}
