package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fundacionraices/backend/internal/server/models"
)

func pageParams(r *http.Request) (limit, page int) {
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	return limit, page
}

func (h *Handlers) listNews(w http.ResponseWriter, r *http.Request) {
	items, err := h.News.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) getNews(w http.ResponseWriter, r *http.Request) {
	item, err := h.News.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handlers) createNews(w http.ResponseWriter, r *http.Request) {
	var item models.News
	if err := decodeJSON(r, &item); err != nil {
		writeError(w, err)
		return
	}
	created, err := h.News.Create(r.Context(), &item)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) deleteNews(w http.ResponseWriter, r *http.Request) {
	if err := h.News.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) listSponsors(w http.ResponseWriter, r *http.Request) {
	limit, page := pageParams(r)
	result, err := h.Sponsors.List(r.Context(), limit, page)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) getSponsor(w http.ResponseWriter, r *http.Request) {
	item, err := h.Sponsors.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handlers) createSponsor(w http.ResponseWriter, r *http.Request) {
	var item models.Sponsor
	if err := decodeJSON(r, &item); err != nil {
		writeError(w, err)
		return
	}
	created, err := h.Sponsors.Create(r.Context(), &item)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) deleteSponsor(w http.ResponseWriter, r *http.Request) {
	if err := h.Sponsors.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) listPartners(w http.ResponseWriter, r *http.Request) {
	limit, page := pageParams(r)
	result, err := h.Partners.List(r.Context(), limit, page)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) getPartner(w http.ResponseWriter, r *http.Request) {
	item, err := h.Partners.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handlers) createPartner(w http.ResponseWriter, r *http.Request) {
	var item models.Partner
	if err := decodeJSON(r, &item); err != nil {
		writeError(w, err)
		return
	}
	created, err := h.Partners.Create(r.Context(), &item)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) deletePartner(w http.ResponseWriter, r *http.Request) {
	if err := h.Partners.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) listEvents(w http.ResponseWriter, r *http.Request) {
	items, err := h.Events.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) getEvent(w http.ResponseWriter, r *http.Request) {
	item, err := h.Events.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handlers) createEvent(w http.ResponseWriter, r *http.Request) {
	var item models.Event
	if err := decodeJSON(r, &item); err != nil {
		writeError(w, err)
		return
	}
	created, err := h.Events.Create(r.Context(), &item)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) deleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.Events.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) listWorkshops(w http.ResponseWriter, r *http.Request) {
	items, err := h.Workshops.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) getWorkshop(w http.ResponseWriter, r *http.Request) {
	item, err := h.Workshops.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handlers) createWorkshop(w http.ResponseWriter, r *http.Request) {
	var item models.Workshop
	if err := decodeJSON(r, &item); err != nil {
		writeError(w, err)
		return
	}
	created, err := h.Workshops.Create(r.Context(), &item)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) deleteWorkshop(w http.ResponseWriter, r *http.Request) {
	if err := h.Workshops.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) listBenefits(w http.ResponseWriter, r *http.Request) {
	items, err := h.Benefits.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) getBenefit(w http.ResponseWriter, r *http.Request) {
	item, err := h.Benefits.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handlers) createBenefit(w http.ResponseWriter, r *http.Request) {
	var item models.Benefit
	if err := decodeJSON(r, &item); err != nil {
		writeError(w, err)
		return
	}
	created, err := h.Benefits.Create(r.Context(), &item)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) deleteBenefit(w http.ResponseWriter, r *http.Request) {
	if err := h.Benefits.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) listKitchens(w http.ResponseWriter, r *http.Request) {
	items, err := h.Kitchens.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) getKitchen(w http.ResponseWriter, r *http.Request) {
	item, err := h.Kitchens.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handlers) createKitchen(w http.ResponseWriter, r *http.Request) {
	var item models.CommunityKitchen
	if err := decodeJSON(r, &item); err != nil {
		writeError(w, err)
		return
	}
	created, err := h.Kitchens.Create(r.Context(), &item)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) deleteKitchen(w http.ResponseWriter, r *http.Request) {
	if err := h.Kitchens.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
