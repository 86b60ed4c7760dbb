package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/scamaware/jersey/content"
)

type contentHandler struct {
	store *content.Store
}

func (h contentHandler) listCategories(w http.ResponseWriter, _ *http.Request) {
	respondData(w, http.StatusOK, h.store.Categories())
}

func (h contentHandler) getCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	cat, err := h.store.Category(slug)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "Unknown scam type")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "Something went wrong")
		return
	}

	respondData(w, http.StatusOK, cat)
}

func (h contentHandler) listWarningSigns(w http.ResponseWriter, _ *http.Request) {
	respondData(w, http.StatusOK, h.store.WarningSigns())
}

func (h contentHandler) listHelpResources(w http.ResponseWriter, _ *http.Request) {
	respondData(w, http.StatusOK, h.store.HelpResources())
}
