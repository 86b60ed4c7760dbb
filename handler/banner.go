package handler

import (
	"net/http"

	"github.com/scamaware/jersey/banner"
)

type bannerHandler struct {
	service *banner.Service
}

// visitorToken reads the visitor cookie, minting and setting one when
// absent so dismissals can be recorded for the rest of the visit.
func (h bannerHandler) visitorToken(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(banner.CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	token := h.service.NewToken()
	http.SetCookie(w, &http.Cookie{
		Name:     banner.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return token
}

func (h bannerHandler) status(w http.ResponseWriter, r *http.Request) {
	var token string
	if cookie, err := r.Cookie(banner.CookieName); err == nil {
		token = cookie.Value
	}

	dismissed, err := h.service.Dismissed(r.Context(), token)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "Something went wrong")
		return
	}
	respondData(w, http.StatusOK, map[string]bool{"dismissed": dismissed})
}

func (h bannerHandler) dismiss(w http.ResponseWriter, r *http.Request) {
	token := h.visitorToken(w, r)

	if err := h.service.Dismiss(r.Context(), token); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "Something went wrong")
		return
	}
	respondData(w, http.StatusOK, map[string]bool{"dismissed": true})
}

func (h bannerHandler) restore(w http.ResponseWriter, r *http.Request) {
	token := h.visitorToken(w, r)

	if err := h.service.Restore(r.Context(), token); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "Something went wrong")
		return
	}
	respondData(w, http.StatusOK, map[string]bool{"dismissed": false})
}
