package handlers

import (
	"encoding/json"
	"net/http"

	"archviz/internal/domain"
)

type colorExtractRequest struct {
	Image string `json:"image"`
}

// ColorExtract pulls the dominant color out of an uploaded chip/swatch photo.
func (a *App) ColorExtract(w http.ResponseWriter, r *http.Request) {
	if a.Colors == nil {
		a.error(w, http.StatusServiceUnavailable, "colors_disabled", "color extraction is not configured")
		return
	}
	var req colorExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	chip, err := domain.ParseImage(req.Image)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid chip image")
		return
	}

	color, err := a.Colors.Extract(r.Context(), chip)
	if err != nil {
		a.renderError(w, err)
		return
	}
	a.json(w, http.StatusOK, color)
}
