// internal/handler/genre_handler.go
package handler

import (
	"encoding/json"
	"net/http"

	"moviestream/internal/service"
)

type GenreHandler struct {
	svc *service.CatalogService
}

func NewGenreHandler(s *service.CatalogService) *GenreHandler { return &GenreHandler{svc: s} }

// @Summary List genres
// @Tags genres
// @Produce json
// @Success 200 {array} models.Genre
// @Router /api/genres [get]
func (h *GenreHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	genres, err := h.svc.ListGenres(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(genres)
}
