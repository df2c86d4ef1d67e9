// internal/handler/movie_handler.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"moviestream/internal/models"
	"moviestream/internal/service"

	"github.com/go-chi/chi/v5"
)

// MovieHandler serves the public catalog endpoints.
type MovieHandler struct {
	svc *service.CatalogService
}

func NewMovieHandler(s *service.CatalogService) *MovieHandler { return &MovieHandler{svc: s} }

// @Summary List movies (paginated)
// @Tags movies
// @Produce json
// @Param skip query int false "offset (default: 0)"
// @Param limit query int false "page size 1..100 (default: 20)"
// @Param genre query string false "filter by genre name"
// @Success 200 {array} models.Movie
// @Router /api/movies [get]
func (h *MovieHandler) ListMovies(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	skip := clampSkip(queryInt(r, "skip", "0"))
	limit := clampLimit(queryInt(r, "limit", "20"))
	genre := r.URL.Query().Get("genre")

	movies, err := h.svc.ListMovies(r.Context(), skip, limit, genre)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(movies)
}

// @Summary Get movie by id
// @Tags movies
// @Produce json
// @Param id path string true "movie id"
// @Success 200 {object} models.Movie
// @Failure 404 {string} string "Movie not found"
// @Router /api/movies/{id} [get]
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	m, err := h.svc.GetMovie(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			http.Error(w, "Movie not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(m)
}

// @Summary Search movies by title or synopsis
// @Tags movies
// @Produce json
// @Param q query string true "search text"
// @Param genre query string false "filter by genre name"
// @Param year query int false "filter by release year"
// @Param limit query int false "cap 1..100 (default: 20)"
// @Success 200 {array} models.Movie
// @Failure 400 {string} string "q is required"
// @Router /api/movies/search/query [get]
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	q := r.URL.Query().Get("q")
	if q == "" {
		http.Error(w, "q is required", http.StatusBadRequest)
		return
	}
	genre := r.URL.Query().Get("genre")
	year := queryInt(r, "year", "0")
	limit := clampLimit(queryInt(r, "limit", "20"))

	movies, err := h.svc.SearchMovies(r.Context(), q, genre, year, limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(movies)
}

// @Summary Increment view counter
// @Tags movies
// @Produce json
// @Param id path string true "movie id"
// @Success 200 {object} models.Ack
// @Failure 404 {string} string "Movie not found"
// @Router /api/movies/{id}/increment-view [post]
func (h *MovieHandler) IncrementView(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	err := h.svc.IncrementView(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			http.Error(w, "Movie not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(models.Ack{Success: true, Message: "View count incremented"})
}
