// internal/handler/admin_handler.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"moviestream/internal/models"
	"moviestream/internal/service"

	"github.com/go-chi/chi/v5"
)

// AdminHandler serves the token-gated mutation endpoints. The routes are
// mounted behind AdminAuth; ValidateToken is the exception and performs
// the same check itself so it can report instead of fail.
type AdminHandler struct {
	svc        *service.AdminService
	adminToken string
}

func NewAdminHandler(s *service.AdminService, adminToken string) *AdminHandler {
	return &AdminHandler{svc: s, adminToken: adminToken}
}

// @Summary Probe admin token validity
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.TokenValidation
// @Router /api/admin/validate-token [post]
func (h *AdminHandler) ValidateToken(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	res := models.TokenValidation{Valid: true, Message: "Token is valid"}
	if err := verifyAdminToken(r, h.adminToken); err != nil {
		res = models.TokenValidation{Valid: false, Message: "Invalid token"}
	}
	_ = json.NewEncoder(w).Encode(res)
}

// @Summary Create movie
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.MovieCreateRequest true "movie fields"
// @Success 201 {object} models.Movie
// @Router /api/admin/movies [post]
func (h *AdminHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.MovieCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	movie, err := h.svc.CreateMovie(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(movie)
}

// @Summary Update movie (partial)
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "movie id"
// @Param body body models.MovieUpdateRequest true "fields to update"
// @Success 200 {object} models.Movie
// @Failure 400 {string} string "No fields to update"
// @Failure 404 {string} string "Movie not found"
// @Router /api/admin/movies/{id} [put]
func (h *AdminHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.MovieUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	movie, err := h.svc.UpdateMovie(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyUpdate):
			http.Error(w, "No fields to update", http.StatusBadRequest)
		case errors.Is(err, service.ErrMovieNotFound):
			http.Error(w, "Movie not found", http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	_ = json.NewEncoder(w).Encode(movie)
}

// @Summary Delete movie
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "movie id"
// @Success 200 {object} models.Ack
// @Failure 404 {string} string "Movie not found"
// @Router /api/admin/movies/{id} [delete]
func (h *AdminHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := h.svc.DeleteMovie(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			http.Error(w, "Movie not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(models.Ack{Success: true, Message: "Movie deleted"})
}

// @Summary Create genre
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.GenreCreateRequest true "genre fields"
// @Success 201 {object} models.Genre
// @Failure 409 {string} string "Genre already exists"
// @Router /api/admin/genres [post]
func (h *AdminHandler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.GenreCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Slug == "" {
		http.Error(w, "invalid body (slug required)", http.StatusBadRequest)
		return
	}

	genre, err := h.svc.CreateGenre(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrSlugTaken) {
			http.Error(w, "Genre already exists", http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(genre)
}

// @Summary Delete genre
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "genre id"
// @Success 200 {object} models.Ack
// @Failure 404 {string} string "Genre not found"
// @Router /api/admin/genres/{id} [delete]
func (h *AdminHandler) DeleteGenre(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := h.svc.DeleteGenre(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, service.ErrGenreNotFound) {
			http.Error(w, "Genre not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(models.Ack{Success: true, Message: "Genre deleted"})
}

// @Summary Aggregate catalog stats
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.AdminStats
// @Router /api/admin/stats [get]
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(stats)
}

// @Summary Bulk import movies from CSV
// @Tags admin
// @Security BearerAuth
// @Accept mpfd
// @Produce json
// @Param file formData file true "CSV file with a header row"
// @Success 200 {object} models.ImportResult
// @Failure 400 {string} string "Only CSV files are allowed"
// @Router /api/admin/movies/bulk-import [post]
func (h *AdminHandler) BulkImport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	file, hdr, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	// Extension check only; content is not sniffed.
	if !strings.HasSuffix(hdr.Filename, ".csv") {
		http.Error(w, "Only CSV files are allowed", http.StatusBadRequest)
		return
	}

	result, err := h.svc.BulkImport(r.Context(), file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(result)
}
