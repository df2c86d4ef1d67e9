// internal/service/admin_service.go
package service

import (
	"context"
	"io"
	"time"

	"moviestream/internal/cache"
	"moviestream/internal/models"
	"moviestream/internal/repository"

	"github.com/google/uuid"
)

const statsCacheKey = "admin:stats"

// topMoviesLimit is how many movies the stats endpoint reports.
const topMoviesLimit = 10

// AdminService holds every token-gated mutation plus aggregate stats.
type AdminService struct {
	movies *repository.MovieRepository
	genres *repository.GenreRepository
}

func NewAdminService(m *repository.MovieRepository, g *repository.GenreRepository) *AdminService {
	return &AdminService{movies: m, genres: g}
}

// newMovie fills in the system-assigned fields: a fresh uuid, a zero view
// count and the creation timestamp. Language defaults to English and
// subtitles to an empty list, mirroring the create contract.
func newMovie(req *models.MovieCreateRequest) *models.Movie {
	language := req.Language
	if language == "" {
		language = "English"
	}
	subtitles := req.Subtitles
	if subtitles == nil {
		subtitles = []string{}
	}

	return &models.Movie{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Synopsis:    req.Synopsis,
		Genres:      req.Genres,
		Cast:        req.Cast,
		ReleaseYear: req.ReleaseYear,
		Runtime:     req.Runtime,
		PosterURL:   req.PosterURL,
		VideoURL:    req.VideoURL,
		Language:    language,
		Subtitles:   subtitles,
		ViewCount:   0,
		CreatedAt:   time.Now().UTC(),
	}
}

func (s *AdminService) CreateMovie(ctx context.Context, req *models.MovieCreateRequest) (*models.Movie, error) {
	m := newMovie(req)
	if err := s.movies.Insert(ctx, m); err != nil {
		return nil, err
	}
	_ = cache.Delete(ctx, statsCacheKey)
	return m, nil
}

// UpdateMovie applies a sparse patch and returns the updated document.
func (s *AdminService) UpdateMovie(ctx context.Context, id string, req *models.MovieUpdateRequest) (*models.Movie, error) {
	fields := req.Fields()
	if len(fields) == 0 {
		return nil, ErrEmptyUpdate
	}

	matched, err := s.movies.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, ErrMovieNotFound
	}

	_ = cache.Delete(ctx, statsCacheKey)
	return s.movies.GetByID(ctx, id)
}

func (s *AdminService) DeleteMovie(ctx context.Context, id string) error {
	deleted, err := s.movies.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMovieNotFound
	}
	_ = cache.Delete(ctx, statsCacheKey)
	return nil
}

func (s *AdminService) CreateGenre(ctx context.Context, req *models.GenreCreateRequest) (*models.Genre, error) {
	exists, err := s.genres.ExistsBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSlugTaken
	}

	g := &models.Genre{
		ID:   uuid.NewString(),
		Name: req.Name,
		Slug: req.Slug,
	}
	if err := s.genres.Insert(ctx, g); err != nil {
		// Two creators can race past the pre-check; the slug index
		// rejects the loser and we report the same conflict.
		if repository.IsDuplicate(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}

	_ = cache.Delete(ctx, genresCacheKey, statsCacheKey)
	return g, nil
}

func (s *AdminService) DeleteGenre(ctx context.Context, id string) error {
	deleted, err := s.genres.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrGenreNotFound
	}
	// Movies keep whatever genre names they reference; no cascade.
	_ = cache.Delete(ctx, genresCacheKey, statsCacheKey)
	return nil
}

// Stats aggregates catalog totals. View bumps do not invalidate the
// cached value; the TTL bounds its staleness.
func (s *AdminService) Stats(ctx context.Context) (*models.AdminStats, error) {
	var cached models.AdminStats
	if ok, err := cache.GetJSON(ctx, statsCacheKey, &cached); err == nil && ok {
		return &cached, nil
	}

	totalMovies, err := s.movies.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalGenres, err := s.genres.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalViews, err := s.movies.TotalViews(ctx)
	if err != nil {
		return nil, err
	}
	top, err := s.movies.TopByViews(ctx, topMoviesLimit)
	if err != nil {
		return nil, err
	}

	stats := &models.AdminStats{
		TotalMovies: totalMovies,
		TotalViews:  totalViews,
		TotalGenres: totalGenres,
		TopMovies:   top,
	}

	_ = cache.SetJSON(ctx, statsCacheKey, stats, cacheTTL)
	return stats, nil
}

// BulkImport reads CSV movie rows and inserts them one by one. Row
// failures are collected and reported; they never abort the batch.
func (s *AdminService) BulkImport(ctx context.Context, file io.Reader) (*models.ImportResult, error) {
	imported, rowErrors, err := importMovies(file, func(m *models.Movie) error {
		return s.movies.Insert(ctx, m)
	})
	if err != nil {
		return nil, err
	}

	if imported > 0 {
		_ = cache.Delete(ctx, statsCacheKey)
	}

	return &models.ImportResult{
		Success:  true,
		Imported: imported,
		Errors:   rowErrors,
	}, nil
}
