// internal/service/catalog_service.go
package service

import (
	"context"

	"moviestream/internal/cache"
	"moviestream/internal/models"
	"moviestream/internal/repository"
)

const (
	genresCacheKey = "catalog:genres"
	cacheTTL       = 60
)

// CatalogService serves the public read side of the catalog plus the
// unauthenticated view-count bump.
type CatalogService struct {
	movies *repository.MovieRepository
	genres *repository.GenreRepository
}

func NewCatalogService(m *repository.MovieRepository, g *repository.GenreRepository) *CatalogService {
	return &CatalogService{movies: m, genres: g}
}

func (s *CatalogService) ListMovies(ctx context.Context, skip, limit int, genre string) ([]models.Movie, error) {
	return s.movies.List(ctx, skip, limit, genre)
}

func (s *CatalogService) GetMovie(ctx context.Context, id string) (*models.Movie, error) {
	m, err := s.movies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMovieNotFound
	}
	return m, nil
}

func (s *CatalogService) SearchMovies(ctx context.Context, q, genre string, year, limit int) ([]models.Movie, error) {
	return s.movies.Search(ctx, q, genre, year, limit)
}

func (s *CatalogService) IncrementView(ctx context.Context, id string) error {
	matched, err := s.movies.IncrementViews(ctx, id)
	if err != nil {
		return err
	}
	if !matched {
		return ErrMovieNotFound
	}
	return nil
}

// ListGenres reads through the redis cache; admin genre mutations
// invalidate the key.
func (s *CatalogService) ListGenres(ctx context.Context) ([]models.Genre, error) {
	var cached []models.Genre
	if ok, err := cache.GetJSON(ctx, genresCacheKey, &cached); err == nil && ok {
		return cached, nil
	}

	genres, err := s.genres.List(ctx)
	if err != nil {
		return nil, err
	}

	_ = cache.SetJSON(ctx, genresCacheKey, genres, cacheTTL)
	return genres, nil
}
