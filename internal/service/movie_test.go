package service

import (
	"testing"

	"moviestream/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestNewMovieAssignsSystemFields(t *testing.T) {
	req := &models.MovieCreateRequest{
		Title:       "The Quantum Heist",
		Synopsis:    "A team of scientists pulls off an impossible theft.",
		Genres:      []string{"Action", "Sci-Fi"},
		Cast:        []string{"Michael Chen"},
		ReleaseYear: 2023,
		Runtime:     142,
		PosterURL:   "http://p/q",
		VideoURL:    "http://v/q",
	}

	a := newMovie(req)
	b := newMovie(req)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 0, a.ViewCount)
	assert.False(t, a.CreatedAt.IsZero())

	// omitted optional fields take their documented defaults
	assert.Equal(t, "English", a.Language)
	assert.NotNil(t, a.Subtitles)
	assert.Empty(t, a.Subtitles)
}

func TestNewMovieKeepsSuppliedOptionals(t *testing.T) {
	req := &models.MovieCreateRequest{
		Title:     "Dubbed",
		Language:  "Korean",
		Subtitles: []string{"English", "Japanese"},
	}

	m := newMovie(req)

	assert.Equal(t, "Korean", m.Language)
	assert.Equal(t, []string{"English", "Japanese"}, m.Subtitles)
}
