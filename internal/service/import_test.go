package service

import (
	"errors"
	"strings"
	"testing"

	"moviestream/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const importHeader = "title,synopsis,genres,cast,releaseYear,runtime,posterUrl,videoUrl,language\n"

func collectInserts(dst *[]*models.Movie) func(*models.Movie) error {
	return func(m *models.Movie) error {
		*dst = append(*dst, m)
		return nil
	}
}

func TestImportMoviesAllRowsValid(t *testing.T) {
	csvData := importHeader +
		"Movie A,Synopsis A,Action|Drama,Ann|Bob,2020,120,http://p/a,http://v/a,English\n" +
		"Movie B,Synopsis B,Comedy,Cat,2021,95,http://p/b,http://v/b,French\n"

	var inserted []*models.Movie
	imported, rowErrors, err := importMovies(strings.NewReader(csvData), collectInserts(&inserted))

	require.NoError(t, err)
	assert.Equal(t, 2, imported)
	assert.Empty(t, rowErrors)
	require.Len(t, inserted, 2)

	assert.Equal(t, []string{"Action", "Drama"}, inserted[0].Genres)
	assert.Equal(t, []string{"Ann", "Bob"}, inserted[0].Cast)
	assert.Equal(t, 2020, inserted[0].ReleaseYear)
	assert.Equal(t, "French", inserted[1].Language)
	assert.NotEmpty(t, inserted[0].ID)
	assert.NotEqual(t, inserted[0].ID, inserted[1].ID)
}

func TestImportMoviesRowFaultIsolation(t *testing.T) {
	// Row 2 has a non-integer releaseYear; rows 1 and 3 must still land.
	csvData := importHeader +
		"Movie A,Synopsis A,Action,Ann,2020,120,http://p/a,http://v/a,English\n" +
		"Movie B,Synopsis B,Comedy,Cat,not-a-year,95,http://p/b,http://v/b,English\n" +
		"Movie C,Synopsis C,Drama,Dan,2022,101,http://p/c,http://v/c,English\n"

	var inserted []*models.Movie
	imported, rowErrors, err := importMovies(strings.NewReader(csvData), collectInserts(&inserted))

	require.NoError(t, err)
	assert.Equal(t, 2, imported)
	require.Len(t, rowErrors, 1)
	// The error index counts imported rows, so the bad second row
	// reports as row 2 here.
	assert.Contains(t, rowErrors[0], "Row 2:")
	assert.Contains(t, rowErrors[0], "releaseYear")

	require.Len(t, inserted, 2)
	assert.Equal(t, "Movie A", inserted[0].Title)
	assert.Equal(t, "Movie C", inserted[1].Title)
}

func TestImportMoviesInsertFailureIsRowError(t *testing.T) {
	csvData := importHeader +
		"Movie A,Synopsis A,Action,Ann,2020,120,http://p/a,http://v/a,English\n"

	imported, rowErrors, err := importMovies(strings.NewReader(csvData), func(*models.Movie) error {
		return errors.New("insert boom")
	})

	require.NoError(t, err)
	assert.Equal(t, 0, imported)
	require.Len(t, rowErrors, 1)
	assert.Contains(t, rowErrors[0], "insert boom")
}

func TestImportMoviesLanguageColumnOptional(t *testing.T) {
	csvData := "title,synopsis,genres,cast,releaseYear,runtime,posterUrl,videoUrl\n" +
		"Movie A,Synopsis A,Action,Ann,2020,120,http://p/a,http://v/a\n"

	var inserted []*models.Movie
	imported, rowErrors, err := importMovies(strings.NewReader(csvData), collectInserts(&inserted))

	require.NoError(t, err)
	assert.Equal(t, 1, imported)
	assert.Empty(t, rowErrors)
	assert.Equal(t, "English", inserted[0].Language)
}

func TestImportMoviesMissingColumn(t *testing.T) {
	csvData := "title,synopsis\n" +
		"Movie A,Synopsis A\n"

	var inserted []*models.Movie
	imported, rowErrors, err := importMovies(strings.NewReader(csvData), collectInserts(&inserted))

	require.NoError(t, err)
	assert.Equal(t, 0, imported)
	require.Len(t, rowErrors, 1)
	assert.Contains(t, rowErrors[0], "missing column")
	assert.Empty(t, inserted)
}
