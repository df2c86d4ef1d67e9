// internal/service/import.go
package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"moviestream/internal/models"
)

// importMovies drives a CSV bulk import: one insert per well-formed row,
// one error entry per bad row. Row numbering in the error list counts
// successfully imported rows, matching the import report contract.
func importMovies(file io.Reader, insert func(*models.Movie) error) (int, []string, error) {
	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	header, err := readHeader(r)
	if err != nil {
		return 0, nil, err
	}

	imported := 0
	rowErrors := []string{}

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed records are row errors; anything else means
			// the stream itself broke and the loop would never end.
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return imported, rowErrors, err
			}
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d: %v", imported+1, err))
			continue
		}
		if len(row) == 0 {
			continue
		}

		req, err := parseMovieRow(header, row)
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d: %v", imported+1, err))
			continue
		}

		if err := insert(newMovie(req)); err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d: %v", imported+1, err))
			continue
		}
		imported++
	}

	return imported, rowErrors, nil
}

func readHeader(r *csv.Reader) (map[string]int, error) {
	row, err := r.Read()
	if err != nil {
		return nil, err
	}
	header := make(map[string]int, len(row))
	for idx, name := range row {
		header[strings.TrimSpace(name)] = idx
	}
	return header, nil
}

// parseMovieRow maps one CSV row onto a create request. genres and cast
// cells hold |-delimited sub-values; language falls back to English when
// the column is absent entirely.
func parseMovieRow(header map[string]int, row []string) (*models.MovieCreateRequest, error) {
	title, err := cellAt(header, row, "title")
	if err != nil {
		return nil, err
	}
	synopsis, err := cellAt(header, row, "synopsis")
	if err != nil {
		return nil, err
	}
	genres, err := cellAt(header, row, "genres")
	if err != nil {
		return nil, err
	}
	cast, err := cellAt(header, row, "cast")
	if err != nil {
		return nil, err
	}
	releaseYear, err := intCellAt(header, row, "releaseYear")
	if err != nil {
		return nil, err
	}
	runtime, err := intCellAt(header, row, "runtime")
	if err != nil {
		return nil, err
	}
	posterURL, err := cellAt(header, row, "posterUrl")
	if err != nil {
		return nil, err
	}
	videoURL, err := cellAt(header, row, "videoUrl")
	if err != nil {
		return nil, err
	}

	language := "English"
	if _, ok := header["language"]; ok {
		language, _ = cellAt(header, row, "language")
	}

	return &models.MovieCreateRequest{
		Title:       title,
		Synopsis:    synopsis,
		Genres:      strings.Split(genres, "|"),
		Cast:        strings.Split(cast, "|"),
		ReleaseYear: releaseYear,
		Runtime:     runtime,
		PosterURL:   posterURL,
		VideoURL:    videoURL,
		Language:    language,
	}, nil
}

func cellAt(header map[string]int, row []string, key string) (string, error) {
	idx, ok := header[key]
	if !ok || idx >= len(row) {
		return "", fmt.Errorf("missing column %q", key)
	}
	return strings.TrimSpace(row[idx]), nil
}

func intCellAt(header map[string]int, row []string, key string) (int, error) {
	raw, err := cellAt(header, row, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return n, nil
}
