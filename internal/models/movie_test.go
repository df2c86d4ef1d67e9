package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateRequestFieldsEmpty(t *testing.T) {
	var req MovieUpdateRequest
	assert.Empty(t, req.Fields())
}

func TestUpdateRequestFieldsSubset(t *testing.T) {
	title := "New Title"
	year := 1999
	req := MovieUpdateRequest{Title: &title, ReleaseYear: &year}

	fields := req.Fields()

	assert.Equal(t, map[string]any{
		"title":       "New Title",
		"releaseYear": 1999,
	}, fields)
}

func TestUpdateRequestFromJSON(t *testing.T) {
	// Only keys present in the body end up in the patch; explicit
	// empty values still count as supplied.
	var req MovieUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"synopsis":"","runtime":90}`), &req))

	fields := req.Fields()

	assert.Equal(t, map[string]any{
		"synopsis": "",
		"runtime":  90,
	}, fields)
}
