package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 20, clampLimit(0))
	assert.Equal(t, 20, clampLimit(-5))
	assert.Equal(t, 1, clampLimit(1))
	assert.Equal(t, 100, clampLimit(100))
	assert.Equal(t, 100, clampLimit(500))
}

func TestClampSkip(t *testing.T) {
	assert.Equal(t, 0, clampSkip(-1))
	assert.Equal(t, 0, clampSkip(0))
	assert.Equal(t, 40, clampSkip(40))
}

func TestQueryInt(t *testing.T) {
	r := httptest.NewRequest("GET", "/movies?limit=42&skip=junk", nil)

	assert.Equal(t, 42, queryInt(r, "limit", "20"))
	// unparsable values fall through to zero, clamping restores defaults
	assert.Equal(t, 0, queryInt(r, "skip", "0"))
	assert.Equal(t, 20, queryInt(r, "missing", "20"))
}
