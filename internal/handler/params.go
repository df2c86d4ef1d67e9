package handler

import (
	"net/http"
	"strconv"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

func queryInt(r *http.Request, key, def string) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		raw = def
	}
	n, _ := strconv.Atoi(raw)
	return n
}

// clampLimit forces a page limit into 1..100, falling back to the
// default of 20 for zero or negative values.
func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultPageLimit
	}
	if limit > maxPageLimit {
		return maxPageLimit
	}
	return limit
}

func clampSkip(skip int) int {
	if skip < 0 {
		return 0
	}
	return skip
}
