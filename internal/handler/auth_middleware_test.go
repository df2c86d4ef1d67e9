package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"moviestream/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "test_admin_token"

func gatedRouter() http.Handler {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(AdminAuth(testToken))
		r.Get("/admin/ping", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("pong"))
		})
	})
	return r
}

func TestAdminAuthMissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	rec := httptest.NewRecorder()

	gatedRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authorization header missing")
}

func TestAdminAuthWrongToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer not-the-token")
	rec := httptest.NewRecorder()

	gatedRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid admin token")
}

func TestAdminAuthNonBearerScheme(t *testing.T) {
	// The raw token without the scheme marker must not pass.
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", testToken)
	rec := httptest.NewRecorder()

	gatedRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminAuthValidToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+testToken)
	rec := httptest.NewRecorder()

	gatedRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestValidateTokenProbe(t *testing.T) {
	h := NewAdminHandler(nil, testToken)

	cases := []struct {
		name   string
		header string
		valid  bool
	}{
		{"valid", "Bearer " + testToken, true},
		{"wrong", "Bearer nope", false},
		{"missing", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/admin/validate-token", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			h.ValidateToken(rec, req)

			// The probe always answers 200 and reports validity in
			// the body.
			require.Equal(t, http.StatusOK, rec.Code)

			var res models.TokenValidation
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
			assert.Equal(t, tc.valid, res.Valid)
		})
	}
}
