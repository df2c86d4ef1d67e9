package handler

import (
	"errors"
	"net/http"
)

var (
	errNoAuthHeader = errors.New("Authorization header missing")
	errBadToken     = errors.New("Invalid admin token")
)

// verifyAdminToken compares the Authorization header against the
// configured shared secret. The two failure modes map to 401 (header
// absent) and 403 (header present but wrong).
func verifyAdminToken(r *http.Request, token string) error {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return errNoAuthHeader
	}
	if auth != "Bearer "+token {
		return errBadToken
	}
	return nil
}

// AdminAuth gates the admin subtree behind the shared-secret check.
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := verifyAdminToken(r, token); err != nil {
				status := http.StatusForbidden
				if errors.Is(err, errNoAuthHeader) {
					status = http.StatusUnauthorized
				}
				http.Error(w, err.Error(), status)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
