package middleware

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
)

type contextKeyType string

const adminUserKey contextKeyType = "admin_user"

// CredentialVerifier checks a username/password pair and reports whether it
// belongs to an admin account. Implementations decide how credentials are
// stored and compared.
type CredentialVerifier func(ctx context.Context, username, password string) (bool, error)

// BasicAuth returns middleware that guards admin routes with HTTP Basic
// authentication. A missing or malformed Authorization header yields 401,
// a base64 decode failure yields 500, and valid credentials that do not
// belong to an admin yield 403.
func BasicAuth(verify CredentialVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing authorization header")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "basic") {
				writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid authorization header format")
				return
			}

			decoded, err := base64.StdEncoding.DecodeString(parts[1])
			if err != nil {
				writeAuthError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred")
				return
			}

			username, password, found := strings.Cut(string(decoded), ":")
			if !found {
				writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid credentials format")
				return
			}

			ok, err := verify(r.Context(), username, password)
			if err != nil {
				writeAuthError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred")
				return
			}
			if !ok {
				writeAuthError(w, http.StatusForbidden, "FORBIDDEN", "admin access required")
				return
			}

			ctx := context.WithValue(r.Context(), adminUserKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminUserFromContext extracts the authenticated admin username from the
// request context. Returns an empty string if no admin is authenticated.
func AdminUserFromContext(ctx context.Context) string {
	if u, ok := ctx.Value(adminUserKey).(string); ok {
		return u
	}
	return ""
}

func writeAuthError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Basic realm="admin"`)
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"code":    code,
		"message": message,
	})
}
