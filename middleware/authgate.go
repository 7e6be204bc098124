// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/businesstalk/backend/auth"
	"github.com/businesstalk/backend/models"
)

type contextKey string

const claimsContextKey contextKey = "authClaims"

// RequireAuth validates the bearer access token and stores its claims in
// the request context. Missing, malformed, invalid, and expired tokens all
// answer 401; client-side that status triggers the single refresh-and-retry.
func RequireAuth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				ErrorResponse(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			tokenString := strings.TrimSpace(header[len("Bearer "):])

			claims, err := auth.ParseToken(secret, tokenString, auth.KindAccess)
			if err != nil {
				ErrorResponse(w, http.StatusUnauthorized, err.Error())
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects authenticated non-admin callers with 403. Must run
// after RequireAuth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r.Context())
		if claims == nil {
			ErrorResponse(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		if claims.Role != models.RoleAdmin {
			ErrorResponse(w, http.StatusForbidden, "admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClaimsFromContext returns the verified claims, or nil outside RequireAuth.
func ClaimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsContextKey).(*auth.Claims)
	return claims
}
