// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

RequestLogger is a chi-compatible middleware logging request start
(method, path, remote) and completion (status, duration_ms) via slog.

# Auth Gates

RequireAuth verifies the Authorization bearer token and stores the
claims in the request context; RequireAdmin additionally checks the
role:

	r.Use(middleware.RequireAuth(secret), middleware.RequireAdmin)

Handlers read the verified identity with ClaimsFromContext(r.Context()).

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

GetClientIP returns the original client IP (handles X-Forwarded-For,
X-Real-IP). Used when logging rejected logins.
*/
package middleware
