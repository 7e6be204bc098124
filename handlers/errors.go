// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/businesstalk/backend/middleware"
	"github.com/businesstalk/backend/store"
)

// storeError maps store sentinel errors onto the HTTP taxonomy: 404 for
// missing ids, 413 for oversized podcast writes, 503 when the demo
// fallback rejects a write, 500 for everything else.
func storeError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "not found")
	case errors.Is(err, store.ErrTooLarge):
		middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge,
			"podcast document exceeds the size limit; remove or shrink inline images")
	case errors.Is(err, store.ErrUnavailable):
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "content store unavailable")
	default:
		slog.Error(action, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "database error")
	}
}

// validationError answers 400 with the accumulated field problems.
func validationError(w http.ResponseWriter, problems []string) {
	middleware.ErrorResponse(w, http.StatusBadRequest, strings.Join(problems, "; "))
}
