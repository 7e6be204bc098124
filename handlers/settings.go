// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/businesstalk/backend/config"
	"github.com/businesstalk/backend/middleware"
	"github.com/businesstalk/backend/models"
	"github.com/businesstalk/backend/store"
)

type SettingsHandler struct {
	src store.ContentSource
	cfg config.Config
}

func NewSettingsHandler(src store.ContentSource, cfg config.Config) *SettingsHandler {
	return &SettingsHandler{src: src, cfg: cfg}
}

// Get handles GET /settings. Public so every list surface loads the same
// pagination sizes; defaults are served when nothing has been saved.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.src.GetSettings(r.Context())
	if err != nil {
		storeError(w, err, "failed to get settings")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, s)
}

// Put handles PUT /settings (admin).
func (h *SettingsHandler) Put(w http.ResponseWriter, r *http.Request) {
	var s models.SiteSettings
	if err := middleware.ParseJSONBody(r, &s); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if problems := models.ValidateSettings(&s); len(problems) > 0 {
		validationError(w, problems)
		return
	}

	if err := h.src.PutSettings(r.Context(), &s); err != nil {
		storeError(w, err, "failed to update settings")
		return
	}

	slog.Info("site settings updated",
		"upcomingInitial", s.UpcomingInitial,
		"upcomingBatch", s.UpcomingBatch,
		"pastInitial", s.PastInitial,
		"pastBatch", s.PastBatch,
	)
	middleware.JSONResponse(w, http.StatusOK, s)
}
