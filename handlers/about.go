// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/businesstalk/backend/config"
	"github.com/businesstalk/backend/middleware"
	"github.com/businesstalk/backend/models"
	"github.com/businesstalk/backend/store"
)

type AboutHandler struct {
	src store.ContentSource
	cfg config.Config
}

func NewAboutHandler(src store.ContentSource, cfg config.Config) *AboutHandler {
	return &AboutHandler{src: src, cfg: cfg}
}

// Get handles GET /about. The singleton is created with default content on
// first read if absent.
func (h *AboutHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.src.GetAbout(r.Context())
	if err != nil {
		storeError(w, err, "failed to get about page")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, a)
}

// Put handles PUT /about (admin). Full replacement of the singleton.
func (h *AboutHandler) Put(w http.ResponseWriter, r *http.Request) {
	var a models.AboutUs
	if err := middleware.ParseJSONBody(r, &a); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if strings.TrimSpace(a.Title) == "" {
		validationError(w, []string{"title is required"})
		return
	}
	if a.Paragraphs == nil {
		a.Paragraphs = []string{}
	}

	if err := h.src.PutAbout(r.Context(), &a); err != nil {
		storeError(w, err, "failed to update about page")
		return
	}

	slog.Info("about page updated", "paragraphs", len(a.Paragraphs))
	middleware.JSONResponse(w, http.StatusOK, a)
}
