// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/businesstalk/backend/config"
	"github.com/businesstalk/backend/middleware"
	"github.com/businesstalk/backend/models"
	"github.com/businesstalk/backend/store"
)

type PodcastHandler struct {
	src store.ContentSource
	cfg config.Config
}

func NewPodcastHandler(src store.ContentSource, cfg config.Config) *PodcastHandler {
	return &PodcastHandler{src: src, cfg: cfg}
}

// List handles GET /podcasts
func (h *PodcastHandler) List(w http.ResponseWriter, r *http.Request) {
	q := listQueryFromRequest(r)

	items, total, err := h.src.ListPodcasts(r.Context(), q)
	if err != nil {
		storeError(w, err, "failed to list podcasts")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PodcastListResponse{
		Podcasts:   items,
		Pagination: store.Paginate(total, q.Page, q.Limit),
	})
}

// Get handles GET /podcasts/{id}. Detail reads always include inline
// images; that is the explicit opt-in path for image bytes.
func (h *PodcastHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.src.GetPodcast(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		storeError(w, err, "failed to get podcast")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, p)
}

// Create handles POST /podcasts (admin)
func (h *PodcastHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p models.Podcast
	if err := middleware.ParseJSONBody(r, &p); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	p.Normalize()

	if problems := models.ValidatePodcast(&p); len(problems) > 0 {
		validationError(w, problems)
		return
	}

	if err := h.src.CreatePodcast(r.Context(), &p); err != nil {
		storeError(w, err, "failed to create podcast")
		return
	}

	slog.Info("podcast created", "id", p.ID, "category", p.Category, "episode", p.EpisodeNumber)
	middleware.JSONResponse(w, http.StatusCreated, p)
}

// Update handles PUT /podcasts/{id} (admin). Partial merge: only fields
// present in the body change, then the create validators run again on the
// merged document.
func (h *PodcastHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, err := h.src.GetPodcast(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		storeError(w, err, "failed to load podcast for update")
		return
	}

	updated := *existing
	if err := middleware.ParseJSONBody(r, &updated); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	updated.Normalize()

	if problems := models.ValidatePodcast(&updated); len(problems) > 0 {
		validationError(w, problems)
		return
	}

	if err := h.src.UpdatePodcast(r.Context(), &updated); err != nil {
		storeError(w, err, "failed to update podcast")
		return
	}

	slog.Info("podcast updated", "id", updated.ID)
	middleware.JSONResponse(w, http.StatusOK, updated)
}

// Delete handles DELETE /podcasts/{id} (admin). Physical removal, no
// soft-delete or cascade.
func (h *PodcastHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.src.DeletePodcast(r.Context(), id); err != nil {
		storeError(w, err, "failed to delete podcast")
		return
	}

	slog.Info("podcast deleted", "id", id)
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": "podcast deleted"})
}

// RepairCategories handles POST /podcasts/repair-categories (admin).
// Re-aligns category with the youtubeUrl convention across the collection.
func (h *PodcastHandler) RepairCategories(w http.ResponseWriter, r *http.Request) {
	n, err := h.src.RepairCategories(r.Context())
	if err != nil {
		storeError(w, err, "failed to repair categories")
		return
	}

	slog.Info("podcast categories repaired", "repaired", n)
	middleware.JSONResponse(w, http.StatusOK, models.RepairResponse{Repaired: n})
}

func listQueryFromRequest(r *http.Request) store.ListQuery {
	params := r.URL.Query()
	includeImages, _ := strconv.ParseBool(params.Get("includeImages"))
	return store.ListQuery{
		Category:      params.Get("category"),
		Search:        params.Get("search"),
		Page:          parsePositiveInt(params.Get("page"), 1),
		Limit:         parsePositiveInt(params.Get("limit"), store.DefaultLimit),
		IncludeImages: includeImages,
	}
}

func parsePositiveInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
