// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/businesstalk/backend/config"
	"github.com/businesstalk/backend/middleware"
	"github.com/businesstalk/backend/models"
	"github.com/businesstalk/backend/store"
)

type BlogHandler struct {
	src store.ContentSource
	cfg config.Config
}

func NewBlogHandler(src store.ContentSource, cfg config.Config) *BlogHandler {
	return &BlogHandler{src: src, cfg: cfg}
}

// List handles GET /blogs. Public: published documents only.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true)
}

// AdminList handles GET /blogs/admin/all. Drafts included.
func (h *BlogHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, false)
}

func (h *BlogHandler) list(w http.ResponseWriter, r *http.Request, publishedOnly bool) {
	params := r.URL.Query()
	q := store.BlogQuery{
		Category:      params.Get("category"),
		Search:        params.Get("search"),
		Page:          parsePositiveInt(params.Get("page"), 1),
		Limit:         parsePositiveInt(params.Get("limit"), store.DefaultLimit),
		PublishedOnly: publishedOnly,
	}

	items, total, err := h.src.ListBlogs(r.Context(), q)
	if err != nil {
		storeError(w, err, "failed to list blogs")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.BlogListResponse{
		Blogs:      items,
		Pagination: store.Paginate(total, q.Page, q.Limit),
	})
}

// Get handles GET /blogs/{id}. A draft is indistinguishable from a missing
// document on the public route.
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.src.GetBlog(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		storeError(w, err, "failed to get blog")
		return
	}
	if !b.IsPublished {
		middleware.ErrorResponse(w, http.StatusNotFound, "not found")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, b)
}

// AdminGet handles GET /blogs/admin/{id}, drafts included.
func (h *BlogHandler) AdminGet(w http.ResponseWriter, r *http.Request) {
	b, err := h.src.GetBlog(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		storeError(w, err, "failed to get blog")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, b)
}

// Create handles POST /blogs (admin). Draft-first: isPublished defaults to
// false unless the body says otherwise.
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var b models.Blog
	if err := middleware.ParseJSONBody(r, &b); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	models.ApplyBlogDefaults(&b)

	if problems := models.ValidateBlog(&b); len(problems) > 0 {
		validationError(w, problems)
		return
	}

	if err := h.src.CreateBlog(r.Context(), &b); err != nil {
		storeError(w, err, "failed to create blog")
		return
	}

	slog.Info("blog created", "id", b.ID, "published", b.IsPublished)
	middleware.JSONResponse(w, http.StatusCreated, b)
}

// Update handles PUT /blogs/{id} (admin). Partial merge like podcasts.
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, err := h.src.GetBlog(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		storeError(w, err, "failed to load blog for update")
		return
	}

	updated := *existing
	if err := middleware.ParseJSONBody(r, &updated); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if problems := models.ValidateBlog(&updated); len(problems) > 0 {
		validationError(w, problems)
		return
	}

	if err := h.src.UpdateBlog(r.Context(), &updated); err != nil {
		storeError(w, err, "failed to update blog")
		return
	}

	slog.Info("blog updated", "id", updated.ID, "published", updated.IsPublished)
	middleware.JSONResponse(w, http.StatusOK, updated)
}

// Delete handles DELETE /blogs/{id} (admin).
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.src.DeleteBlog(r.Context(), id); err != nil {
		storeError(w, err, "failed to delete blog")
		return
	}

	slog.Info("blog deleted", "id", id)
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": "blog deleted"})
}
