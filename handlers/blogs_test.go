// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers_test

import (
	"net/http"
	"testing"

	"github.com/businesstalk/backend/models"
	"github.com/businesstalk/backend/testutil"
)

func TestBlogDraftVisibility(t *testing.T) {
	src, mux, cfg := newTestServer(t)
	token := testutil.AdminToken(t, cfg, src)

	published := testutil.CreateTestBlog(t, src, "Published post", true)
	draft := testutil.CreateTestBlog(t, src, "Draft post", false)

	// Public list shows only the published post.
	rec := record(mux, testutil.MakeRequest(http.MethodGet, "/blogs", nil, nil))
	var resp models.BlogListResponse
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Pagination.Total != 1 {
		t.Errorf("public total = %d, want 1", resp.Pagination.Total)
	}
	if len(resp.Blogs) != 1 || resp.Blogs[0].ID != published.ID {
		t.Error("public list does not contain exactly the published post")
	}

	// The draft is indistinguishable from a missing post publicly.
	rec = record(mux, testutil.MakeRequest(http.MethodGet, "/blogs/"+draft.ID, nil, nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("public GET draft = %d, want 404", rec.Code)
	}

	// Admin routes see everything.
	rec = record(mux, testutil.MakeRequest(http.MethodGet, "/blogs/admin/all", nil, testutil.AuthHeader(token)))
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Pagination.Total != 2 {
		t.Errorf("admin total = %d, want 2", resp.Pagination.Total)
	}
	rec = record(mux, testutil.MakeRequest(http.MethodGet, "/blogs/admin/"+draft.ID, nil, testutil.AuthHeader(token)))
	if rec.Code != http.StatusOK {
		t.Errorf("admin GET draft = %d, want 200", rec.Code)
	}
}

func TestCreateBlogDefaults(t *testing.T) {
	src, mux, cfg := newTestServer(t)
	token := testutil.AdminToken(t, cfg, src)

	rec := record(mux, testutil.MakeRequest(http.MethodPost, "/blogs",
		models.Blog{Title: "No author given", Content: "body", Category: "Business"},
		testutil.AuthHeader(token)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /blogs = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var created models.Blog
	testutil.DecodeJSON(t, rec, &created)
	if created.Author != models.DefaultAuthor {
		t.Errorf("Author = %q, want default %q", created.Author, models.DefaultAuthor)
	}
	if created.Image == "" {
		t.Error("Image default not applied")
	}
	// Draft-first: a post is not published unless the body says so.
	if created.IsPublished {
		t.Error("new blog is published by default")
	}
}

func TestCreateBlogValidation(t *testing.T) {
	src, mux, cfg := newTestServer(t)
	token := testutil.AdminToken(t, cfg, src)

	rec := record(mux, testutil.MakeRequest(http.MethodPost, "/blogs",
		models.Blog{Title: "Missing content"},
		testutil.AuthHeader(token)))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("POST /blogs without content = %d, want 400", rec.Code)
	}
}

func TestUpdateBlogPartialMerge(t *testing.T) {
	src, mux, cfg := newTestServer(t)
	token := testutil.AdminToken(t, cfg, src)
	b := testutil.CreateTestBlog(t, src, "Original title", false)

	// Publishing via a one-field patch keeps the rest.
	rec := record(mux, testutil.MakeRequest(http.MethodPut, "/blogs/"+b.ID,
		map[string]any{"isPublished": true},
		testutil.AuthHeader(token)))
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT /blogs/{id} = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var updated models.Blog
	testutil.DecodeJSON(t, rec, &updated)
	if !updated.IsPublished {
		t.Error("isPublished patch not applied")
	}
	if updated.Title != b.Title || updated.Content != b.Content {
		t.Error("fields absent from the patch changed")
	}
}

func TestDeleteBlog(t *testing.T) {
	src, mux, cfg := newTestServer(t)
	token := testutil.AdminToken(t, cfg, src)
	b := testutil.CreateTestBlog(t, src, "Short lived", true)

	rec := record(mux, testutil.MakeRequest(http.MethodDelete, "/blogs/"+b.ID, nil, testutil.AuthHeader(token)))
	if rec.Code != http.StatusOK {
		t.Fatalf("DELETE /blogs/{id} = %d, want 200", rec.Code)
	}
	rec = record(mux, testutil.MakeRequest(http.MethodGet, "/blogs/"+b.ID, nil, nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET deleted blog = %d, want 404", rec.Code)
	}
}
