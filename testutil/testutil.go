// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/businesstalk/backend/auth"
	"github.com/businesstalk/backend/config"
	"github.com/businesstalk/backend/models"
	"github.com/businesstalk/backend/store"
)

// GetTestConfig returns a standard test configuration
func GetTestConfig() config.Config {
	return config.Config{
		Port:          5000,
		DBName:        "businesstalk_test",
		JWTSecret:     "test-jwt-secret",
		AdminEmail:    "admin@businesstalk.test",
		AdminPassword: "test-password",
		AdminName:     "Test Admin",
		CORSOrigins:   []string{"*"},
	}
}

// SetupTestStore returns a fresh in-memory content source with the admin
// account already bootstrapped.
func SetupTestStore(t *testing.T, cfg config.Config) *store.Memory {
	t.Helper()

	src := store.NewMemory()
	if err := store.EnsureAdmin(context.Background(), src, cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName); err != nil {
		t.Fatalf("Failed to bootstrap admin: %v", err)
	}
	return src
}

// AdminToken mints a valid access token for the bootstrapped admin
func AdminToken(t *testing.T, cfg config.Config, src *store.Memory) string {
	t.Helper()

	u, err := src.GetUserByEmail(context.Background(), cfg.AdminEmail)
	if err != nil {
		t.Fatalf("Failed to load admin user: %v", err)
	}
	token, err := auth.IssueAccessToken([]byte(cfg.JWTSecret), u)
	if err != nil {
		t.Fatalf("Failed to issue access token: %v", err)
	}
	return token
}

// CreateTestPodcast inserts a podcast and returns it. Episode numbers keep
// fixtures distinct; scheduledDate is placed relative to now per category.
func CreateTestPodcast(t *testing.T, src *store.Memory, category string, episode int) *models.Podcast {
	t.Helper()

	offset := -time.Duration(episode) * 24 * time.Hour
	if category == models.CategoryUpcoming {
		offset = time.Duration(episode) * 24 * time.Hour
	}
	p := &models.Podcast{
		Title:         fmt.Sprintf("Episode %d", episode),
		Description:   fmt.Sprintf("Conversation number %d", episode),
		Category:      category,
		EpisodeNumber: episode,
		ScheduledDate: time.Now().UTC().Add(offset),
		Guests: []models.Guest{
			{Name: fmt.Sprintf("Guest %d", episode), Title: "CEO", Institution: "Acme"},
		},
		ThumbnailImage: "data:image/jpeg;base64,dGh1bWI=",
	}
	if err := src.CreatePodcast(context.Background(), p); err != nil {
		t.Fatalf("Failed to create test podcast: %v", err)
	}
	return p
}

// CreateTestBlog inserts a blog post and returns it
func CreateTestBlog(t *testing.T, src *store.Memory, title string, published bool) *models.Blog {
	t.Helper()

	b := &models.Blog{
		Title:       title,
		Content:     "Body of " + title,
		Excerpt:     "Excerpt of " + title,
		Category:    "Business",
		IsPublished: published,
	}
	if err := src.CreateBlog(context.Background(), b); err != nil {
		t.Fatalf("Failed to create test blog: %v", err)
	}
	return b
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AuthHeader builds the bearer header map for MakeRequest
func AuthHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// DecodeJSON decodes a recorded response body, failing the test on error
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
}
