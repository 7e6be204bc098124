// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/businesstalk/backend/models"
	"github.com/businesstalk/backend/testutil"
)

func TestImportPodcastsBestEffort(t *testing.T) {
	src, mux, cfg := newTestServer(t)
	token := testutil.AdminToken(t, cfg, src)

	// An existing episode makes the second row a duplicate.
	testutil.CreateTestPodcast(t, src, models.CategoryPast, 7)

	rows := []models.Podcast{
		{
			Title:         "Fresh import",
			Description:   "Imported from a spreadsheet",
			Category:      models.CategoryPast,
			EpisodeNumber: 21,
			ScheduledDate: time.Now().Add(-72 * time.Hour),
			Guests:        []models.Guest{{Name: "Imported Guest"}},
		},
		{
			Title:         "Episode 7",
			Description:   "Already in the store",
			Category:      models.CategoryPast,
			EpisodeNumber: 99,
			ScheduledDate: time.Now().Add(-72 * time.Hour),
			Guests:        []models.Guest{{Name: "Someone"}},
		},
		{
			// No title: fails validation but not the batch.
			Description:   "Broken row",
			Category:      models.CategoryUpcoming,
			EpisodeNumber: 50,
		},
	}

	rec := record(mux, testutil.MakeRequest(http.MethodPost, "/import/podcasts", rows, testutil.AuthHeader(token)))
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /import/podcasts = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var report models.ImportReport
	testutil.DecodeJSON(t, rec, &report)
	if report.Success != 1 {
		t.Errorf("success = %d, want 1", report.Success)
	}
	if report.Failed != 2 {
		t.Errorf("failed = %d, want 2", report.Failed)
	}
	if len(report.Imported) != 1 || report.Imported[0] != "Fresh import" {
		t.Errorf("imported = %v", report.Imported)
	}

	var sawDuplicate bool
	for _, msg := range report.Errors {
		if strings.Contains(msg, "duplicate") {
			sawDuplicate = true
		}
	}
	if !sawDuplicate {
		t.Errorf("errors %v do not mention the duplicate", report.Errors)
	}
}

func TestImportDerivesCategoryFromSchedule(t *testing.T) {
	src, mux, cfg := newTestServer(t)
	token := testutil.AdminToken(t, cfg, src)

	rows := []models.Podcast{
		{
			Title:         "Future show",
			ScheduledDate: time.Now().Add(14 * 24 * time.Hour),
		},
		{
			Title:         "Old show",
			Description:   "Happened already",
			EpisodeNumber: 3,
			ScheduledDate: time.Now().Add(-14 * 24 * time.Hour),
			Guests:        []models.Guest{{Name: "Past Guest"}},
		},
	}

	rec := record(mux, testutil.MakeRequest(http.MethodPost, "/import/podcasts", rows, testutil.AuthHeader(token)))
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /import/podcasts = %d, want 200", rec.Code)
	}
	var report models.ImportReport
	testutil.DecodeJSON(t, rec, &report)
	if report.Success != 2 {
		t.Fatalf("success = %d, want 2: %v", report.Success, report.Errors)
	}

	var listResp models.PodcastListResponse
	rec = record(mux, testutil.MakeRequest(http.MethodGet, "/podcasts?category=upcoming", nil, nil))
	testutil.DecodeJSON(t, rec, &listResp)
	if listResp.Pagination.Total != 1 || listResp.Podcasts[0].Title != "Future show" {
		t.Errorf("upcoming after import = %+v", listResp.Podcasts)
	}
}

func TestImportRejectsNonArray(t *testing.T) {
	src, mux, cfg := newTestServer(t)
	token := testutil.AdminToken(t, cfg, src)

	rec := record(mux, testutil.MakeRequest(http.MethodPost, "/import/podcasts",
		models.Podcast{Title: "Not an array"}, testutil.AuthHeader(token)))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("non-array import = %d, want 400", rec.Code)
	}
}

func TestImportDemoModeAborts(t *testing.T) {
	mux, cfg := newDemoServer(t)
	admin := &models.User{ID: "demo-admin", Email: cfg.AdminEmail, Role: models.RoleAdmin}
	token, err := issueAccessFor(cfg, admin)
	if err != nil {
		t.Fatalf("issue token error = %v", err)
	}

	rows := []models.Podcast{{Title: "Will not import", Category: models.CategoryUpcoming}}
	rec := record(mux, testutil.MakeRequest(http.MethodPost, "/import/podcasts", rows, testutil.AuthHeader(token)))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("demo import = %d, want 503", rec.Code)
	}
}
