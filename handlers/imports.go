// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/businesstalk/backend/config"
	"github.com/businesstalk/backend/middleware"
	"github.com/businesstalk/backend/models"
	"github.com/businesstalk/backend/store"
)

type ImportHandler struct {
	src store.ContentSource
	cfg config.Config
	now func() time.Time
}

func NewImportHandler(src store.ContentSource, cfg config.Config) *ImportHandler {
	return &ImportHandler{src: src, cfg: cfg, now: time.Now}
}

// ImportPodcasts handles POST /import/podcasts (admin). Best-effort batch:
// each row succeeds or fails on its own and the report says which. Only a
// store outage aborts the request as a whole.
func (h *ImportHandler) ImportPodcasts(w http.ResponseWriter, r *http.Request) {
	var rows []models.Podcast
	if err := middleware.ParseJSONBody(r, &rows); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "expected a JSON array of podcasts")
		return
	}

	report := models.ImportReport{
		Errors:   []string{},
		Imported: []string{},
	}
	now := h.now().UTC()

	for i, row := range rows {
		rowName := strings.TrimSpace(row.Title)
		if rowName == "" {
			rowName = fmt.Sprintf("row %d", i+1)
		}

		// Rows without an explicit category are classified by schedule:
		// a future date means the episode has not happened yet.
		if row.Category == "" && !row.ScheduledDate.IsZero() {
			if row.ScheduledDate.After(now) {
				row.Category = models.CategoryUpcoming
			} else {
				row.Category = models.CategoryPast
			}
		}
		row.Normalize()

		if problems := models.ValidatePodcast(&row); len(problems) > 0 {
			report.Failed++
			report.Errors = append(report.Errors,
				fmt.Sprintf("%s: %s", rowName, strings.Join(problems, "; ")))
			continue
		}

		exists, err := h.src.PodcastExists(r.Context(), row.Title, row.EpisodeNumber)
		if err != nil {
			if errors.Is(err, store.ErrUnavailable) {
				storeError(w, err, "import aborted")
				return
			}
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", rowName, err))
			continue
		}
		if exists {
			report.Failed++
			report.Errors = append(report.Errors,
				fmt.Sprintf("%s: duplicate title or episode number, skipped", rowName))
			continue
		}

		if err := h.src.CreatePodcast(r.Context(), &row); err != nil {
			if errors.Is(err, store.ErrUnavailable) {
				storeError(w, err, "import aborted")
				return
			}
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", rowName, err))
			continue
		}

		report.Success++
		report.Imported = append(report.Imported, row.Title)
	}

	slog.Info("podcast import finished",
		"rows", len(rows),
		"success", report.Success,
		"failed", report.Failed,
	)
	middleware.JSONResponse(w, http.StatusOK, report)
}
