// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/businesstalk/backend/models"
)

var (
	// ErrNotFound is returned when a document id does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrUnavailable is returned by sources that cannot accept writes,
	// such as the demo fallback. Handlers map it to 503.
	ErrUnavailable = errors.New("content store unavailable")

	// ErrTooLarge is returned when a podcast write would exceed
	// MaxPodcastBytes. Handlers map it to 413, distinct from validation.
	ErrTooLarge = errors.New("podcast document too large")
)

// MaxPodcastBytes caps serialized podcast documents at 12 MiB, leaving
// headroom under MongoDB's 16 MB per-document ceiling. Inline thumbnail
// and guest images are what push documents toward the limit.
const MaxPodcastBytes = 12 << 20

// ContentSource is the read/write surface over the four content
// collections. It is selected once at startup: Mongo when the database is
// reachable, Demo otherwise. There is no global "connected" flag; callers
// hold the source they were given.
type ContentSource interface {
	// Podcasts
	ListPodcasts(ctx context.Context, q ListQuery) ([]models.Podcast, int, error)
	GetPodcast(ctx context.Context, id string) (*models.Podcast, error)
	CreatePodcast(ctx context.Context, p *models.Podcast) error
	UpdatePodcast(ctx context.Context, p *models.Podcast) error
	DeletePodcast(ctx context.Context, id string) error
	PodcastExists(ctx context.Context, title string, episodeNumber int) (bool, error)
	RepairCategories(ctx context.Context) (int, error)

	// Blogs
	ListBlogs(ctx context.Context, q BlogQuery) ([]models.Blog, int, error)
	GetBlog(ctx context.Context, id string) (*models.Blog, error)
	CreateBlog(ctx context.Context, b *models.Blog) error
	UpdateBlog(ctx context.Context, b *models.Blog) error
	DeleteBlog(ctx context.Context, id string) error

	// About page (singleton, lazily created)
	GetAbout(ctx context.Context) (*models.AboutUs, error)
	PutAbout(ctx context.Context, a *models.AboutUs) error

	// Site settings (singleton)
	GetSettings(ctx context.Context) (*models.SiteSettings, error)
	PutSettings(ctx context.Context, s *models.SiteSettings) error

	// Users
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// CheckPodcastSize enforces MaxPodcastBytes on the serialized document so
// Mongo and Memory agree on what is oversized.
func CheckPodcastSize(p *models.Podcast) error {
	raw, err := bson.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal podcast: %w", err)
	}
	if len(raw) > MaxPodcastBytes {
		return ErrTooLarge
	}
	return nil
}

// Paginate computes the response pagination block. Total comes from an
// independent count query, never from the page slice.
func Paginate(total, page, limit int) models.Pagination {
	pages := 0
	if limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return models.Pagination{
		Total: total,
		Page:  page,
		Pages: pages,
		Limit: limit,
	}
}

// DefaultAbout is the content lazily written on the first /about read.
func DefaultAbout() *models.AboutUs {
	return &models.AboutUs{
		Title: "About Business Talk",
		Paragraphs: []string{
			"Business Talk is a podcast and blog exploring how companies are built, run, and reinvented.",
			"Each episode features conversations with founders, operators, and researchers about the decisions behind their work.",
		},
	}
}
