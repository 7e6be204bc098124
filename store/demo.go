// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/businesstalk/backend/models"
)

// Demo is the degraded read-only source served when the database cannot be
// reached at startup. Reads come from a small seeded dataset; every write
// fails with ErrUnavailable so mutation endpoints answer 503 instead of
// silently dropping data.
type Demo struct {
	*Memory
}

var _ ContentSource = (*Demo)(nil)

func NewDemo() *Demo {
	mem := NewMemory()
	seedDemo(mem)
	return &Demo{Memory: mem}
}

func (d *Demo) CreatePodcast(ctx context.Context, p *models.Podcast) error { return ErrUnavailable }
func (d *Demo) UpdatePodcast(ctx context.Context, p *models.Podcast) error { return ErrUnavailable }
func (d *Demo) DeletePodcast(ctx context.Context, id string) error         { return ErrUnavailable }
func (d *Demo) RepairCategories(ctx context.Context) (int, error)          { return 0, ErrUnavailable }
func (d *Demo) CreateBlog(ctx context.Context, b *models.Blog) error       { return ErrUnavailable }
func (d *Demo) UpdateBlog(ctx context.Context, b *models.Blog) error       { return ErrUnavailable }
func (d *Demo) DeleteBlog(ctx context.Context, id string) error            { return ErrUnavailable }
func (d *Demo) PutAbout(ctx context.Context, a *models.AboutUs) error      { return ErrUnavailable }
func (d *Demo) PutSettings(ctx context.Context, s *models.SiteSettings) error {
	return ErrUnavailable
}
func (d *Demo) CreateUser(ctx context.Context, u *models.User) error { return ErrUnavailable }

func seedDemo(mem *Memory) {
	ctx := context.Background()
	now := time.Now().UTC()

	upcomingGuests := []models.Guest{
		{Name: "Maria Keller", Title: "CEO", Institution: "Northwind Logistics"},
		{Name: "Tom Abara", Title: "Head of Product", Institution: "Brightline Health"},
		{Name: "Priya Natarajan", Title: "Professor of Finance", Institution: "State University"},
	}
	for i, g := range upcomingGuests {
		p := models.Podcast{
			Title:         fmt.Sprintf("Episode %d: %s on building %s", 40+i, g.Name, g.Institution),
			Description:   fmt.Sprintf("A conversation with %s, %s at %s.", g.Name, g.Title, g.Institution),
			Category:      models.CategoryUpcoming,
			Guests:        []models.Guest{g},
			EpisodeNumber: 40 + i,
			ScheduledDate: now.AddDate(0, 0, 7*(i+1)),
			ScheduledTime: "6:00 PM EST",
			Tags:          []string{"business", "interview"},
		}
		_ = mem.CreatePodcast(ctx, &p)
	}

	pastGuests := []models.Guest{
		{Name: "Daniel Osei", Title: "Founder", Institution: "Crestpeak Ventures"},
		{Name: "Lena Fischer", Title: "COO", Institution: "Arbor & Main"},
		{Name: "James Whitfield", Title: "Managing Partner", Institution: "Harbor Equity"},
	}
	for i, g := range pastGuests {
		p := models.Podcast{
			Title:         fmt.Sprintf("Episode %d: %s on scaling %s", 30+i, g.Name, g.Institution),
			Description:   fmt.Sprintf("%s joined us to talk about lessons from %s.", g.Name, g.Institution),
			Category:      models.CategoryPast,
			Guests:        []models.Guest{g},
			EpisodeNumber: 30 + i,
			ScheduledDate: now.AddDate(0, 0, -14*(i+1)),
			YoutubeURL:    fmt.Sprintf("https://www.youtube.com/watch?v=demo-ep-%d", 30+i),
			SpotifyURL:    "https://open.spotify.com/show/businesstalk",
			Tags:          []string{"business", "interview"},
		}
		_ = mem.CreatePodcast(ctx, &p)
	}

	blogs := []models.Blog{
		{
			Title:       "Why we started Business Talk",
			Excerpt:     "The story behind the show and what we hope to learn.",
			Content:     "<p>Business Talk began as a set of hallway conversations about how companies actually get built.</p>",
			Category:    "Announcements",
			ReadTime:    "4 min",
			IsPublished: true,
		},
		{
			Title:       "Five takeaways from our first season",
			Excerpt:     "Patterns we keep hearing from founders and operators.",
			Content:     "<p>Across the first season a handful of themes kept resurfacing.</p>",
			Category:    "Reflections",
			ReadTime:    "7 min",
			IsPublished: true,
		},
		{
			Title:    "Season two planning notes",
			Content:  "<p>Draft: guests we want, formats to try.</p>",
			Category: "Reflections",
		},
	}
	for i := range blogs {
		models.ApplyBlogDefaults(&blogs[i])
		_ = mem.CreateBlog(ctx, &blogs[i])
	}

	_, _ = mem.GetAbout(ctx)
}
