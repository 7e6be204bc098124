// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"strings"
	"testing"
	"time"
)

func completePast() Podcast {
	return Podcast{
		Title:         "Episode 12",
		Description:   "A finished conversation",
		Category:      CategoryPast,
		EpisodeNumber: 12,
		ScheduledDate: time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC),
		Guests:        []Guest{{Name: "Ada"}},
	}
}

func TestValidatePodcastByCategory(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Podcast)
		problems []string
	}{
		{"complete past episode", func(p *Podcast) {}, nil},
		{"past without description", func(p *Podcast) { p.Description = "" }, []string{"description"}},
		{"past without episode number", func(p *Podcast) { p.EpisodeNumber = 0 }, []string{"episodeNumber"}},
		{"past without date", func(p *Podcast) { p.ScheduledDate = time.Time{} }, []string{"scheduledDate"}},
		{"past without guest", func(p *Podcast) { p.Guests = nil }, []string{"guest"}},
		{"no title", func(p *Podcast) { p.Title = "  " }, []string{"title"}},
		{"bad category", func(p *Podcast) { p.Category = "archived" }, []string{"category"}},
		{
			"sparse upcoming is fine",
			func(p *Podcast) {
				*p = Podcast{Title: "Placeholder", Category: CategoryUpcoming}
			},
			nil,
		},
		{
			"past missing everything reports every field",
			func(p *Podcast) {
				*p = Podcast{Category: CategoryPast}
			},
			[]string{"title", "description", "episodeNumber", "scheduledDate", "guest"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := completePast()
			tt.mutate(&p)

			problems := ValidatePodcast(&p)
			if len(problems) != len(tt.problems) {
				t.Fatalf("got %d problems %v, want %d", len(problems), problems, len(tt.problems))
			}
			for i, substr := range tt.problems {
				if !strings.Contains(problems[i], substr) {
					t.Errorf("problems[%d] = %q, want mention of %q", i, problems[i], substr)
				}
			}
		})
	}
}

func TestPodcastNormalizeLegacyMirror(t *testing.T) {
	// Legacy-only input is lifted into Guests.
	legacy := Podcast{
		Title:            "Old document",
		GuestName:        "Grace",
		GuestTitle:       "CTO",
		GuestInstitution: "Hopper Labs",
	}
	legacy.Normalize()
	if len(legacy.Guests) != 1 {
		t.Fatalf("Guests = %v, want one lifted entry", legacy.Guests)
	}
	if legacy.Guests[0].Name != "Grace" || legacy.Guests[0].Institution != "Hopper Labs" {
		t.Errorf("lifted guest = %+v", legacy.Guests[0])
	}

	// Canonical input rewrites the mirror.
	canonical := Podcast{
		Title:     "New document",
		Guests:    []Guest{{Name: "Alan", Title: "Founder"}, {Name: "Second"}},
		GuestName: "Stale",
	}
	canonical.Normalize()
	if canonical.GuestName != "Alan" || canonical.GuestTitle != "Founder" {
		t.Errorf("mirror = %q/%q, want Guests[0]", canonical.GuestName, canonical.GuestTitle)
	}
}

func TestPrimaryGuestFallback(t *testing.T) {
	p := Podcast{GuestName: "Only Legacy"}
	if got := p.PrimaryGuest().Name; got != "Only Legacy" {
		t.Errorf("PrimaryGuest() = %q", got)
	}

	p = Podcast{Guests: []Guest{{Name: "Canonical"}}, GuestName: "Legacy"}
	if got := p.PrimaryGuest().Name; got != "Canonical" {
		t.Errorf("PrimaryGuest() = %q, want the canonical entry", got)
	}
}

func TestApplyBlogDefaults(t *testing.T) {
	b := Blog{Title: "No extras", Content: "body", Category: "Business"}
	ApplyBlogDefaults(&b)

	if b.Author != DefaultAuthor {
		t.Errorf("Author = %q, want %q", b.Author, DefaultAuthor)
	}
	if b.Image != DefaultBlogImage {
		t.Errorf("Image = %q, want placeholder", b.Image)
	}
	if b.Tags == nil {
		t.Error("Tags not defaulted to an empty slice")
	}
	if b.IsPublished {
		t.Error("defaults must not publish a draft")
	}

	// Explicit values survive.
	b = Blog{Title: "Has author", Content: "body", Category: "Business", Author: "Guest Writer"}
	ApplyBlogDefaults(&b)
	if b.Author != "Guest Writer" {
		t.Errorf("Author = %q, want the explicit value", b.Author)
	}
}

func TestValidateSettings(t *testing.T) {
	good := DefaultSettings()
	if problems := ValidateSettings(&good); len(problems) != 0 {
		t.Errorf("defaults invalid: %v", problems)
	}

	bad := SiteSettings{UpcomingInitial: 4, UpcomingBatch: 0, PastInitial: -2, PastBatch: 6}
	problems := ValidateSettings(&bad)
	if len(problems) != 2 {
		t.Errorf("problems = %v, want 2 entries", problems)
	}
}
