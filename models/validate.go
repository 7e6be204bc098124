// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "strings"

// ValidatePodcast returns the list of field problems for a podcast write.
//
// Requirements depend on the category: an upcoming episode is often a
// placeholder created before recording, so only the basics are required.
// A past episode has actually happened and needs complete metadata.
func ValidatePodcast(p *Podcast) []string {
	var problems []string

	if strings.TrimSpace(p.Title) == "" {
		problems = append(problems, "title is required")
	}
	switch p.Category {
	case CategoryUpcoming:
		// Placeholder rows are allowed to be sparse.
	case CategoryPast:
		if strings.TrimSpace(p.Description) == "" {
			problems = append(problems, "description is required for past episodes")
		}
		if p.EpisodeNumber <= 0 {
			problems = append(problems, "episodeNumber is required for past episodes")
		}
		if p.ScheduledDate.IsZero() {
			problems = append(problems, "scheduledDate is required for past episodes")
		}
		if p.PrimaryGuest().Name == "" {
			problems = append(problems, "guest name is required for past episodes")
		}
	default:
		problems = append(problems, "category must be \"upcoming\" or \"past\"")
	}

	return problems
}

// ValidateBlog returns the list of field problems for a blog write.
func ValidateBlog(b *Blog) []string {
	var problems []string

	if strings.TrimSpace(b.Title) == "" {
		problems = append(problems, "title is required")
	}
	if strings.TrimSpace(b.Content) == "" {
		problems = append(problems, "content is required")
	}
	if strings.TrimSpace(b.Category) == "" {
		problems = append(problems, "category is required")
	}

	return problems
}

// ApplyBlogDefaults fills the draft-first defaults for a newly created blog.
func ApplyBlogDefaults(b *Blog) {
	if strings.TrimSpace(b.Author) == "" {
		b.Author = DefaultAuthor
	}
	if strings.TrimSpace(b.Image) == "" {
		b.Image = DefaultBlogImage
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}
}

// ValidateSettings checks pagination sizes; every value must be a positive
// integer or list surfaces would never load anything.
func ValidateSettings(s *SiteSettings) []string {
	var problems []string

	if s.UpcomingInitial <= 0 {
		problems = append(problems, "upcomingInitial must be positive")
	}
	if s.UpcomingBatch <= 0 {
		problems = append(problems, "upcomingBatch must be positive")
	}
	if s.PastInitial <= 0 {
		problems = append(problems, "pastInitial must be positive")
	}
	if s.PastBatch <= 0 {
		problems = append(problems, "pastBatch must be positive")
	}

	return problems
}
