// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Podcast category constants
const (
	CategoryUpcoming = "upcoming"
	CategoryPast     = "past"
)

// User role constants
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// DefaultAuthor is used for blogs created without an explicit author.
const DefaultAuthor = "Business Talk"

// DefaultBlogImage is the placeholder cover used when a blog has no image.
const DefaultBlogImage = "/images/blog-placeholder.jpg"

// Domain types

// Guest describes one podcast guest. The first entry of a podcast's Guests
// slice is mirrored into the legacy guest fields on the wire so older
// consumers keep working.
type Guest struct {
	Name        string `bson:"name" json:"name"`
	Title       string `bson:"title,omitempty" json:"title,omitempty"`
	Institution string `bson:"institution,omitempty" json:"institution,omitempty"`
	Image       string `bson:"image,omitempty" json:"image,omitempty"`
}

type Podcast struct {
	ID          string  `bson:"_id,omitempty" json:"id"`
	Title       string  `bson:"title" json:"title"`
	Description string  `bson:"description" json:"description"`
	Category    string  `bson:"category" json:"category"`
	Guests      []Guest `bson:"guests" json:"guests"`

	// Legacy single-guest mirror, populated from Guests[0].
	GuestName        string `bson:"guestName,omitempty" json:"guestName,omitempty"`
	GuestTitle       string `bson:"guestTitle,omitempty" json:"guestTitle,omitempty"`
	GuestInstitution string `bson:"guestInstitution,omitempty" json:"guestInstitution,omitempty"`
	GuestImage       string `bson:"guestImage,omitempty" json:"guestImage,omitempty"`

	EpisodeNumber int       `bson:"episodeNumber" json:"episodeNumber"`
	ScheduledDate time.Time `bson:"scheduledDate" json:"scheduledDate"`
	ScheduledTime string    `bson:"scheduledTime,omitempty" json:"scheduledTime,omitempty"`

	YoutubeURL    string `bson:"youtubeUrl,omitempty" json:"youtubeUrl,omitempty"`
	SpotifyURL    string `bson:"spotifyUrl,omitempty" json:"spotifyUrl,omitempty"`
	AppleURL      string `bson:"appleUrl,omitempty" json:"appleUrl,omitempty"`
	AmazonURL     string `bson:"amazonUrl,omitempty" json:"amazonUrl,omitempty"`
	AudibleURL    string `bson:"audibleUrl,omitempty" json:"audibleUrl,omitempty"`
	SoundcloudURL string `bson:"soundcloudUrl,omitempty" json:"soundcloudUrl,omitempty"`

	// ThumbnailImage is either a URL or an inline data URI. Inline images can
	// run to low megabytes, which is why list queries project them out.
	ThumbnailImage string `bson:"thumbnailImage,omitempty" json:"thumbnailImage,omitempty"`

	Tags          []string  `bson:"tags" json:"tags"`
	IsRescheduled bool      `bson:"isRescheduled" json:"isRescheduled"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PrimaryGuest returns the first guest, falling back to the legacy fields
// for documents written before Guests existed.
func (p *Podcast) PrimaryGuest() Guest {
	if len(p.Guests) > 0 {
		return p.Guests[0]
	}
	return Guest{
		Name:        p.GuestName,
		Title:       p.GuestTitle,
		Institution: p.GuestInstitution,
		Image:       p.GuestImage,
	}
}

// Normalize reconciles the canonical Guests slice with the legacy mirror
// fields. Legacy-only input is lifted into Guests; the mirror is then
// rewritten from Guests[0].
func (p *Podcast) Normalize() {
	if len(p.Guests) == 0 && p.GuestName != "" {
		p.Guests = []Guest{{
			Name:        p.GuestName,
			Title:       p.GuestTitle,
			Institution: p.GuestInstitution,
			Image:       p.GuestImage,
		}}
	}
	if len(p.Guests) > 0 {
		p.GuestName = p.Guests[0].Name
		p.GuestTitle = p.Guests[0].Title
		p.GuestInstitution = p.Guests[0].Institution
		p.GuestImage = p.Guests[0].Image
	}
}

type Blog struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Excerpt     string    `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Content     string    `bson:"content" json:"content"`
	Author      string    `bson:"author" json:"author"`
	Category    string    `bson:"category" json:"category"`
	Image       string    `bson:"image" json:"image"`
	ReadTime    string    `bson:"readTime,omitempty" json:"readTime,omitempty"`
	Tags        []string  `bson:"tags" json:"tags"`
	IsPublished bool      `bson:"isPublished" json:"isPublished"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AboutUs is a singleton document; the store lazily creates it with
// default content on first read.
type AboutUs struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	Title      string    `bson:"title" json:"title"`
	Paragraphs []string  `bson:"paragraphs" json:"paragraphs"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Name         string    `bson:"name" json:"name"`
	Role         string    `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// SiteSettings holds the pagination sizes consumed by list surfaces.
// Persisted server-side so every client observes the same values.
type SiteSettings struct {
	ID              string `bson:"_id,omitempty" json:"-"`
	UpcomingInitial int    `bson:"upcomingInitial" json:"upcomingInitial"`
	UpcomingBatch   int    `bson:"upcomingBatch" json:"upcomingBatch"`
	PastInitial     int    `bson:"pastInitial" json:"pastInitial"`
	PastBatch       int    `bson:"pastBatch" json:"pastBatch"`
}

// DefaultSettings returns the values used before an admin has saved any,
// and the client-local fallback when the settings fetch fails.
func DefaultSettings() SiteSettings {
	return SiteSettings{
		UpcomingInitial: 4,
		UpcomingBatch:   4,
		PastInitial:     6,
		PastBatch:       6,
	}
}

// Response envelopes

type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Limit int `json:"limit"`
}

type PodcastListResponse struct {
	Podcasts   []Podcast  `json:"podcasts"`
	Pagination Pagination `json:"pagination"`
}

type BlogListResponse struct {
	Blogs      []Blog     `json:"blogs"`
	Pagination Pagination `json:"pagination"`
}

// ImportReport is the per-row outcome of a bulk podcast import. The import
// is best-effort: a bad row lands in Errors, it never fails the batch.
type ImportReport struct {
	Success  int      `json:"success"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors"`
	Imported []string `json:"imported"`
}

type UploadResponse struct {
	Image string `json:"image"`
}

type RepairResponse struct {
	Repaired int `json:"repaired"`
}

// Request/response types for authentication

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
