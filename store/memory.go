// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/businesstalk/backend/models"
)

// Memory is a fully functional in-process ContentSource. It backs the
// handler and client test suites and seeds the demo fallback. Semantics
// (filtering, search, pagination, projection, sort) mirror Mongo's.
type Memory struct {
	mu       sync.RWMutex
	podcasts map[string]models.Podcast
	blogs    map[string]models.Blog
	users    map[string]models.User
	about    *models.AboutUs
	settings *models.SiteSettings
}

var _ ContentSource = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		podcasts: make(map[string]models.Podcast),
		blogs:    make(map[string]models.Blog),
		users:    make(map[string]models.User),
	}
}

func (m *Memory) Ping(ctx context.Context) error  { return nil }
func (m *Memory) Close(ctx context.Context) error { return nil }

// Podcasts

func (m *Memory) ListPodcasts(ctx context.Context, q ListQuery) ([]models.Podcast, int, error) {
	q = q.Normalized()

	m.mu.RLock()
	matched := make([]models.Podcast, 0, len(m.podcasts))
	for _, p := range m.podcasts {
		if podcastMatches(q, &p) {
			matched = append(matched, p)
		}
	}
	m.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].ScheduledDate.Equal(matched[j].ScheduledDate) {
			return matched[i].ScheduledDate.After(matched[j].ScheduledDate)
		}
		return matched[i].ID > matched[j].ID
	})

	total := len(matched)
	page := paginateSlice(len(matched), q.Skip(), q.Limit)
	items := make([]models.Podcast, 0, q.Limit)
	for _, p := range matched[page[0]:page[1]] {
		p = clonePodcast(p)
		if !q.IncludeImages {
			stripImages(&p)
		}
		items = append(items, p)
	}
	return items, total, nil
}

func (m *Memory) GetPodcast(ctx context.Context, id string) (*models.Podcast, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.podcasts[id]
	if !ok {
		return nil, ErrNotFound
	}
	p = clonePodcast(p)
	return &p, nil
}

func (m *Memory) CreatePodcast(ctx context.Context, p *models.Podcast) error {
	p.Normalize()
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Guests == nil {
		p.Guests = []models.Guest{}
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := CheckPodcastSize(p); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.podcasts[p.ID] = clonePodcast(*p)
	return nil
}

func (m *Memory) UpdatePodcast(ctx context.Context, p *models.Podcast) error {
	p.Normalize()
	p.UpdatedAt = time.Now().UTC()
	if err := CheckPodcastSize(p); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.podcasts[p.ID]; !ok {
		return ErrNotFound
	}
	m.podcasts[p.ID] = clonePodcast(*p)
	return nil
}

func (m *Memory) DeletePodcast(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.podcasts[id]; !ok {
		return ErrNotFound
	}
	delete(m.podcasts, id)
	return nil
}

func (m *Memory) PodcastExists(ctx context.Context, title string, episodeNumber int) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.podcasts {
		if p.Title == title || p.EpisodeNumber == episodeNumber {
			return true, nil
		}
	}
	return false, nil
}

func (m *Memory) RepairCategories(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	repaired := 0
	for id, p := range m.podcasts {
		want := models.CategoryUpcoming
		if p.YoutubeURL != "" {
			want = models.CategoryPast
		}
		if p.Category != want {
			p.Category = want
			m.podcasts[id] = p
			repaired++
		}
	}
	return repaired, nil
}

// Blogs

func (m *Memory) ListBlogs(ctx context.Context, q BlogQuery) ([]models.Blog, int, error) {
	q = q.Normalized()

	m.mu.RLock()
	matched := make([]models.Blog, 0, len(m.blogs))
	for _, b := range m.blogs {
		if blogMatches(q, &b) {
			matched = append(matched, b)
		}
	}
	m.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	total := len(matched)
	page := paginateSlice(len(matched), q.Skip(), q.Limit)
	items := make([]models.Blog, 0, q.Limit)
	for _, b := range matched[page[0]:page[1]] {
		items = append(items, cloneBlog(b))
	}
	return items, total, nil
}

func (m *Memory) GetBlog(ctx context.Context, id string) (*models.Blog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.blogs[id]
	if !ok {
		return nil, ErrNotFound
	}
	b = cloneBlog(b)
	return &b, nil
}

func (m *Memory) CreateBlog(ctx context.Context, b *models.Blog) error {
	if b.Tags == nil {
		b.Tags = []string{}
	}
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now

	m.mu.Lock()
	defer m.mu.Unlock()
	m.blogs[b.ID] = cloneBlog(*b)
	return nil
}

func (m *Memory) UpdateBlog(ctx context.Context, b *models.Blog) error {
	b.UpdatedAt = time.Now().UTC()

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.blogs[b.ID]; !ok {
		return ErrNotFound
	}
	m.blogs[b.ID] = cloneBlog(*b)
	return nil
}

func (m *Memory) DeleteBlog(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.blogs[id]; !ok {
		return ErrNotFound
	}
	delete(m.blogs, id)
	return nil
}

// About

func (m *Memory) GetAbout(ctx context.Context) (*models.AboutUs, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.about == nil {
		a := DefaultAbout()
		a.ID = uuid.NewString()
		a.UpdatedAt = time.Now().UTC()
		m.about = a
	}
	copied := *m.about
	return &copied, nil
}

func (m *Memory) PutAbout(ctx context.Context, a *models.AboutUs) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.about != nil {
		a.ID = m.about.ID
	} else if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.UpdatedAt = time.Now().UTC()
	copied := *a
	m.about = &copied
	return nil
}

// Settings

func (m *Memory) GetSettings(ctx context.Context) (*models.SiteSettings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.settings == nil {
		defaults := models.DefaultSettings()
		return &defaults, nil
	}
	copied := *m.settings
	return &copied, nil
}

func (m *Memory) PutSettings(ctx context.Context, s *models.SiteSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *s
	m.settings = &copied
	return nil
}

// Users

func (m *Memory) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (m *Memory) CreateUser(ctx context.Context, u *models.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.CreatedAt = time.Now().UTC()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID] = *u
	return nil
}

// Matching helpers, kept in lockstep with the Mongo filters in query.go.

func podcastMatches(q ListQuery, p *models.Podcast) bool {
	if q.Category == models.CategoryUpcoming || q.Category == models.CategoryPast {
		if p.Category != q.Category {
			return false
		}
	}
	if q.Search == "" {
		return true
	}
	term := strings.ToLower(q.Search)
	fields := []string{p.Title, p.Description,
		p.GuestName, p.GuestTitle, p.GuestInstitution}
	for _, g := range p.Guests {
		fields = append(fields, g.Name, g.Title, g.Institution)
	}
	return anyContains(fields, term)
}

func blogMatches(q BlogQuery, b *models.Blog) bool {
	if q.PublishedOnly && !b.IsPublished {
		return false
	}
	if q.Category != "" && b.Category != q.Category {
		return false
	}
	if q.Search == "" {
		return true
	}
	return anyContains([]string{b.Title, b.Excerpt, b.Content}, strings.ToLower(q.Search))
}

func anyContains(fields []string, lowerTerm string) bool {
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), lowerTerm) {
			return true
		}
	}
	return false
}

// clonePodcast detaches the slice fields so callers never share backing
// arrays with the stored document. Without this a patch decoded into a
// fetched copy would write through into the map.
func clonePodcast(p models.Podcast) models.Podcast {
	if p.Guests != nil {
		p.Guests = append([]models.Guest(nil), p.Guests...)
	}
	if p.Tags != nil {
		p.Tags = append([]string(nil), p.Tags...)
	}
	return p
}

func cloneBlog(b models.Blog) models.Blog {
	if b.Tags != nil {
		b.Tags = append([]string(nil), b.Tags...)
	}
	return b
}

func stripImages(p *models.Podcast) {
	p.ThumbnailImage = ""
	p.GuestImage = ""
	if len(p.Guests) > 0 {
		guests := make([]models.Guest, len(p.Guests))
		copy(guests, p.Guests)
		for i := range guests {
			guests[i].Image = ""
		}
		p.Guests = guests
	}
}

// paginateSlice clamps [skip, skip+limit) to the slice bounds.
func paginateSlice(n, skip, limit int) [2]int {
	if skip > n {
		skip = n
	}
	end := skip + limit
	if end > n {
		end = n
	}
	return [2]int{skip, end}
}
