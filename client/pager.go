// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"sync"

	"github.com/businesstalk/backend/models"
)

// Loader drives an append-mode list surface: an initial window of
// InitialSize items, then LoadMore batches of BatchSize until the server's
// total is reached. A failed load leaves accumulated items intact and can
// be retried.
type Loader struct {
	client   *Client
	category string
	search   string
	initial  int
	batch    int

	mu      sync.Mutex
	items   []models.Podcast
	seen    map[string]bool
	total   int
	loaded  bool
	loading bool
}

func NewLoader(c *Client, category, search string, initialSize, batchSize int) *Loader {
	if initialSize <= 0 {
		initialSize = batchSize
	}
	if batchSize <= 0 {
		batchSize = initialSize
	}
	return &Loader{
		client:   c,
		category: category,
		search:   search,
		initial:  initialSize,
		batch:    batchSize,
		seen:     make(map[string]bool),
	}
}

// LoaderForCategory picks the surface's sizes from the shared settings.
func LoaderForCategory(c *Client, category string, s models.SiteSettings) *Loader {
	switch category {
	case models.CategoryPast:
		return NewLoader(c, category, "", s.PastInitial, s.PastBatch)
	default:
		return NewLoader(c, category, "", s.UpcomingInitial, s.UpcomingBatch)
	}
}

// LoadInitial fetches the first window. Calling it again resets the
// accumulated items.
func (l *Loader) LoadInitial(ctx context.Context) error {
	l.mu.Lock()
	if l.loading {
		l.mu.Unlock()
		return nil
	}
	l.loading = true
	l.mu.Unlock()

	resp, err := l.client.ListPodcasts(ctx, ListParams{
		Category: l.category,
		Search:   l.search,
		Page:     1,
		Limit:    l.initial,
	})

	l.mu.Lock()
	defer l.mu.Unlock()
	l.loading = false
	if err != nil {
		return err
	}
	l.items = l.items[:0]
	l.seen = make(map[string]bool)
	for _, p := range resp.Podcasts {
		l.items = append(l.items, p)
		l.seen[p.ID] = true
	}
	l.total = resp.Pagination.Total
	l.loaded = true
	return nil
}

// LoadMore fetches the next batch and appends it. It returns false without
// fetching when a load is already in flight or everything is loaded.
func (l *Loader) LoadMore(ctx context.Context) (bool, error) {
	l.mu.Lock()
	if l.loading || !l.loaded || len(l.items) >= l.total {
		l.mu.Unlock()
		return false, nil
	}
	l.loading = true
	params := l.nextParams()
	l.mu.Unlock()

	resp, err := l.client.ListPodcasts(ctx, params)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.loading = false
	if err != nil {
		return false, err
	}
	for _, p := range resp.Podcasts {
		if l.seen[p.ID] {
			continue
		}
		l.items = append(l.items, p)
		l.seen[p.ID] = true
	}
	l.total = resp.Pagination.Total
	return true, nil
}

// nextParams picks the request window that starts right after the loaded
// items. When the offset lines up with the batch size a single batch-sized
// page covers it; otherwise the window is widened to page one so no row is
// skipped, and the overlap is dropped on append. Callers hold l.mu.
func (l *Loader) nextParams() ListParams {
	offset := len(l.items)
	if offset%l.batch == 0 {
		return ListParams{
			Category: l.category,
			Search:   l.search,
			Page:     offset/l.batch + 1,
			Limit:    l.batch,
		}
	}
	return ListParams{
		Category: l.category,
		Search:   l.search,
		Page:     1,
		Limit:    offset + l.batch,
	}
}

// Items returns a copy of the accumulated rows.
func (l *Loader) Items() []models.Podcast {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Podcast, len(l.items))
	copy(out, l.items)
	return out
}

func (l *Loader) Total() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.total
}

// HasMore reports whether the server still has rows beyond what is loaded.
func (l *Loader) HasMore() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded && len(l.items) < l.total
}

// PageView drives a jump-to-page admin table over podcasts: each Goto
// replaces the rows instead of appending.
type PageView struct {
	client   *Client
	category string
	search   string
	size     int

	mu    sync.Mutex
	page  int
	pages int
	total int
	items []models.Podcast
}

func NewPageView(c *Client, category, search string, pageSize int) *PageView {
	if pageSize <= 0 {
		pageSize = models.DefaultSettings().PastBatch
	}
	return &PageView{client: c, category: category, search: search, size: pageSize}
}

func (v *PageView) Goto(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	resp, err := v.client.ListPodcasts(ctx, ListParams{
		Category: v.category,
		Search:   v.search,
		Page:     page,
		Limit:    v.size,
	})
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.items = resp.Podcasts
	v.page = page
	v.total = resp.Pagination.Total
	v.pages = resp.Pagination.Pages
	return nil
}

func (v *PageView) Next(ctx context.Context) error {
	v.mu.Lock()
	page := v.page + 1
	if v.pages > 0 && page > v.pages {
		page = v.pages
	}
	v.mu.Unlock()
	return v.Goto(ctx, page)
}

func (v *PageView) Prev(ctx context.Context) error {
	v.mu.Lock()
	page := v.page - 1
	v.mu.Unlock()
	return v.Goto(ctx, page)
}

func (v *PageView) Items() []models.Podcast {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]models.Podcast, len(v.items))
	copy(out, v.items)
	return out
}

func (v *PageView) Page() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page
}

func (v *PageView) Pages() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pages
}

func (v *PageView) Total() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.total
}

// BlogPageView is the blog counterpart of PageView, used by the admin
// table which also sees drafts.
type BlogPageView struct {
	client *Client
	search string
	size   int
	admin  bool

	mu    sync.Mutex
	page  int
	pages int
	total int
	items []models.Blog
}

func NewBlogPageView(c *Client, search string, pageSize int, admin bool) *BlogPageView {
	if pageSize <= 0 {
		pageSize = models.DefaultSettings().PastBatch
	}
	return &BlogPageView{client: c, search: search, size: pageSize, admin: admin}
}

func (v *BlogPageView) Goto(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	params := ListParams{Search: v.search, Page: page, Limit: v.size}

	var (
		resp *models.BlogListResponse
		err  error
	)
	if v.admin {
		resp, err = v.client.AdminListBlogs(ctx, params)
	} else {
		resp, err = v.client.ListBlogs(ctx, params)
	}
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.items = resp.Blogs
	v.page = page
	v.total = resp.Pagination.Total
	v.pages = resp.Pagination.Pages
	return nil
}

func (v *BlogPageView) Items() []models.Blog {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]models.Blog, len(v.items))
	copy(out, v.items)
	return out
}

func (v *BlogPageView) Page() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page
}

func (v *BlogPageView) Total() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.total
}
