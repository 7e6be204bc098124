// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/businesstalk/backend/models"
)

// CacheTTL is the soft freshness window: a cached list younger than this is
// served without a refetch.
const CacheTTL = 5 * time.Minute

// ErrSessionExpired is returned when a 401 could not be recovered by the
// automatic refresh; stored credentials are cleared and the caller should
// send the user back to the login view.
var ErrSessionExpired = errors.New("session expired")

// APIError is a non-2xx response decoded into the server's error body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// ListParams mirror the server's list query parameters.
type ListParams struct {
	Category      string
	Search        string
	Page          int
	Limit         int
	IncludeImages bool
}

func (p ListParams) values() url.Values {
	v := url.Values{}
	if p.Category != "" {
		v.Set("category", p.Category)
	}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.IncludeImages {
		v.Set("includeImages", "true")
	}
	return v
}

type cachedPodcastList struct {
	fetchedAt time.Time
	params    ListParams
	resp      models.PodcastListResponse
}

type cachedBlogList struct {
	fetchedAt time.Time
	resp      models.BlogListResponse
}

// Client is the typed wrapper over the Business Talk API: request helpers,
// bearer auth with a single automatic refresh-and-retry, a soft in-memory
// cache of list responses, and optimistic local mutation after writes.
type Client struct {
	baseURL string
	http    *http.Client
	now     func() time.Time

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	podcastLists map[string]cachedPodcastList
	blogLists    map[string]cachedBlogList
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:      baseURL,
		http:         &http.Client{Timeout: 30 * time.Second},
		now:          time.Now,
		podcastLists: make(map[string]cachedPodcastList),
		blogLists:    make(map[string]cachedBlogList),
	}
}

// SetTokens installs credentials obtained out of band (e.g. persisted from
// a previous session).
func (c *Client) SetTokens(access, refresh string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = access
	c.refreshToken = refresh
}

// HasSession reports whether credentials are currently held.
func (c *Client) HasSession() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken != ""
}

// Authentication

func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil,
		models.LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	c.SetTokens(resp.AccessToken, resp.RefreshToken)
	return &resp, nil
}

// Logout drops credentials client-side; the server keeps no session state.
func (c *Client) Logout() {
	c.SetTokens("", "")
}

func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Podcasts

// ListPodcasts serves from the cache while the entry is inside the
// freshness window, otherwise fetches and caches.
func (c *Client) ListPodcasts(ctx context.Context, p ListParams) (*models.PodcastListResponse, error) {
	key := "podcasts?" + p.values().Encode()

	c.mu.Lock()
	entry, ok := c.podcastLists[key]
	fresh := ok && c.now().Sub(entry.fetchedAt) < CacheTTL
	c.mu.Unlock()
	if fresh {
		resp := entry.resp
		return &resp, nil
	}

	var resp models.PodcastListResponse
	if err := c.do(ctx, http.MethodGet, "/podcasts", p.values(), nil, &resp); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.podcastLists[key] = cachedPodcastList{fetchedAt: c.now(), params: p, resp: resp}
	c.mu.Unlock()
	return &resp, nil
}

func (c *Client) GetPodcast(ctx context.Context, id string) (*models.Podcast, error) {
	var p models.Podcast
	if err := c.do(ctx, http.MethodGet, "/podcasts/"+url.PathEscape(id), nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreatePodcast(ctx context.Context, p *models.Podcast) (*models.Podcast, error) {
	var created models.Podcast
	if err := c.do(ctx, http.MethodPost, "/podcasts", nil, p, &created); err != nil {
		return nil, err
	}
	c.applyPodcastCreate(created)
	return &created, nil
}

// UpdatePodcast sends a partial patch; only the supplied fields change.
func (c *Client) UpdatePodcast(ctx context.Context, id string, patch map[string]any) (*models.Podcast, error) {
	var updated models.Podcast
	if err := c.do(ctx, http.MethodPut, "/podcasts/"+url.PathEscape(id), nil, patch, &updated); err != nil {
		return nil, err
	}
	c.applyPodcastUpdate(updated)
	return &updated, nil
}

func (c *Client) DeletePodcast(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/podcasts/"+url.PathEscape(id), nil, nil, nil); err != nil {
		return err
	}
	c.applyPodcastDelete(id)
	return nil
}

func (c *Client) RepairCategories(ctx context.Context) (*models.RepairResponse, error) {
	var resp models.RepairResponse
	if err := c.do(ctx, http.MethodPost, "/podcasts/repair-categories", nil, nil, &resp); err != nil {
		return nil, err
	}
	c.invalidatePodcasts()
	return &resp, nil
}

func (c *Client) ImportPodcasts(ctx context.Context, rows []models.Podcast) (*models.ImportReport, error) {
	var report models.ImportReport
	if err := c.do(ctx, http.MethodPost, "/import/podcasts", nil, rows, &report); err != nil {
		return nil, err
	}
	c.invalidatePodcasts()
	return &report, nil
}

// Blogs

func (c *Client) ListBlogs(ctx context.Context, p ListParams) (*models.BlogListResponse, error) {
	return c.listBlogs(ctx, "/blogs", p)
}

// AdminListBlogs includes drafts; requires an admin session.
func (c *Client) AdminListBlogs(ctx context.Context, p ListParams) (*models.BlogListResponse, error) {
	return c.listBlogs(ctx, "/blogs/admin/all", p)
}

func (c *Client) listBlogs(ctx context.Context, path string, p ListParams) (*models.BlogListResponse, error) {
	key := path + "?" + p.values().Encode()

	c.mu.Lock()
	entry, ok := c.blogLists[key]
	fresh := ok && c.now().Sub(entry.fetchedAt) < CacheTTL
	c.mu.Unlock()
	if fresh {
		resp := entry.resp
		return &resp, nil
	}

	var resp models.BlogListResponse
	if err := c.do(ctx, http.MethodGet, path, p.values(), nil, &resp); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.blogLists[key] = cachedBlogList{fetchedAt: c.now(), resp: resp}
	c.mu.Unlock()
	return &resp, nil
}

func (c *Client) GetBlog(ctx context.Context, id string) (*models.Blog, error) {
	var b models.Blog
	if err := c.do(ctx, http.MethodGet, "/blogs/"+url.PathEscape(id), nil, nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) AdminGetBlog(ctx context.Context, id string) (*models.Blog, error) {
	var b models.Blog
	if err := c.do(ctx, http.MethodGet, "/blogs/admin/"+url.PathEscape(id), nil, nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) CreateBlog(ctx context.Context, b *models.Blog) (*models.Blog, error) {
	var created models.Blog
	if err := c.do(ctx, http.MethodPost, "/blogs", nil, b, &created); err != nil {
		return nil, err
	}
	c.invalidateBlogs()
	return &created, nil
}

func (c *Client) UpdateBlog(ctx context.Context, id string, patch map[string]any) (*models.Blog, error) {
	var updated models.Blog
	if err := c.do(ctx, http.MethodPut, "/blogs/"+url.PathEscape(id), nil, patch, &updated); err != nil {
		return nil, err
	}
	c.invalidateBlogs()
	return &updated, nil
}

func (c *Client) DeleteBlog(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/blogs/"+url.PathEscape(id), nil, nil, nil); err != nil {
		return err
	}
	c.invalidateBlogs()
	return nil
}

// About and settings

func (c *Client) GetAbout(ctx context.Context) (*models.AboutUs, error) {
	var a models.AboutUs
	if err := c.do(ctx, http.MethodGet, "/about", nil, nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) PutAbout(ctx context.Context, a *models.AboutUs) (*models.AboutUs, error) {
	var saved models.AboutUs
	if err := c.do(ctx, http.MethodPut, "/about", nil, a, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (c *Client) GetSettings(ctx context.Context) (*models.SiteSettings, error) {
	var s models.SiteSettings
	if err := c.do(ctx, http.MethodGet, "/settings", nil, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Settings returns the shared pagination sizes, falling back to the local
// defaults when the server cannot be reached.
func (c *Client) Settings(ctx context.Context) models.SiteSettings {
	s, err := c.GetSettings(ctx)
	if err != nil {
		return models.DefaultSettings()
	}
	return *s
}

func (c *Client) PutSettings(ctx context.Context, s *models.SiteSettings) (*models.SiteSettings, error) {
	var saved models.SiteSettings
	if err := c.do(ctx, http.MethodPut, "/settings", nil, s, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// Optimistic cache mutation: a successful write is folded into cached
// lists so surfaces update without a full refetch.

func (c *Client) applyPodcastCreate(p models.Podcast) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, entry := range c.podcastLists {
		if entry.params.Search != "" {
			delete(c.podcastLists, key)
			continue
		}
		if entry.params.Category != "" && entry.params.Category != p.Category {
			continue
		}
		entry.resp.Podcasts = append([]models.Podcast{p}, entry.resp.Podcasts...)
		entry.resp.Pagination.Total++
		c.podcastLists[key] = entry
	}
}

func (c *Client) applyPodcastUpdate(p models.Podcast) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, entry := range c.podcastLists {
		for i := range entry.resp.Podcasts {
			if entry.resp.Podcasts[i].ID == p.ID {
				entry.resp.Podcasts[i] = p
				c.podcastLists[key] = entry
				break
			}
		}
	}
}

func (c *Client) applyPodcastDelete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, entry := range c.podcastLists {
		for i := range entry.resp.Podcasts {
			if entry.resp.Podcasts[i].ID == id {
				entry.resp.Podcasts = append(entry.resp.Podcasts[:i], entry.resp.Podcasts[i+1:]...)
				entry.resp.Pagination.Total--
				c.podcastLists[key] = entry
				break
			}
		}
	}
}

func (c *Client) invalidatePodcasts() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.podcastLists = make(map[string]cachedPodcastList)
}

func (c *Client) invalidateBlogs() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.blogLists = make(map[string]cachedBlogList)
}

// Transport

// do executes a request with bearer auth. On 401 it attempts one refresh
// and retries; if that fails too, credentials are cleared and
// ErrSessionExpired is returned.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	status, err := c.send(ctx, method, path, query, payload, out)
	if err != nil {
		return err
	}
	if status != http.StatusUnauthorized {
		return nil
	}

	c.mu.Lock()
	refreshToken := c.refreshToken
	c.mu.Unlock()
	if refreshToken == "" {
		return &APIError{Status: http.StatusUnauthorized, Message: "unauthorized"}
	}
	if err := c.refresh(ctx, refreshToken); err != nil {
		c.Logout()
		return ErrSessionExpired
	}

	status, err = c.send(ctx, method, path, query, payload, out)
	if err != nil {
		return err
	}
	if status == http.StatusUnauthorized {
		c.Logout()
		return ErrSessionExpired
	}
	return nil
}

// send performs one HTTP round trip. A 401 is reported via the status
// return so the caller can decide to refresh; other error statuses are
// decoded into APIError.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, payload []byte, out any) (int, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var bodyReader *bytes.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.mu.Lock()
	token := c.accessToken
	c.mu.Unlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return resp.StatusCode, nil
	}
	if resp.StatusCode >= 400 {
		var apiErr models.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		msg := apiErr.Message
		if msg == "" {
			msg = apiErr.Error
		}
		return resp.StatusCode, &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

func (c *Client) refresh(ctx context.Context, refreshToken string) error {
	payload, err := json.Marshal(models.RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return err
	}

	var resp models.RefreshResponse
	status, err := c.send(ctx, http.MethodPost, "/auth/refresh", nil, payload, &resp)
	if err != nil {
		return err
	}
	if status == http.StatusUnauthorized || resp.AccessToken == "" {
		return ErrSessionExpired
	}

	c.mu.Lock()
	c.accessToken = resp.AccessToken
	c.mu.Unlock()
	return nil
}
