// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/businesstalk/backend/auth"
	"github.com/businesstalk/backend/config"
	"github.com/businesstalk/backend/models"
	"github.com/businesstalk/backend/router"
	"github.com/businesstalk/backend/store"
	"github.com/businesstalk/backend/testutil"
)

// testBackend runs the real router over an in-memory source and counts
// requests per path so tests can tell a cache hit from a refetch.
type testBackend struct {
	src      *store.Memory
	cfg      config.Config
	server   *httptest.Server
	listHits atomic.Int64
	failNext atomic.Bool
}

func newBackend(t *testing.T) *testBackend {
	t.Helper()

	cfg := testutil.GetTestConfig()
	b := &testBackend{src: testutil.SetupTestStore(t, cfg), cfg: cfg}

	mux := router.NewRouter(b.src, cfg)
	b.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if b.failNext.Swap(false) {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if r.Method == http.MethodGet && r.URL.Path == "/podcasts" {
			b.listHits.Add(1)
		}
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(b.server.Close)
	return b
}

func (b *testBackend) client() *Client {
	return NewClient(b.server.URL)
}

func (b *testBackend) adminClient(t *testing.T) *Client {
	t.Helper()

	c := b.client()
	_, err := c.Login(context.Background(), b.cfg.AdminEmail, b.cfg.AdminPassword)
	require.NoError(t, err)
	return c
}

func TestListPodcastsSoftCache(t *testing.T) {
	b := newBackend(t)
	for i := 1; i <= 3; i++ {
		testutil.CreateTestPodcast(t, b.src, models.CategoryUpcoming, i)
	}

	c := b.client()
	now := time.Now()
	c.now = func() time.Time { return now }

	params := ListParams{Category: models.CategoryUpcoming, Page: 1, Limit: 10}
	resp, err := c.ListPodcasts(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Pagination.Total)
	assert.EqualValues(t, 1, b.listHits.Load())

	// Inside the freshness window the cache answers, even though the
	// server now has more rows.
	testutil.CreateTestPodcast(t, b.src, models.CategoryUpcoming, 4)
	resp, err = c.ListPodcasts(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Pagination.Total)
	assert.EqualValues(t, 1, b.listHits.Load(), "fresh cache entry should not refetch")

	// Past the window the entry is stale and the client refetches.
	now = now.Add(CacheTTL + time.Second)
	resp, err = c.ListPodcasts(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Pagination.Total)
	assert.EqualValues(t, 2, b.listHits.Load())
}

func TestOptimisticCreateUpdatesCache(t *testing.T) {
	b := newBackend(t)
	testutil.CreateTestPodcast(t, b.src, models.CategoryUpcoming, 1)

	c := b.adminClient(t)
	params := ListParams{Category: models.CategoryUpcoming, Page: 1, Limit: 10}
	resp, err := c.ListPodcasts(context.Background(), params)
	require.NoError(t, err)
	require.Equal(t, 1, resp.Pagination.Total)
	hits := b.listHits.Load()

	created, err := c.CreatePodcast(context.Background(), &models.Podcast{
		Title:    "Optimistically visible",
		Category: models.CategoryUpcoming,
	})
	require.NoError(t, err)

	// The cached list reflects the write without another GET.
	resp, err = c.ListPodcasts(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Pagination.Total)
	assert.Equal(t, created.ID, resp.Podcasts[0].ID, "created row is prepended")
	assert.Equal(t, hits, b.listHits.Load(), "optimistic apply should not refetch")
}

func TestOptimisticDeleteUpdatesCache(t *testing.T) {
	b := newBackend(t)
	p := testutil.CreateTestPodcast(t, b.src, models.CategoryPast, 1)
	testutil.CreateTestPodcast(t, b.src, models.CategoryPast, 2)

	c := b.adminClient(t)
	params := ListParams{Category: models.CategoryPast, Page: 1, Limit: 10}
	resp, err := c.ListPodcasts(context.Background(), params)
	require.NoError(t, err)
	require.Equal(t, 2, resp.Pagination.Total)
	hits := b.listHits.Load()

	require.NoError(t, c.DeletePodcast(context.Background(), p.ID))

	resp, err = c.ListPodcasts(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Pagination.Total)
	for _, row := range resp.Podcasts {
		assert.NotEqual(t, p.ID, row.ID)
	}
	assert.Equal(t, hits, b.listHits.Load())
}

func TestRefreshAndRetryOn401(t *testing.T) {
	b := newBackend(t)
	c := b.client()

	admin, err := b.src.GetUserByEmail(context.Background(), b.cfg.AdminEmail)
	require.NoError(t, err)
	refresh, err := auth.IssueRefreshToken([]byte(b.cfg.JWTSecret), admin)
	require.NoError(t, err)

	// A dead access token plus a live refresh token: the call should
	// recover transparently.
	c.SetTokens("expired-garbage", refresh)
	me, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, b.cfg.AdminEmail, me.Email)
	assert.True(t, c.HasSession())
}

func TestSessionExpiredClearsCredentials(t *testing.T) {
	b := newBackend(t)
	c := b.client()

	c.SetTokens("expired-garbage", "also-garbage")
	_, err := c.Me(context.Background())
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.False(t, c.HasSession(), "failed refresh should clear credentials")
}

func TestAPIErrorMapping(t *testing.T) {
	b := newBackend(t)
	c := b.client()

	_, err := c.GetPodcast(context.Background(), "no-such-id")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestSettingsClientFallback(t *testing.T) {
	b := newBackend(t)
	c := b.client()

	// Live server: stored values.
	s := c.Settings(context.Background())
	assert.Equal(t, models.DefaultSettings(), s)

	// Unreachable server: local defaults instead of an error.
	b.server.Close()
	s = c.Settings(context.Background())
	assert.Equal(t, models.DefaultSettings(), s)
}
