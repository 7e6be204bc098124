// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/businesstalk/backend/models"
	"github.com/businesstalk/backend/testutil"
)

func seedUpcoming(t *testing.T, b *testBackend, count int) {
	t.Helper()
	for i := 1; i <= count; i++ {
		testutil.CreateTestPodcast(t, b.src, models.CategoryUpcoming, i)
	}
}

func assertNoDuplicates(t *testing.T, items []models.Podcast) {
	t.Helper()
	seen := make(map[string]bool, len(items))
	for _, p := range items {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
}

func TestLoaderAlignedBatches(t *testing.T) {
	b := newBackend(t)
	seedUpcoming(t, b, 10)

	l := NewLoader(b.client(), models.CategoryUpcoming, "", 4, 4)
	require.NoError(t, l.LoadInitial(context.Background()))
	assert.Len(t, l.Items(), 4)
	assert.Equal(t, 10, l.Total())
	assert.True(t, l.HasMore())

	fetched, err := l.LoadMore(context.Background())
	require.NoError(t, err)
	assert.True(t, fetched)
	assert.Len(t, l.Items(), 8)

	fetched, err = l.LoadMore(context.Background())
	require.NoError(t, err)
	assert.True(t, fetched)
	assert.Len(t, l.Items(), 10)
	assert.False(t, l.HasMore())

	// Everything loaded: another call is a no-op.
	fetched, err = l.LoadMore(context.Background())
	require.NoError(t, err)
	assert.False(t, fetched)
	assert.Len(t, l.Items(), 10)

	assertNoDuplicates(t, l.Items())
}

func TestLoaderUnalignedBatches(t *testing.T) {
	b := newBackend(t)
	seedUpcoming(t, b, 10)

	// Initial window not a multiple of the batch size: growth per fetch
	// must still be exactly the batch size, with no duplicate rows.
	l := NewLoader(b.client(), models.CategoryUpcoming, "", 4, 3)
	require.NoError(t, l.LoadInitial(context.Background()))

	wantLens := []int{7, 10}
	for _, want := range wantLens {
		fetched, err := l.LoadMore(context.Background())
		require.NoError(t, err)
		assert.True(t, fetched)
		assert.Len(t, l.Items(), want)
	}
	assert.False(t, l.HasMore())
	assertNoDuplicates(t, l.Items())
}

func TestLoaderInFlightGuard(t *testing.T) {
	b := newBackend(t)
	seedUpcoming(t, b, 8)

	l := NewLoader(b.client(), models.CategoryUpcoming, "", 4, 4)
	require.NoError(t, l.LoadInitial(context.Background()))

	l.mu.Lock()
	l.loading = true
	l.mu.Unlock()

	fetched, err := l.LoadMore(context.Background())
	require.NoError(t, err)
	assert.False(t, fetched, "LoadMore must not fetch while a load is in flight")
	assert.Len(t, l.Items(), 4)

	l.mu.Lock()
	l.loading = false
	l.mu.Unlock()

	fetched, err = l.LoadMore(context.Background())
	require.NoError(t, err)
	assert.True(t, fetched)
	assert.Len(t, l.Items(), 8)
}

func TestLoadMoreFailureIsRetryable(t *testing.T) {
	b := newBackend(t)
	seedUpcoming(t, b, 8)

	l := NewLoader(b.client(), models.CategoryUpcoming, "", 4, 4)
	require.NoError(t, l.LoadInitial(context.Background()))

	b.failNext.Store(true)
	_, err := l.LoadMore(context.Background())
	require.Error(t, err)
	assert.Len(t, l.Items(), 4, "failed load must leave accumulated items intact")

	// Retrying after the failure picks up where it left off.
	fetched, err := l.LoadMore(context.Background())
	require.NoError(t, err)
	assert.True(t, fetched)
	assert.Len(t, l.Items(), 8)
}

func TestLoaderForCategoryUsesSettings(t *testing.T) {
	b := newBackend(t)

	s := models.SiteSettings{UpcomingInitial: 3, UpcomingBatch: 2, PastInitial: 5, PastBatch: 4}
	up := LoaderForCategory(b.client(), models.CategoryUpcoming, s)
	assert.Equal(t, 3, up.initial)
	assert.Equal(t, 2, up.batch)

	past := LoaderForCategory(b.client(), models.CategoryPast, s)
	assert.Equal(t, 5, past.initial)
	assert.Equal(t, 4, past.batch)
}

func TestPageViewReplaceSemantics(t *testing.T) {
	b := newBackend(t)
	seedUpcoming(t, b, 10)

	v := NewPageView(b.client(), models.CategoryUpcoming, "", 4)
	require.NoError(t, v.Goto(context.Background(), 1))
	assert.Len(t, v.Items(), 4)
	assert.Equal(t, 1, v.Page())
	assert.Equal(t, 3, v.Pages())
	assert.Equal(t, 10, v.Total())
	firstPage := v.Items()

	// Jumping replaces the rows instead of appending.
	require.NoError(t, v.Goto(context.Background(), 3))
	assert.Len(t, v.Items(), 2)
	assert.Equal(t, 3, v.Page())
	for _, row := range v.Items() {
		for _, prev := range firstPage {
			assert.NotEqual(t, prev.ID, row.ID)
		}
	}

	require.NoError(t, v.Prev(context.Background()))
	assert.Equal(t, 2, v.Page())
	assert.Len(t, v.Items(), 4)
}

func TestBlogPageViewAdminSeesDrafts(t *testing.T) {
	b := newBackend(t)
	testutil.CreateTestBlog(t, b.src, "Published", true)
	testutil.CreateTestBlog(t, b.src, "Draft", false)

	public := NewBlogPageView(b.client(), "", 10, false)
	require.NoError(t, public.Goto(context.Background(), 1))
	assert.Equal(t, 1, public.Total())

	admin := NewBlogPageView(b.adminClient(t), "", 10, true)
	require.NoError(t, admin.Goto(context.Background(), 1))
	assert.Equal(t, 2, admin.Total())
}
