// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client is the typed Go client for the Business Talk API.

# Sessions

Login stores both tokens on the client; every request carries the
access token. On a 401 the client refreshes once and retries; if the
refresh also fails, credentials are cleared and ErrSessionExpired is
returned so the caller can prompt for login again.

	c := client.NewClient("https://api.example.com")
	_, err := c.Login(ctx, email, password)

# Soft Cache

List responses are cached per exact query for CacheTTL (5 minutes).
Successful writes fold into the cached lists optimistically (create
prepends, update replaces, delete removes and adjusts the total)
instead of forcing a refetch.

# Incremental Loading

Loader accumulates an append-mode surface: an initial window, then
batches until the server total is reached.

	l := client.LoaderForCategory(c, models.CategoryUpcoming, c.Settings(ctx))
	err := l.LoadInitial(ctx)
	for l.HasMore() {
		if _, err := l.LoadMore(ctx); err != nil {
			break // items stay intact; LoadMore can be retried
		}
	}

At most one load runs at a time; concurrent LoadMore calls return
false without fetching.

# Admin Tables

PageView and BlogPageView replace rows on each Goto(page) instead of
appending, for jump-to-page tables.
*/
package client
