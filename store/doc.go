// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store defines the ContentSource interface and its implementations.

# ContentSource

All persistence goes through one interface so handlers never know which
backend serves them:

	src, err := store.NewMongo(ctx, uri, dbName)   // live MongoDB
	src := store.NewMemory()                        // in-process, full fidelity
	src := store.NewDemo()                          // seeded, read-only

The implementation is chosen once at startup. Demo wraps Memory with all
write operations returning ErrUnavailable, which handlers map to 503.

# Sentinel Errors

	ErrNotFound     handlers answer 404
	ErrTooLarge     handlers answer 413 (podcast over MaxPodcastBytes when BSON-encoded)
	ErrUnavailable  handlers answer 503 (demo mode writes)

Callers match with errors.Is; anything else is an internal error.

# List Queries

ListQuery and BlogQuery normalize paging (page ≥ 1, default limit 50),
restrict category filters to the two known values, and build a
case-insensitive substring search across the text fields. Unless
IncludeImages is set, list projections exclude the base64 image fields
to keep list payloads small; detail reads always include them.

# Pagination

Paginate computes the envelope from an independently counted total:

	store.Paginate(total, page, limit)  // {total, page, pages, limit}

pages is ceil(total/limit).
*/
package store
