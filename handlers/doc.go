// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Business Talk API.

# Handler Types

Each handler is a struct with a content source and config dependency:

  - PodcastHandler: episode CRUD, image upload, category repair
  - BlogHandler: post CRUD with draft/published visibility
  - AboutHandler: the about-us singleton
  - SettingsHandler: the shared pagination settings singleton
  - SessionHandler: login, token refresh, current user
  - ImportHandler: bulk podcast import

Handlers are created via constructor functions that accept a
store.ContentSource and Config:

	podcasts := handlers.NewPodcastHandler(src, cfg)

# Listing Protocol

List endpoints accept category, search, page, limit, and includeImages
query parameters and respond with an envelope:

	{"podcasts": [...], "pagination": {"total": 10, "page": 1, "pages": 3, "limit": 4}}

Image fields are omitted from list rows unless includeImages=true;
detail endpoints always include them.

# Updates

PUT endpoints merge partially: the request body is decoded over a copy
of the stored document, so only the supplied fields change. The merged
document is re-validated before being written back.

# Error Mapping

Store sentinels map to status codes in one place (storeError):
ErrNotFound to 404, ErrTooLarge to 413, ErrUnavailable to 503. Validation
failures return 400 with the joined problem list.

# Bulk Import

POST /import/podcasts takes a JSON array and imports best-effort:
invalid rows and duplicates (same title or episode number) are skipped
and reported per row, valid rows are created, and the report always
comes back 200. The exception is an unavailable source, which fails
the whole request with 503.
*/
package handlers
