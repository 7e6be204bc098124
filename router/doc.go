// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Business Talk API.

# Route Registration

NewRouter creates a configured chi.Mux with all endpoints:

	mux := router.NewRouter(src, cfg)

# Endpoints

Health:

	GET /health

Podcasts (public):

	GET /podcasts       - Paginated list (category, search, page, limit, includeImages)
	GET /podcasts/{id}  - Full episode with images

Podcasts (admin, bearer token):

	POST   /podcasts                    - Create episode
	PUT    /podcasts/{id}               - Partial update
	DELETE /podcasts/{id}               - Delete episode
	POST   /podcasts/upload             - Compress an image to a data URI
	POST   /podcasts/repair-categories  - Re-derive categories from recording links

Blogs:

	GET    /blogs                - Published posts
	GET    /blogs/{id}           - Published post detail
	GET    /blogs/admin/all      - All posts including drafts (admin)
	GET    /blogs/admin/{id}     - Any post (admin)
	POST   /blogs                - Create (admin)
	PUT    /blogs/{id}           - Partial update (admin)
	DELETE /blogs/{id}           - Delete (admin)

Singletons:

	GET /about     - About-us content (public)
	PUT /about     - Replace about-us (admin)
	GET /settings  - Pagination sizes (public)
	PUT /settings  - Replace pagination sizes (admin)

Import (admin):

	POST /import/podcasts - Bulk import, per-row report

Auth (rate limited to 5/minute per IP):

	POST /auth/login   - Issue access and refresh tokens
	POST /auth/refresh - New access token from a refresh token
	GET  /auth/me      - Current user (bearer token)

# Middleware Stack

RequestID, RealIP, request logging, panic recovery, and CORS apply to
everything; admin groups add RequireAuth and RequireAdmin.
*/
package router
