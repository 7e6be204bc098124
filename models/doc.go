// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, request, and response types for the API.

# Domain Types

  - Podcast: episode with guests, schedule, links, base64 images
  - Guest: name, title, institution, optional image
  - Blog: post with draft/published flag
  - AboutUs: the single about-us document
  - SiteSettings: the four shared pagination sizes
  - User: admin account (password hash never serialized)

Podcast carries both the canonical Guests slice and the older
single-guest fields; Normalize keeps the two in sync so documents
written by earlier versions keep working.

# Validation

ValidatePodcast and ValidateBlog return a list of problems rather than
a single error so responses can name every missing field at once.
Upcoming episodes need only a title and category; past episodes also
need a description, episode number, scheduled date, and guest name.

# Envelope Types

  - Pagination: total, page, pages, limit
  - PodcastListResponse / BlogListResponse: rows plus Pagination
  - ImportReport: success, failed, per-row errors, imported rows
  - ErrorResponse: error, message

# Constants

	CategoryUpcoming = "upcoming"
	CategoryPast     = "past"
	RoleAdmin        = "admin"
	RoleUser         = "user"
*/
package models
