// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Business Talk API server.

Business Talk is the backend for a podcast and blog promotional site:
podcast episodes (upcoming and past), blog posts, an about-us page, and
shared pagination settings, managed by a single admin account.

# Starting the Server

The server reads environment variables (optionally from a .env file) or
CLI flags:

	MONGODB_URI=mongodb://... JWT_SECRET=... ADMIN_EMAIL=... ADMIN_PASSWORD=... go run main.go

Or with flags:

	go run main.go -p 5000 -m "mongodb://localhost:27017"

# Configuration

Required settings:

  - JWT_SECRET (--jwt-secret): HMAC secret for signing tokens
  - ADMIN_EMAIL (--admin-email): Admin account email
  - ADMIN_PASSWORD (--admin-password): Admin account password

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - MONGODB_URI (-m): MongoDB connection string; when empty or
    unreachable the server starts in demo mode with seeded sample data
  - DB_NAME (--db-name): Database name (default: businesstalk)
  - ADMIN_NAME (--admin-name): Admin display name
  - CORS_ALLOWED_ORIGINS: Comma-separated allowed origins (default: *)

# Demo Mode

When the database cannot be reached at startup the server falls back to
an in-memory source seeded with sample content. Reads work normally;
writes return 503 Service Unavailable.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (podcasts, blogs, about, settings, session, imports)
  - router: chi route definitions and middleware stack
  - middleware: request logging, JSON helpers, auth gates
  - store: the ContentSource interface with Mongo, Memory, and Demo implementations
  - models: domain and request/response types
  - auth: JWT issuance/verification and password hashing
  - config: flag and environment parsing
  - client: typed API client with caching and incremental list loading

See package documentation for each component.
*/
package main
