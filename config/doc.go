// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package config handles command-line argument parsing and configuration.

# Configuration

Load returns a Config struct with all settings, reading a .env file
when present, then flags, then environment variables:

	cfg, err := config.Load(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - MongoURI: MongoDB connection string (empty enables demo mode)
  - DBName: Database name (default: businesstalk)
  - JWTSecret: HMAC secret for tokens (required)
  - AdminEmail / AdminPassword / AdminName: bootstrap admin account
    (email and password required)
  - CORSOrigins: allowed origins (default: *)

# CLI Flags

	-p                PORT
	-m                MONGODB_URI
	-db               DB_NAME
	-jwt-secret       JWT_SECRET
	-admin-email      ADMIN_EMAIL
	-admin-password   ADMIN_PASSWORD
	-admin-name       ADMIN_NAME
	-cors-origins     CORS_ALLOWED_ORIGINS

Environment variables are the fallback for unset flags.
*/
package config
