// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package config

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     int
	MongoURI string
	DBName   string

	JWTSecret string

	AdminEmail    string
	AdminPassword string
	AdminName     string

	CORSOrigins []string
}

// Load parses flags with environment fallback. A .env file is read first
// when present so local development does not need exported variables.
func Load(args []string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	var origins string

	fs := flag.NewFlagSet("businesstalk", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.MongoURI, "m", "", "MongoDB connection string (empty runs demo mode)")
	fs.StringVar(&cfg.DBName, "db", "", "Database name")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", "", "JWT signing secret (prefer env)")
	fs.StringVar(&cfg.AdminEmail, "admin-email", "", "Admin bootstrap email (prefer env)")
	fs.StringVar(&cfg.AdminPassword, "admin-password", "", "Admin bootstrap password (prefer env)")

	fs.StringVar(&cfg.AdminName, "admin-name", "", "Admin display name")
	fs.StringVar(&origins, "cors-origins", "", "Comma-separated allowed CORS origins")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 5000 // default
		}
	}
	if cfg.MongoURI == "" {
		cfg.MongoURI = os.Getenv("MONGODB_URI")
	}
	if cfg.DBName == "" {
		cfg.DBName = os.Getenv("DB_NAME")
		if cfg.DBName == "" {
			cfg.DBName = "businesstalk"
		}
	}

	// Secrets - MUST be provided
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = os.Getenv("JWT_SECRET")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET required")
	}

	if cfg.AdminEmail == "" {
		cfg.AdminEmail = os.Getenv("ADMIN_EMAIL")
	}
	if cfg.AdminEmail == "" {
		return Config{}, errors.New("ADMIN_EMAIL required")
	}

	if cfg.AdminPassword == "" {
		cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	}
	if cfg.AdminPassword == "" {
		return Config{}, errors.New("ADMIN_PASSWORD required")
	}

	if cfg.AdminName == "" {
		cfg.AdminName = os.Getenv("ADMIN_NAME")
		if cfg.AdminName == "" {
			cfg.AdminName = "Business Talk"
		}
	}

	if origins == "" {
		origins = os.Getenv("CORS_ALLOWED_ORIGINS")
	}
	cfg.CORSOrigins = splitCSV(origins)

	return cfg, nil
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
