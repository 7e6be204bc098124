// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/businesstalk/backend/config"
	"github.com/businesstalk/backend/router"
	"github.com/businesstalk/backend/store"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	src := selectSource(ctx, cfg)
	defer src.Close(ctx)

	mux := router.NewRouter(src, cfg)

	server := http.Server{
		Handler:      mux,
		Addr:         ":" + strconv.Itoa(cfg.Port),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		server.Close()
	}()

	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed")
	}
}

// selectSource picks the content source once at startup: live Mongo when
// reachable, the seeded read-only demo dataset otherwise. Reads degrade
// gracefully in demo mode; writes answer 503.
func selectSource(ctx context.Context, cfg config.Config) store.ContentSource {
	if cfg.MongoURI == "" {
		slog.Warn("no MongoDB URI configured, serving demo data")
		return store.NewDemo()
	}

	connectCtx, cancel := context.WithTimeout(ctx, store.ServerSelectionTimeout)
	defer cancel()

	src, err := store.NewMongo(connectCtx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		slog.Warn("database unreachable, serving demo data", "error", err)
		return store.NewDemo()
	}

	if err := store.EnsureAdmin(ctx, src, cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName); err != nil {
		slog.Error("admin bootstrap failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Content store ready", "database", cfg.DBName)
	return src
}
