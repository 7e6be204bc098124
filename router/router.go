// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/businesstalk/backend/config"
	"github.com/businesstalk/backend/handlers"
	"github.com/businesstalk/backend/middleware"
	"github.com/businesstalk/backend/store"
)

// NewRouter wires every endpoint. Read routes are public; write routes sit
// behind the auth gate with an admin role check.
func NewRouter(src store.ContentSource, cfg config.Config) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	secret := []byte(cfg.JWTSecret)
	requireAdmin := func(r chi.Router) {
		r.Use(middleware.RequireAuth(secret))
		r.Use(middleware.RequireAdmin)
	}

	podcastHandler := handlers.NewPodcastHandler(src, cfg)
	blogHandler := handlers.NewBlogHandler(src, cfg)
	aboutHandler := handlers.NewAboutHandler(src, cfg)
	settingsHandler := handlers.NewSettingsHandler(src, cfg)
	importHandler := handlers.NewImportHandler(src, cfg)
	sessionHandler := handlers.NewSessionHandler(src, cfg)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/podcasts", func(r chi.Router) {
		r.Get("/", podcastHandler.List)
		r.Get("/{id}", podcastHandler.Get)

		r.Group(func(r chi.Router) {
			requireAdmin(r)
			r.Post("/", podcastHandler.Create)
			r.Post("/upload", podcastHandler.Upload)
			r.Post("/repair-categories", podcastHandler.RepairCategories)
			r.Put("/{id}", podcastHandler.Update)
			r.Delete("/{id}", podcastHandler.Delete)
		})
	})

	r.Route("/blogs", func(r chi.Router) {
		r.Get("/", blogHandler.List)
		r.Get("/{id}", blogHandler.Get)

		r.Route("/admin", func(r chi.Router) {
			requireAdmin(r)
			r.Get("/all", blogHandler.AdminList)
			r.Get("/{id}", blogHandler.AdminGet)
		})

		r.Group(func(r chi.Router) {
			requireAdmin(r)
			r.Post("/", blogHandler.Create)
			r.Put("/{id}", blogHandler.Update)
			r.Delete("/{id}", blogHandler.Delete)
		})
	})

	r.Get("/about", aboutHandler.Get)
	r.Get("/settings", settingsHandler.Get)
	r.Group(func(r chi.Router) {
		requireAdmin(r)
		r.Put("/about", aboutHandler.Put)
		r.Put("/settings", settingsHandler.Put)
		r.Post("/import/podcasts", importHandler.ImportPodcasts)
	})

	r.Route("/auth", func(r chi.Router) {
		// 5 login attempts per minute per IP
		r.With(httprate.LimitByIP(5, time.Minute)).Post("/login", sessionHandler.Login)
		r.Post("/refresh", sessionHandler.Refresh)
		r.With(middleware.RequireAuth(secret)).Get("/me", sessionHandler.Me)
	})

	return r
}
