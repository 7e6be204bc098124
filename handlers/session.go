// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/businesstalk/backend/auth"
	"github.com/businesstalk/backend/config"
	"github.com/businesstalk/backend/middleware"
	"github.com/businesstalk/backend/models"
	"github.com/businesstalk/backend/store"
)

type SessionHandler struct {
	src store.ContentSource
	cfg config.Config
}

func NewSessionHandler(src store.ContentSource, cfg config.Config) *SessionHandler {
	return &SessionHandler{src: src, cfg: cfg}
}

func (h *SessionHandler) secret() []byte {
	return []byte(h.cfg.JWTSecret)
}

// Login handles POST /auth/login. Wrong email and wrong password are
// indistinguishable to the caller.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Email == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.src.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slog.Info("login rejected", "email", req.Email, "ip", middleware.GetClientIP(r))
			middleware.ErrorResponse(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		storeError(w, err, "failed to look up user")
		return
	}
	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		slog.Info("login rejected", "email", req.Email, "ip", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	accessToken, err := auth.IssueAccessToken(h.secret(), user)
	if err != nil {
		slog.Error("failed to issue access token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "failed to issue token")
		return
	}
	refreshToken, err := auth.IssueRefreshToken(h.secret(), user)
	if err != nil {
		slog.Error("failed to issue refresh token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	slog.Info("login succeeded", "email", user.Email)
	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         *user,
	})
}

// Refresh handles POST /auth/refresh, exchanging a live refresh token for
// a new access token. There is no revocation list; logout is client-side
// token deletion and expiry does the rest.
func (h *SessionHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.RefreshToken == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "refreshToken is required")
		return
	}

	claims, err := auth.ParseToken(h.secret(), req.RefreshToken, auth.KindRefresh)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
		return
	}

	user, err := h.src.GetUserByID(r.Context(), claims.Subject)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "unknown user")
		return
	}

	accessToken, err := auth.IssueAccessToken(h.secret(), user)
	if err != nil {
		slog.Error("failed to issue access token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RefreshResponse{AccessToken: accessToken})
}

// Me handles GET /auth/me (token introspection, behind RequireAuth).
func (h *SessionHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())

	user, err := h.src.GetUserByID(r.Context(), claims.Subject)
	if err != nil {
		storeError(w, err, "failed to load current user")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, user)
}
