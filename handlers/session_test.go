// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers_test

import (
	"net/http"
	"testing"

	"github.com/businesstalk/backend/models"
	"github.com/businesstalk/backend/testutil"
)

func TestLoginFlow(t *testing.T) {
	_, mux, cfg := newTestServer(t)

	rec := record(mux, testutil.MakeRequest(http.MethodPost, "/auth/login",
		models.LoginRequest{Email: cfg.AdminEmail, Password: cfg.AdminPassword}, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("login = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp models.LoginResponse
	testutil.DecodeJSON(t, rec, &resp)
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("login response missing tokens")
	}
	if resp.User.Email != cfg.AdminEmail || resp.User.Role != models.RoleAdmin {
		t.Errorf("login user = %+v", resp.User)
	}

	// The access token opens the auth gate.
	me := record(mux, testutil.MakeRequest(http.MethodGet, "/auth/me", nil, testutil.AuthHeader(resp.AccessToken)))
	if me.Code != http.StatusOK {
		t.Fatalf("GET /auth/me = %d, want 200", me.Code)
	}
	var user models.User
	testutil.DecodeJSON(t, me, &user)
	if user.Email != cfg.AdminEmail {
		t.Errorf("me email = %q, want %q", user.Email, cfg.AdminEmail)
	}

	// The refresh token yields a fresh access token.
	refreshed := record(mux, testutil.MakeRequest(http.MethodPost, "/auth/refresh",
		models.RefreshRequest{RefreshToken: resp.RefreshToken}, nil))
	if refreshed.Code != http.StatusOK {
		t.Fatalf("refresh = %d, want 200: %s", refreshed.Code, refreshed.Body.String())
	}
	var refreshResp models.RefreshResponse
	testutil.DecodeJSON(t, refreshed, &refreshResp)
	if refreshResp.AccessToken == "" {
		t.Error("refresh response missing access token")
	}
}

func TestLoginRejections(t *testing.T) {
	_, mux, cfg := newTestServer(t)

	tests := []struct {
		name string
		req  models.LoginRequest
		want int
	}{
		{"wrong password", models.LoginRequest{Email: cfg.AdminEmail, Password: "nope"}, http.StatusUnauthorized},
		{"unknown email", models.LoginRequest{Email: "nobody@example.com", Password: "nope"}, http.StatusUnauthorized},
		{"missing fields", models.LoginRequest{Email: cfg.AdminEmail}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := record(mux, testutil.MakeRequest(http.MethodPost, "/auth/login", tt.req, nil))
			if rec.Code != tt.want {
				t.Errorf("login = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	src, mux, cfg := newTestServer(t)
	accessToken := testutil.AdminToken(t, cfg, src)

	// An access token is not redeemable at the refresh endpoint.
	rec := record(mux, testutil.MakeRequest(http.MethodPost, "/auth/refresh",
		models.RefreshRequest{RefreshToken: accessToken}, nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("refresh with access token = %d, want 401", rec.Code)
	}
}

func TestLoginRateLimit(t *testing.T) {
	_, mux, _ := newTestServer(t)

	req := models.LoginRequest{Email: "nobody@example.com", Password: "wrong"}
	var last int
	for i := 0; i < 6; i++ {
		rec := record(mux, testutil.MakeRequest(http.MethodPost, "/auth/login", req, nil))
		last = rec.Code
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("sixth login attempt = %d, want 429", last)
	}
}

func TestBadBearerToken(t *testing.T) {
	_, mux, _ := newTestServer(t)

	tests := []struct {
		name   string
		header map[string]string
	}{
		{"garbage token", testutil.AuthHeader("not-a-jwt")},
		{"missing scheme", map[string]string{"Authorization": "token-without-bearer"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := record(mux, testutil.MakeRequest(http.MethodGet, "/auth/me", nil, tt.header))
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("GET /auth/me = %d, want 401", rec.Code)
			}
		})
	}
}
