// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/businesstalk/backend/auth"
	"github.com/businesstalk/backend/models"
)

// EnsureAdmin creates the admin account from configured credentials if no
// user with that email exists. Runs once at process start; there is no
// runtime signup path.
func EnsureAdmin(ctx context.Context, src ContentSource, email, password, name string) error {
	_, err := src.GetUserByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("look up admin: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         models.RoleAdmin,
	}
	if err := src.CreateUser(ctx, &admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	slog.Info("admin account bootstrapped", "email", email)
	return nil
}
