// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides JWT issuance/verification and password hashing.

# Tokens

Two token kinds share one claims shape, signed HS256:

	access, err := auth.IssueAccessToken(secret, user)    // 1 hour
	refresh, err := auth.IssueRefreshToken(secret, user)  // 7 days

ParseToken verifies signature, expiry, and kind:

	claims, err := auth.ParseToken(secret, tokenString, auth.KindAccess)

Errors are sentinels: ErrInvalidToken, ErrExpiredToken, ErrWrongKind.
A refresh token can never pass as an access token or vice versa.

# Passwords

bcrypt with the default cost:

	hash, err := auth.HashPassword(plain)
	ok := auth.CheckPassword(plain, hash)
*/
package auth
