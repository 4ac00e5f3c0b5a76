// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header does not use the Bearer scheme.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned for a Bearer header without a token.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrTokenExpired is reported to callers whose token is past its expiry.
	ErrTokenExpired = errors.New("token is expired")
)

// ErrContentHashMismatch is returned when a write request carries an
// X-Content-Hash header that does not match its body.
var ErrContentHashMismatch = errors.New("request body does not match X-Content-Hash")
