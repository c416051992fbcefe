// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while restoring the session carried by a request.
// Callers can match against them with [errors.Is].
var (
	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not a bearer token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidSessionCookie is returned when the session cookie cannot be
	// authenticated or decrypted.
	ErrInvalidSessionCookie = errors.New("invalid session cookie")

	// ErrMalformedSessionCookie is returned when the session cookie decodes
	// but its values have unexpected types.
	ErrMalformedSessionCookie = errors.New("malformed session cookie")

	// ErrSessionExpired is reported for operations that need the carried
	// session when that session could not be restored.
	ErrSessionExpired = errors.New("session expired")

	// ErrUnknownSessionTransport is returned by NewHandler for a transport
	// other than "token" or "cookie".
	ErrUnknownSessionTransport = errors.New("unknown session transport")
)
