// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, request body
// signing, HTTP response writing, HTTP client initialization, session token
// generation and validation, and trace identifiers.
package utils

import (
	"context"

	"github.com/MKhiriev/go-theatre-ai/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the session decoded from the
// request is stored in the context.
var SessionCtxKey = contextKey("session")

// SessionExpiredCtxKey marks requests whose session carrier was present
// but could not be verified.
var SessionExpiredCtxKey = contextKey("sessionExpired")

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s models.Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, s)
}

// GetSessionFromContext retrieves the session stored by WithSession.
//
// Returns the initial session and ok == false when none is stored, so the
// result is always usable.
func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	s, ok := ctx.Value(SessionCtxKey).(models.Session)
	if !ok {
		return models.NewSession(), false
	}
	return s, true
}

// WithSessionExpired returns a copy of ctx marking the session carrier of
// the request as rejected.
func WithSessionExpired(ctx context.Context) context.Context {
	return context.WithValue(ctx, SessionExpiredCtxKey, true)
}

// IsSessionExpired reports whether WithSessionExpired was applied to ctx.
func IsSessionExpired(ctx context.Context) bool {
	expired, _ := ctx.Value(SessionExpiredCtxKey).(bool)
	return expired
}
