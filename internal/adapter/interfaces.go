// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the terminal client to talk
// to the theatre server.
//
// The primary abstraction is [ServerAdapter]: one method per session
// operation, each returning the [models.View] the server rendered. The
// adapter carries the session between calls, either as the bearer token
// returned in the "Authorization" header or as the session cookie kept in
// the client's cookie jar.
//
// Non-2xx statuses are mapped to the sentinel errors in errors.go so callers
// can use [errors.Is] (e.g. [ErrConflict] for 409). The server always answers
// with a View, so the View is returned alongside such errors.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-theatre-ai/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the theatre server.
type ServerAdapter interface {
	// SetToken replaces the session token sent with subsequent requests.
	// An empty token makes the next request start from the initial session.
	SetToken(token string)

	// Token returns the session token held by the adapter, or an empty
	// string when none was received yet.
	Token() string

	// Session renders the page the carried session rests on.
	Session(ctx context.Context) (models.View, error)

	// Login submits credentials from the Login page.
	Login(ctx context.Context, req models.LoginRequest) (models.View, error)

	// RequestRegistration moves from Login to the Register page.
	RequestRegistration(ctx context.Context) (models.View, error)

	// CancelRegistration moves from Register back to Login.
	CancelRegistration(ctx context.Context) (models.View, error)

	// Register submits the registration form.
	Register(ctx context.Context, req models.RegistrationRequest) (models.View, error)

	// Navigate selects a menu page.
	Navigate(ctx context.Context, page models.Page) (models.View, error)

	// Logout ends the session.
	Logout(ctx context.Context) (models.View, error)

	// SubmitCreation submits the creation form from the CreatePiece page.
	SubmitCreation(ctx context.Context, req models.CreationRequest) (models.View, error)

	// ServerVersion returns the version reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
