// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-theatre-ai/internal/app"
	"github.com/MKhiriev/go-theatre-ai/internal/config"
	"github.com/MKhiriev/go-theatre-ai/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var transports = []string{config.SessionTransportToken, config.SessionTransportCookie}

var aliceRegistration = models.RegistrationRequest{
	Username:  "alice",
	Password:  "pw1",
	Email:     "a@x.io",
	FirstName: "Alice",
	LastName:  "A",
	Phone:     "555",
}

func registerAndLogin(t *testing.T, c *client) models.View {
	t.Helper()

	status, view := c.do(http.MethodPost, "/api/session/registration", nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, models.PageRegister, view.Page)

	status, view = c.do(http.MethodPost, "/api/session/register", aliceRegistration)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, models.PageLogin, view.Page)

	status, view = c.do(http.MethodPost, "/api/session/login", models.LoginRequest{Username: "alice", Password: "pw1"})
	require.Equal(t, http.StatusOK, status)
	return view
}

// ── flows through both transports ─────────────────────────────────────────────

func TestSession_InitialPageIsLogin(t *testing.T) {
	for _, transport := range transports {
		t.Run(transport, func(t *testing.T) {
			c := newClient(t, newTestHandler(t, transport, ""))

			status, view := c.do(http.MethodGet, "/api/session", nil)
			assert.Equal(t, http.StatusOK, status)
			assert.Equal(t, models.PageLogin, view.Page)
			assert.False(t, view.Authenticated)
			assert.Empty(t, view.MenuPages)
		})
	}
}

func TestSession_RegisterLoginCreateHistory(t *testing.T) {
	for _, transport := range transports {
		t.Run(transport, func(t *testing.T) {
			c := newClient(t, newTestHandler(t, transport, ""))

			view := registerAndLogin(t, c)
			assert.Equal(t, models.PageCreatePiece, view.Page)
			assert.True(t, view.Authenticated)
			assert.Equal(t, "Alice A", view.DisplayName)
			assert.Equal(t, models.MenuPages, view.MenuPages)

			status, view := c.do(http.MethodPost, "/api/creations", models.CreationRequest{Theme: "Ghosts", Era: "1920s"})
			require.Equal(t, http.StatusOK, status)
			require.NotNil(t, view.Message)
			assert.Equal(t, app.MsgCreationSaved, view.Message.Text)
			assert.Equal(t, models.PageCreatePiece, view.Page)

			status, view = c.do(http.MethodPost, "/api/session/navigate", models.NavigateRequest{Page: models.PageHistory})
			require.Equal(t, http.StatusOK, status)
			assert.Equal(t, models.PageHistory, view.Page)
			require.Len(t, view.Creations, 1)
			assert.Equal(t, 1, view.Creations[0].Ordinal)
			assert.Equal(t, "Ghosts", view.Creations[0].Theme)
			assert.Nil(t, view.Creations[0].Description)

			// the carrier keeps the page between requests
			status, view = c.do(http.MethodGet, "/api/session", nil)
			require.Equal(t, http.StatusOK, status)
			assert.Equal(t, models.PageHistory, view.Page)
			assert.True(t, view.Authenticated)
		})
	}
}

func TestSession_GalleryAndLogout(t *testing.T) {
	for _, transport := range transports {
		t.Run(transport, func(t *testing.T) {
			c := newClient(t, newTestHandler(t, transport, ""))
			registerAndLogin(t, c)

			status, view := c.do(http.MethodPost, "/api/session/navigate", models.NavigateRequest{Page: models.PageGallery})
			require.Equal(t, http.StatusOK, status)
			assert.Equal(t, models.PageGallery, view.Page)
			assert.Len(t, view.Gallery, 3)

			status, view = c.do(http.MethodPost, "/api/session/logout", nil)
			require.Equal(t, http.StatusOK, status)
			assert.Equal(t, models.PageLogin, view.Page)
			assert.False(t, view.Authenticated)

			status, view = c.do(http.MethodPost, "/api/session/navigate", models.NavigateRequest{Page: models.PageHistory})
			assert.Equal(t, http.StatusForbidden, status)
			assert.Equal(t, models.PageLogin, view.Page)
			require.NotNil(t, view.Message)
			assert.Equal(t, models.MessageError, view.Message.Kind)
		})
	}
}

// ── error statuses ────────────────────────────────────────────────────────────

func TestSession_ErrorStatuses(t *testing.T) {
	c := newClient(t, newTestHandler(t, config.SessionTransportToken, ""))

	status, view := c.do(http.MethodPost, "/api/session/login", models.LoginRequest{Username: "nobody", Password: "x"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, models.PageLogin, view.Page)
	require.NotNil(t, view.Message)
	assert.Equal(t, app.MsgInvalidLoginPassword, view.Message.Text)

	status, view = c.do(http.MethodPost, "/api/session/register", aliceRegistration)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, models.PageLogin, view.Page)
	require.NotNil(t, view.Message)
	assert.Equal(t, app.MsgRegisterWrongPage, view.Message.Text)

	status, _ = c.do(http.MethodPost, "/api/session/registration", nil)
	require.Equal(t, http.StatusOK, status)
	status, _ = c.do(http.MethodPost, "/api/session/register", aliceRegistration)
	require.Equal(t, http.StatusOK, status)

	status, _ = c.do(http.MethodPost, "/api/session/registration", nil)
	require.Equal(t, http.StatusOK, status)
	status, view = c.do(http.MethodPost, "/api/session/register", aliceRegistration)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, models.PageRegister, view.Page)

	blank := aliceRegistration
	blank.Username = "bob"
	blank.Email = "b@x.io"
	blank.Phone = "  "
	status, view = c.do(http.MethodPost, "/api/session/register", blank)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, models.PageRegister, view.Page)

	status, view = c.do(http.MethodPost, "/api/session/login", models.LoginRequest{Username: "alice", Password: "pw1"})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, models.PageRegister, view.Page)

	status, view = c.do(http.MethodPost, "/api/session/registration/cancel", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.PageLogin, view.Page)

	status, _ = c.do(http.MethodPost, "/api/session/login", models.LoginRequest{Username: "alice", Password: "pw1"})
	require.Equal(t, http.StatusOK, status)

	status, _ = c.do(http.MethodPost, "/api/session/login", models.LoginRequest{Username: "alice", Password: "pw1"})
	assert.Equal(t, http.StatusForbidden, status)

	status, view = c.do(http.MethodPost, "/api/session/navigate", models.NavigateRequest{Page: models.PageRegister})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, models.PageCreatePiece, view.Page)

	status, _ = c.do(http.MethodPost, "/api/session/navigate", models.NavigateRequest{Page: models.PageGallery})
	require.Equal(t, http.StatusOK, status)
	status, view = c.do(http.MethodPost, "/api/creations", models.CreationRequest{Theme: "x"})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, models.PageGallery, view.Page)
}

func TestSession_MalformedJSON(t *testing.T) {
	h := newTestHandler(t, config.SessionTransportToken, "")
	router := h.Init()

	req := newRawRequest(http.MethodPost, "/api/session/login", `{"username":`)
	rr := serve(router, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	view := decodeView(t, rr)
	assert.Equal(t, models.PageLogin, view.Page)
	require.NotNil(t, view.Message)
	assert.Equal(t, app.MsgInvalidDataProvided, view.Message.Text)
}

// ── unverifiable carriers ─────────────────────────────────────────────────────

func TestSession_InvalidTokenIsExpired(t *testing.T) {
	h := newTestHandler(t, config.SessionTransportToken, "")
	c := newClient(t, h)
	c.token = "not-a-token"

	status, view := c.do(http.MethodGet, "/api/session", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, models.PageLogin, view.Page)
	require.NotNil(t, view.Message)
	assert.Equal(t, app.MsgSessionExpired, view.Message.Text)

	// the response carried a fresh initial session
	status, view = c.do(http.MethodGet, "/api/session", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Nil(t, view.Message)
}

func TestSession_InvalidTokenStillAllowsLogin(t *testing.T) {
	h := newTestHandler(t, config.SessionTransportToken, "")
	c := newClient(t, h)

	c.do(http.MethodPost, "/api/session/registration", nil)
	c.do(http.MethodPost, "/api/session/register", aliceRegistration)
	c.token = "garbage"

	status, view := c.do(http.MethodPost, "/api/session/login", models.LoginRequest{Username: "alice", Password: "pw1"})
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, view.Authenticated)
}

func TestSession_TamperedCookieIsExpired(t *testing.T) {
	h := newTestHandler(t, config.SessionTransportCookie, "")
	c := newClient(t, h)
	registerAndLogin(t, c)

	require.NotEmpty(t, c.cookies)
	c.cookies[0].Value = "x" + c.cookies[0].Value

	status, view := c.do(http.MethodPost, "/api/session/navigate", models.NavigateRequest{Page: models.PageHistory})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, models.PageLogin, view.Page)
	assert.False(t, view.Authenticated)
}
