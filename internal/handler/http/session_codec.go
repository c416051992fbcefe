// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-theatre-ai/internal/config"
	"github.com/MKhiriev/go-theatre-ai/internal/utils"
	"github.com/MKhiriev/go-theatre-ai/models"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

const sessionCookieName = "theatre-session"

// Keys of the values stored in the session cookie.
const (
	cookieUserID      = "user_id"
	cookieUsername    = "username"
	cookieDisplayName = "display_name"
	cookiePage        = "page"
)

// sessionCodec moves a session between a request and its response.
//
// Load returns the initial session and a nil error when the request carries
// no session at all. A carrier that is present but cannot be verified yields
// the initial session and a non-nil error.
type sessionCodec interface {
	Load(r *http.Request) (models.Session, error)
	Save(w http.ResponseWriter, r *http.Request, s models.Session) error
}

func newSessionCodec(cfg config.App) (sessionCodec, error) {
	switch cfg.SessionTransport {
	case config.SessionTransportToken:
		return &tokenCodec{
			issuer:   cfg.TokenIssuer,
			signKey:  cfg.TokenSignKey,
			duration: cfg.TokenDuration,
		}, nil
	case config.SessionTransportCookie:
		return newCookieCodec(cfg.CookieAuthKey, cfg.CookieEncryptionKey, cfg.TokenDuration), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSessionTransport, cfg.SessionTransport)
	}
}

// tokenCodec carries the session in an HS256 bearer token. The next token is
// returned in the "Authorization" response header.
type tokenCodec struct {
	issuer   string
	signKey  string
	duration time.Duration
}

func (c *tokenCodec) Load(r *http.Request) (models.Session, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return models.NewSession(), nil
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return models.NewSession(), fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
	}

	s, err := utils.ParseSessionToken(tokenString, c.signKey, c.issuer)
	if err != nil {
		return models.NewSession(), err
	}

	return s, nil
}

func (c *tokenCodec) Save(w http.ResponseWriter, _ *http.Request, s models.Session) error {
	token, err := utils.GenerateSessionToken(c.issuer, s, c.duration, c.signKey)
	if err != nil {
		return err
	}

	w.Header().Set("Authorization", "Bearer "+token.String())
	return nil
}

// cookieCodec carries the session in a signed, optionally encrypted cookie.
type cookieCodec struct {
	store *sessions.CookieStore
}

func newCookieCodec(authKey, encryptionKey string, maxAge time.Duration) *cookieCodec {
	keyPairs := [][]byte{[]byte(authKey)}
	if encryptionKey != "" {
		keyPairs = append(keyPairs, []byte(encryptionKey))
	}

	store := sessions.NewCookieStore(keyPairs...)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	store.MaxAge(store.Options.MaxAge)

	return &cookieCodec{store: store}
}

func (c *cookieCodec) Load(r *http.Request) (models.Session, error) {
	cookieSession, err := c.store.Get(r, sessionCookieName)
	if err != nil {
		var cookieErr securecookie.Error
		if errors.As(err, &cookieErr) && cookieErr.IsDecode() {
			return models.NewSession(), fmt.Errorf("%w: %w", ErrInvalidSessionCookie, err)
		}
		return models.NewSession(), err
	}
	if cookieSession.IsNew {
		return models.NewSession(), nil
	}

	userID, okID := cookieSession.Values[cookieUserID].(int64)
	username, okName := cookieSession.Values[cookieUsername].(string)
	displayName, okDisplay := cookieSession.Values[cookieDisplayName].(string)
	page, okPage := cookieSession.Values[cookiePage].(string)
	if !okID || !okName || !okDisplay || !okPage {
		return models.NewSession(), ErrMalformedSessionCookie
	}

	s := models.Session{Page: models.Page(page)}
	if userID > 0 {
		s.UserID = userID
		s.Username = username
		s.DisplayName = displayName
	}

	return s.Normalized(), nil
}

func (c *cookieCodec) Save(w http.ResponseWriter, r *http.Request, s models.Session) error {
	cookieSession := sessions.NewSession(c.store, sessionCookieName)
	opts := *c.store.Options
	cookieSession.Options = &opts

	cookieSession.Values[cookieUserID] = s.UserID
	cookieSession.Values[cookieUsername] = s.Username
	cookieSession.Values[cookieDisplayName] = s.DisplayName
	cookieSession.Values[cookiePage] = s.Page.String()

	if err := cookieSession.Save(r, w); err != nil {
		return fmt.Errorf("error saving session cookie: %w", err)
	}
	return nil
}
