// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-theatre-ai/internal/app"
	"github.com/MKhiriev/go-theatre-ai/internal/logger"
	"github.com/MKhiriev/go-theatre-ai/internal/service"
	"github.com/MKhiriev/go-theatre-ai/models"
)

// Controller gates the session operations and renders the page data.
// It holds only read-only dependencies and is safe for concurrent use.
type Controller struct {
	identity  service.IdentityService
	creations service.CreationService
	gallery   service.GalleryService

	logger *logger.Logger
}

// NewController builds a Controller on top of the identity, creation and
// gallery services.
func NewController(services *service.Services, logger *logger.Logger) *Controller {
	return &Controller{
		identity:  services.IdentityService,
		creations: services.CreationService,
		gallery:   services.GalleryService,
		logger:    logger,
	}
}

// Current renders the page the session rests on. A session whose page is not
// legal for its auth state is moved to the first page of that state.
func (c *Controller) Current(ctx context.Context, s models.Session) (models.Session, models.View, error) {
	next := s.Normalized()
	return c.respond(ctx, s, next, nil, nil)
}

// Expired renders the initial session with a notice that the previous one
// could not be restored.
func (c *Controller) Expired(ctx context.Context) (models.Session, models.View, error) {
	next := models.NewSession()
	return c.respond(ctx, next, next, info(app.MsgSessionExpired), nil)
}

// Login authenticates the submitted credentials. On success the session
// becomes authenticated and moves to CreatePiece; on failure it stays
// anonymous on Login and ErrInvalidCredentials is returned. Only the Login
// page accepts credentials.
func (c *Controller) Login(ctx context.Context, s models.Session, req models.LoginRequest) (models.Session, models.View, error) {
	if s.Authenticated() {
		return c.refuse(ctx, s, app.MsgAlreadyAuthenticated, ErrAlreadyAuthenticated)
	}
	if s.Page != models.PageLogin {
		return c.refuse(ctx, s, app.MsgLoginWrongPage, ErrWrongPage)
	}

	user, err := c.identity.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			next := models.NewSession()
			return c.respond(ctx, s, next, failure(app.MsgInvalidLoginPassword), ErrInvalidCredentials)
		}
		return c.fail(ctx, s, "login", err)
	}

	logger.FromContext(ctx).Info().Int64("user_id", user.UserID).Msg("user logged in")

	next := models.SessionFor(user, models.PageCreatePiece)
	return c.respond(ctx, s, next, info(fmt.Sprintf(app.MsgWelcome, next.DisplayName)), nil)
}

// RequestRegistration moves an anonymous session to the Register page.
func (c *Controller) RequestRegistration(ctx context.Context, s models.Session) (models.Session, models.View, error) {
	if s.Authenticated() {
		return c.refuse(ctx, s, app.MsgAlreadyAuthenticated, ErrAlreadyAuthenticated)
	}

	return c.respond(ctx, s, models.Session{Page: models.PageRegister}, nil, nil)
}

// CancelRegistration moves an anonymous session back to the Login page.
func (c *Controller) CancelRegistration(ctx context.Context, s models.Session) (models.Session, models.View, error) {
	if s.Authenticated() {
		return c.refuse(ctx, s, app.MsgAlreadyAuthenticated, ErrAlreadyAuthenticated)
	}

	return c.respond(ctx, s, models.NewSession(), nil, nil)
}

// Register creates an account from the submitted form. On success the
// session goes to Login with a confirmation; the new user is not logged in.
// On a collision or an empty field the session stays on Register.
func (c *Controller) Register(ctx context.Context, s models.Session, req models.RegistrationRequest) (models.Session, models.View, error) {
	if s.Authenticated() {
		return c.refuse(ctx, s, app.MsgAlreadyAuthenticated, ErrAlreadyAuthenticated)
	}
	if s.Page != models.PageRegister {
		return c.refuse(ctx, s, app.MsgRegisterWrongPage, ErrWrongPage)
	}

	_, err := c.identity.Register(ctx, req)
	if err != nil {
		registerPage := models.Session{Page: models.PageRegister}
		switch {
		case errors.Is(err, ErrUsernameTaken):
			return c.respond(ctx, s, registerPage, failure(app.MsgUsernameTaken), ErrUsernameTaken)
		case errors.Is(err, ErrEmailTaken):
			return c.respond(ctx, s, registerPage, failure(app.MsgEmailTaken), ErrEmailTaken)
		case errors.Is(err, ErrInvalidDataProvided):
			return c.respond(ctx, s, registerPage, failure(app.MsgRegistrationFieldsRequired), ErrInvalidDataProvided)
		default:
			return c.fail(ctx, s, "registration", err)
		}
	}

	return c.respond(ctx, s, models.NewSession(), success(app.MsgAccountCreated), nil)
}

// Navigate moves an authenticated session to one of the menu pages.
func (c *Controller) Navigate(ctx context.Context, s models.Session, page models.Page) (models.Session, models.View, error) {
	if !s.Authenticated() {
		return c.refuse(ctx, s, app.MsgNotAuthenticated, ErrNotAuthenticated)
	}
	if !page.IsMenu() {
		return c.refuse(ctx, s, app.MsgUnknownPage, ErrUnknownPage)
	}

	next := s
	next.Page = page
	return c.respond(ctx, s, next, nil, nil)
}

// Logout always ends on the initial session.
func (c *Controller) Logout(ctx context.Context, s models.Session) (models.Session, models.View, error) {
	var msg *models.Message
	if s.Authenticated() {
		logger.FromContext(ctx).Info().Int64("user_id", s.UserID).Msg("user logged out")
		msg = info(app.MsgLoggedOut)
	}

	next := models.NewSession()
	return c.respond(ctx, s, next, msg, nil)
}

// SubmitCreation stores a creation owned by the session user. It is only
// accepted on the CreatePiece page; the page does not change. Blank era and
// description are stored as absent, the theme is stored as typed.
func (c *Controller) SubmitCreation(ctx context.Context, s models.Session, req models.CreationRequest) (models.Session, models.View, error) {
	if !s.Authenticated() {
		return c.refuse(ctx, s, app.MsgNotAuthenticated, ErrNotAuthenticated)
	}
	if s.Page != models.PageCreatePiece {
		return c.refuse(ctx, s, app.MsgWrongPage, ErrWrongPage)
	}

	creation, err := c.creations.AddCreation(ctx, s.UserID, req.Theme, optional(req.Era), optional(req.Description))
	if err != nil {
		return c.fail(ctx, s, "creation", err)
	}

	logger.FromContext(ctx).Info().
		Int64("user_id", s.UserID).
		Int64("creation_id", creation.ID).
		Msg("creation saved")

	return c.respond(ctx, s, s, success(app.MsgCreationSaved), nil)
}

// refuse keeps the session where it is and surfaces msg.
func (c *Controller) refuse(ctx context.Context, s models.Session, msg string, cause error) (models.Session, models.View, error) {
	logger.FromContext(ctx).Debug().
		Err(cause).
		Str("page", s.Page.String()).
		Bool("authenticated", s.Authenticated()).
		Msg("session operation refused")

	current := s.Normalized()
	return c.respond(ctx, s, current, failure(msg), cause)
}

// fail reports a fault the user cannot resolve. The session is unchanged.
func (c *Controller) fail(ctx context.Context, s models.Session, op string, err error) (models.Session, models.View, error) {
	logger.FromContext(ctx).Err(err).Str("op", op).Msg("session operation failed")

	current := s.Normalized()
	view := baseView(current)
	view.Message = failure(app.MsgInternalServerError)
	return s, view, fmt.Errorf("%s failed: %w", op, err)
}

// respond renders next. When rendering fails the previous session is kept.
func (c *Controller) respond(ctx context.Context, prev, next models.Session, msg *models.Message, cause error) (models.Session, models.View, error) {
	view, err := c.render(ctx, next)
	if err != nil {
		return c.fail(ctx, prev, "render "+next.Page.String(), err)
	}

	view.Message = msg
	return next, view, cause
}

func (c *Controller) render(ctx context.Context, s models.Session) (models.View, error) {
	view := baseView(s)

	switch s.Page {
	case models.PageHistory:
		creations, err := c.creations.ListByOwner(ctx, s.UserID)
		if err != nil {
			return models.View{}, err
		}
		view.Creations = historyEntries(creations)
		if len(view.Creations) == 0 {
			view.EmptyNotice = app.MsgNoCreations
		}

	case models.PageGallery:
		pieces, err := c.gallery.Catalog(ctx)
		if err != nil {
			return models.View{}, err
		}
		view.Gallery = pieces
	}

	return view, nil
}

func baseView(s models.Session) models.View {
	view := models.View{
		Page:          s.Page,
		Authenticated: s.Authenticated(),
	}
	if s.Authenticated() {
		view.Username = s.Username
		view.DisplayName = s.DisplayName
		view.MenuPages = append([]models.Page(nil), models.MenuPages...)
	}

	return view
}

func historyEntries(creations []models.Creation) []models.HistoryEntry {
	entries := make([]models.HistoryEntry, 0, len(creations))
	for i, creation := range creations {
		entries = append(entries, models.HistoryEntry{Ordinal: i + 1, Creation: creation})
	}
	return entries
}

func optional(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}

func info(text string) *models.Message {
	return &models.Message{Kind: models.MessageInfo, Text: text}
}

func success(text string) *models.Message {
	return &models.Message{Kind: models.MessageSuccess, Text: text}
}

func failure(text string) *models.Message {
	return &models.Message{Kind: models.MessageError, Text: text}
}
