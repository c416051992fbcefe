package http

import (
	"net/http"

	"github.com/MKhiriev/go-theatre-ai/internal/app"
	"github.com/MKhiriev/go-theatre-ai/internal/logger"
	"github.com/MKhiriev/go-theatre-ai/internal/utils"
	"github.com/MKhiriev/go-theatre-ai/models"
)

func (h *Handler) current(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.expired(w, r) {
		return
	}

	s, _ := utils.GetSessionFromContext(ctx)
	next, view, err := h.controller.Current(ctx, s)
	h.reply(w, r, next, view, err)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s, _ := utils.GetSessionFromContext(ctx)

	var req models.LoginRequest
	if !h.decode(w, r, s, &req) {
		return
	}

	next, view, err := h.controller.Login(ctx, s, req)
	h.reply(w, r, next, view, err)
}

func (h *Handler) requestRegistration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s, _ := utils.GetSessionFromContext(ctx)

	next, view, err := h.controller.RequestRegistration(ctx, s)
	h.reply(w, r, next, view, err)
}

func (h *Handler) cancelRegistration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s, _ := utils.GetSessionFromContext(ctx)

	next, view, err := h.controller.CancelRegistration(ctx, s)
	h.reply(w, r, next, view, err)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s, _ := utils.GetSessionFromContext(ctx)

	var req models.RegistrationRequest
	if !h.decode(w, r, s, &req) {
		return
	}

	next, view, err := h.controller.Register(ctx, s, req)
	h.reply(w, r, next, view, err)
}

func (h *Handler) navigate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.expired(w, r) {
		return
	}
	s, _ := utils.GetSessionFromContext(ctx)

	var req models.NavigateRequest
	if !h.decode(w, r, s, &req) {
		return
	}

	next, view, err := h.controller.Navigate(ctx, s, req.Page)
	h.reply(w, r, next, view, err)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.expired(w, r) {
		return
	}
	s, _ := utils.GetSessionFromContext(ctx)

	next, view, err := h.controller.Logout(ctx, s)
	h.reply(w, r, next, view, err)
}

func (h *Handler) submitCreation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.expired(w, r) {
		return
	}
	s, _ := utils.GetSessionFromContext(ctx)

	var req models.CreationRequest
	if !h.decode(w, r, s, &req) {
		return
	}

	next, view, err := h.controller.SubmitCreation(ctx, s, req)
	h.reply(w, r, next, view, err)
}

// expired answers the request with the expired-session view when the carried
// session could not be restored. It reports whether it did.
func (h *Handler) expired(w http.ResponseWriter, r *http.Request) bool {
	ctx := r.Context()
	if !utils.IsSessionExpired(ctx) {
		return false
	}

	next, view, err := h.controller.Expired(ctx)
	if err == nil {
		err = ErrSessionExpired
	}
	h.reply(w, r, next, view, err)
	return true
}

// decode reads the JSON body into v. On failure the current page is
// rendered with an error message and false is returned.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, s models.Session, v any) bool {
	if err := utils.DecodeJSON(r, v); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		h.reject(w, r, s, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return false
	}
	return true
}

// reject renders the page s rests on with msg and the given status.
func (h *Handler) reject(w http.ResponseWriter, r *http.Request, s models.Session, status int, msg string) {
	next, view, err := h.controller.Current(r.Context(), s)
	if err != nil {
		h.reply(w, r, next, view, err)
		return
	}

	view.Message = &models.Message{Kind: models.MessageError, Text: msg}
	h.write(w, r, next, view, status)
}

// reply writes the outcome of a controller operation.
func (h *Handler) reply(w http.ResponseWriter, r *http.Request, s models.Session, view models.View, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	switch {
	case status >= http.StatusInternalServerError:
		log.Err(err).Msg("session operation failed")
	case err != nil:
		log.Debug().Err(err).Int("status", status).Msg("session operation refused")
	}

	h.write(w, r, s, view, status)
}

// write stores s in the response carrier and sends view as JSON.
func (h *Handler) write(w http.ResponseWriter, r *http.Request, s models.Session, view models.View, status int) {
	if err := h.codec.Save(w, r, s); err != nil {
		logger.FromRequest(r).Err(err).Msg("session could not be written")
		view.Message = &models.Message{Kind: models.MessageError, Text: app.MsgInternalServerError}
		status = http.StatusInternalServerError
	}

	if _, err := utils.WriteJSON(w, view, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
