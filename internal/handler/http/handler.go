package http

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-theatre-ai/internal/config"
	"github.com/MKhiriev/go-theatre-ai/internal/logger"
	"github.com/MKhiriev/go-theatre-ai/internal/service"
	"github.com/MKhiriev/go-theatre-ai/internal/session"
	"github.com/MKhiriev/go-theatre-ai/internal/utils"
)

type Handler struct {
	controller *session.Controller
	services   *service.Services
	codec      sessionCodec
	hasher     *utils.Hasher

	// requestTimeout bounds the context of every routed request. Zero
	// disables the deadline.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handler, error) {
	codec, err := newSessionCodec(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("error creating session codec: %w", err)
	}

	h := &Handler{
		controller: session.NewController(services, logger),
		services:   services,
		codec:      codec,

		requestTimeout: cfg.Server.RequestTimeout,

		logger: logger,
	}
	if cfg.App.HashKey != "" {
		h.hasher = utils.NewHasher(cfg.App.HashKey)
	}

	logger.Info().
		Str("session_transport", cfg.App.SessionTransport).
		Dur("request_timeout", h.requestTimeout).
		Bool("integrity_check", h.hasher != nil).
		Msg("http handler created")
	return h, nil
}
