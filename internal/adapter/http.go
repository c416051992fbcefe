package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-theatre-ai/internal/config"
	"github.com/MKhiriev/go-theatre-ai/internal/logger"
	"github.com/MKhiriev/go-theatre-ai/internal/utils"
	"github.com/MKhiriev/go-theatre-ai/models"
	"github.com/go-resty/resty/v2"
)

const hashHeader = "HashSHA256"

type httpServerAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying client with it and the request timeout. A hash
// key in appCfg makes every request body carry the HashSHA256 header.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}
	if appCfg.HashKey != "" {
		a.hasher = utils.NewHasher(appCfg.HashKey)
	}

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Session(ctx context.Context) (models.View, error) {
	return h.exchange(ctx, resty.MethodGet, "/api/session", nil)
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.View, error) {
	return h.exchange(ctx, resty.MethodPost, "/api/session/login", req)
}

func (h *httpServerAdapter) RequestRegistration(ctx context.Context) (models.View, error) {
	return h.exchange(ctx, resty.MethodPost, "/api/session/registration", nil)
}

func (h *httpServerAdapter) CancelRegistration(ctx context.Context) (models.View, error) {
	return h.exchange(ctx, resty.MethodPost, "/api/session/registration/cancel", nil)
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegistrationRequest) (models.View, error) {
	return h.exchange(ctx, resty.MethodPost, "/api/session/register", req)
}

func (h *httpServerAdapter) Navigate(ctx context.Context, page models.Page) (models.View, error) {
	return h.exchange(ctx, resty.MethodPost, "/api/session/navigate", models.NavigateRequest{Page: page})
}

func (h *httpServerAdapter) Logout(ctx context.Context) (models.View, error) {
	return h.exchange(ctx, resty.MethodPost, "/api/session/logout", nil)
}

func (h *httpServerAdapter) SubmitCreation(ctx context.Context, req models.CreationRequest) (models.View, error) {
	return h.exchange(ctx, resty.MethodPost, "/api/creations", req)
}

func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// exchange performs one session request. The session token of the response
// replaces the one held by the adapter, and the View in the body is returned
// even when the status maps to an error.
func (h *httpServerAdapter) exchange(ctx context.Context, method, path string, body any) (models.View, error) {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return models.View{}, fmt.Errorf("encode %s request: %w", path, err)
		}
		req.SetHeader("Content-Type", "application/json").SetBody(payload)
		if h.hasher != nil {
			req.SetHeader(hashHeader, h.hasher.SumHex(payload))
		}
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return models.View{}, fmt.Errorf("%s request: %w", path, err)
	}

	h.keepToken(resp)

	statusErr := mapHTTPError(resp)

	var view models.View
	if err = json.Unmarshal(resp.Body(), &view); err != nil {
		if statusErr != nil {
			return models.View{}, statusErr
		}
		return models.View{}, fmt.Errorf("decode %s response: %w", path, err)
	}

	if statusErr != nil {
		h.logger.Debug().Err(statusErr).Str("path", path).Msg("server refused session operation")
	}
	return view, statusErr
}

func (h *httpServerAdapter) keepToken(resp *resty.Response) {
	authHeader := resp.Header().Get("Authorization")
	if authHeader == "" {
		return
	}

	token, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		h.logger.Warn().Err(err).Msg("server returned a malformed session token")
		return
	}
	h.SetToken(token)
}
