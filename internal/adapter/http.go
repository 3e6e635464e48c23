package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/models"
)

const traceIDHeader = "X-Trace-ID"

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter]
// for the server at address. A missing scheme defaults to http.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(address string, requestTimeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Ping(ctx context.Context) (string, error) {
	var reply string
	if err := h.getJSON(ctx, "/ping", &reply); err != nil {
		return "", fmt.Errorf("ping request: %w", err)
	}

	return reply, nil
}

func (h *httpServerAdapter) Secret(ctx context.Context) (string, error) {
	var reply string
	if err := h.getJSON(ctx, "/secret", &reply); err != nil {
		return "", fmt.Errorf("secret request: %w", err)
	}

	return reply, nil
}

func (h *httpServerAdapter) UserInfo(ctx context.Context) (models.UserInfo, error) {
	var info models.UserInfo
	if err := h.getJSON(ctx, "/userinfo", &info); err != nil {
		return models.UserInfo{}, fmt.Errorf("userinfo request: %w", err)
	}

	return info, nil
}

// getJSON performs an authenticated GET of path and decodes the JSON reply
// into out.
func (h *httpServerAdapter) getJSON(ctx context.Context, path string, out any) error {
	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return err
	}

	h.logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode()).
		Str("trace_id", resp.Header().Get(traceIDHeader)).
		Msg("server replied")

	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
