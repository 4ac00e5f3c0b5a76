package notify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-db-journal/internal/config"
	"github.com/MKhiriev/go-db-journal/internal/logger"
	"github.com/MKhiriev/go-db-journal/internal/utils"
	"github.com/MKhiriev/go-db-journal/models"
	"github.com/go-resty/resty/v2"
)

type pushRequest struct {
	Tokens  []string           `json:"tokens"`
	Payload models.PushPayload `json:"payload"`
}

// HTTPPusher posts notifications to a push gateway.
type HTTPPusher struct {
	client *utils.HTTPClient
	url    string
	token  string
}

// NewHTTPPusher validates cfg.PushURL and builds a pusher with cfg.Timeout
// applied to every attempt and cfg.Retries extra attempts on server errors. A PushToken, when set, is sent as a bearer token.
func NewHTTPPusher(cfg config.Notify) (*HTTPPusher, error) {
	pushURL, err := normalizeURL(cfg.PushURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPushURL, err)
	}

	return &HTTPPusher{
		client: utils.NewHTTPClient("", cfg.Timeout, cfg.Retries),
		url:    pushURL,
		token:  strings.TrimSpace(cfg.PushToken),
	}, nil
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
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

func (p *HTTPPusher) Push(ctx context.Context, tokens []string, payload models.PushPayload) error {
	log := logger.FromContext(ctx)

	req := p.client.R().
		SetContext(ctx).
		SetBody(pushRequest{Tokens: tokens, Payload: payload})
	if p.token != "" {
		req.SetAuthToken(p.token)
	}

	resp, err := req.Post(p.url)
	if err != nil {
		log.Err(err).Str("func", "HTTPPusher.Push").Msg("push gateway request failed")
		return fmt.Errorf("%w: %w", ErrPushUnavailable, err)
	}
	if err = mapPushResponse(resp); err != nil {
		log.Err(err).Str("func", "HTTPPusher.Push").Int("status", resp.StatusCode()).Msg("push rejected")
		return err
	}
	return nil
}

func mapPushResponse(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: http %d: %s", ErrPushRejected, resp.StatusCode(), body)
}

// LogPusher records notifications in the log instead of delivering them.
type LogPusher struct{}

func (LogPusher) Push(ctx context.Context, tokens []string, payload models.PushPayload) error {
	logger.FromContext(ctx).Info().
		Str("func", "LogPusher.Push").
		Int("devices", len(tokens)).
		Str("resource", payload.Resource).
		Str("etag", payload.ETag).
		Msg("push notification")
	return nil
}
