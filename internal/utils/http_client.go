package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// pushRetryWait bounds the backoff between attempts of a retried request.
const (
	pushRetryWait    = 100 * time.Millisecond
	pushRetryMaxWait = time.Second
)

// HTTPClient is the outbound client used to reach external gateways.
// Requests that fail in transport or get a 5xx answer are retried up to
// the configured count; any other status is handed back to the caller.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient builds a JSON client rooted at baseURL. A zero timeout keeps
// resty's default of no timeout, and zero retries sends every request once.
func NewHTTPClient(baseURL string, timeout time.Duration, retries int) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetRetryCount(retries).
		SetRetryWaitTime(pushRetryWait).
		SetRetryMaxWaitTime(pushRetryMaxWait).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || resp.StatusCode() >= http.StatusInternalServerError
		})
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
