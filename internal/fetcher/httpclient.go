package fetcher

import (
	"log/slog"
	"time"

	"resty.dev/v3"
)

// defaultTimeout bounds a single request when no timeout is configured
const defaultTimeout = 10 * time.Second

// NewHTTPClient creates the HTTP client shared by the provider adapters.
// All emote APIs speak plain JSON over GET; a non-positive timeout falls
// back to the default.
func NewHTTPClient(baseURL string, timeout time.Duration) *resty.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout).
		AddResponseMiddleware(logResponse)

	return client
}

// logResponse logs completed requests for observability
func logResponse(c *resty.Client, r *resty.Response) error {
	slog.Debug("request completed",
		"url", r.Request.URL,
		"status_code", r.StatusCode(),
		"duration", r.Duration())
	return nil
}
