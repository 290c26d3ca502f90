// internal/common/http/client.go
package http

import (
	"context"
	"net/http"
	"time"

	"lead-intake/internal/common/logger"
)

// Client is the outbound HTTP client used for Zoho calls. The timeout is the
// only limit applied to a single outbound call.
type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration, log logger.Logger) *Client {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &loggingTransport{
				next:   http.DefaultTransport,
				logger: log,
			},
		},
	}
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.httpClient.Do(req)
}

func (c *Client) DoWithContext(ctx context.Context, req *http.Request) (*http.Response, error) {
	req = req.WithContext(ctx)
	return c.httpClient.Do(req)
}

// HTTPClient exposes the underlying client for libraries that take one.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// loggingTransport logs method, host, path and status of every outbound call.
// Query strings and bodies are never logged; they carry credentials.
type loggingTransport struct {
	next   http.RoundTripper
	logger logger.Logger
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)

	fields := map[string]interface{}{
		"method":     req.Method,
		"host":       req.URL.Host,
		"path":       req.URL.Path,
		"durationMs": time.Since(start).Milliseconds(),
	}
	if err != nil {
		fields["error"] = err.Error()
		t.logger.Warn("Outbound request failed", fields)
		return nil, err
	}

	fields["statusCode"] = resp.StatusCode
	t.logger.Debug("Outbound request completed", fields)
	return resp, nil
}
