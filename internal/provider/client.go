package provider

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// DefaultTimeout bounds one exchange. The upstream APIs have no SLA worth
// waiting out; expiry surfaces as a TransportError.
const DefaultTimeout = 10 * time.Second

// Client performs the single outbound HTTP call per exchange. No retries,
// no caching.
type Client struct {
	adapter Adapter
	http    *http.Client
	logger  *slog.Logger
}

// NewClient wraps an adapter with a timeout-bounded HTTP client.
func NewClient(adapter Adapter, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		adapter: adapter,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Complete posts the rendered prompt to the configured vendor and returns
// the unwrapped content text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := c.adapter.BuildRequestBody(prompt)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.adapter.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	name, value := c.adapter.AuthHeader()
	req.Header.Set(name, value)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("ai request failed", "provider", c.adapter.Name(), "error", err)
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("ai request rejected",
			"provider", c.adapter.Name(), "status", resp.StatusCode, "body", string(raw))
		return "", &TransportError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	c.logger.Debug("ai request completed",
		"provider", c.adapter.Name(), "status", resp.StatusCode, "elapsed", time.Since(start))
	return c.adapter.UnwrapContent(raw)
}
