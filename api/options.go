package api

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the API base URL. A trailing slash is added when missing.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithAPIVersion sets the version segment, e.g. "v3".
func WithAPIVersion(version string) Option {
	return func(c *Client) {
		c.version = version
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithMaxRetries caps the automatic throttling retries per logical request.
// Values outside 0..MaxRetries are clamped.
func WithMaxRetries(retries int) Option {
	return func(c *Client) {
		c.maxRetries = min(max(retries, 0), MaxRetries)
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}
