package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the public MonkeyLearn endpoint.
	DefaultBaseURL = "https://api.monkeylearn.com/"
	// DefaultAPIVersion is the version segment inserted after the base URL.
	DefaultAPIVersion = "v3"
	// MaxRetries is the hard cap on throttling retries per logical request.
	MaxRetries = 2

	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "monkeylearn-go"
)

// Client issues authenticated requests against the MonkeyLearn API.
type Client struct {
	baseURL    string
	version    string
	token      string
	userAgent  string
	timeout    time.Duration
	maxRetries int
	httpClient *http.Client
	logger     zerolog.Logger

	// sleep blocks for a throttling cool-down; replaced in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates a new API client authenticated with token.
func New(token string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("monkeylearn API token is required")
	}

	c := &Client{
		baseURL:    DefaultBaseURL,
		version:    DefaultAPIVersion,
		token:      token,
		userAgent:  defaultUserAgent,
		maxRetries: MaxRetries,
		logger:     logger,
		sleep:      sleepContext,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.baseURL == "" {
		return nil, fmt.Errorf("monkeylearn base URL is required")
	}
	if !strings.HasSuffix(c.baseURL, "/") {
		c.baseURL += "/"
	}
	if c.httpClient == nil {
		timeout := c.timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		c.httpClient = &http.Client{Timeout: timeout}
	}

	return c, nil
}

// Endpoint returns the descriptor of a top level resource type.
func (c *Client) Endpoint(resource string) Endpoint {
	return Endpoint{BaseURL: c.baseURL, Version: c.version, Resource: resource}
}

// NestedEndpoint returns the descriptor of a child resource of parent.
func (c *Client) NestedEndpoint(parent, child string) Endpoint {
	return Endpoint{BaseURL: c.baseURL, Version: c.version, Resource: parent, Child: child}
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Logger returns the client logger.
func (c *Client) Logger() zerolog.Logger {
	return c.logger
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
