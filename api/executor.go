package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// concurrencyWait is the fixed cool-down for concurrency-level throttling.
const concurrencyWait = 2 * time.Second

// Request is one logical API call.
type Request struct {
	Method string
	URL    string
	// Payload is JSON encoded when non-nil.
	Payload any
	// RetryIfThrottled enables waiting and retrying on known throttling codes.
	RetryIfThrottled bool
}

// Do performs a logical request. It retries throttled responses with a known
// cool-down up to the configured cap and returns the final raw response,
// which may still be a failure. Only transport and encoding problems are
// returned as errors; non-success statuses are left for Classify.
func (c *Client) Do(ctx context.Context, req Request) (*RawResponse, error) {
	var payload []byte
	if req.Payload != nil {
		data, err := json.Marshal(req.Payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request payload: %w", err)
		}
		payload = data
	}

	retriesLeft := c.maxRetries
	for attempt := 1; ; attempt++ {
		raw, err := c.send(ctx, req.Method, req.URL, payload, attempt)
		if err != nil {
			return nil, err
		}

		if !req.RetryIfThrottled || raw.StatusCode != http.StatusTooManyRequests {
			return raw, nil
		}

		wait, code, ok := throttleWait(raw)
		if !ok {
			return raw, nil
		}

		if retriesLeft == 0 {
			c.logger.Warn().
				Str("url", req.URL).
				Str("error_code", code).
				Int("attempts", attempt).
				Msg("Request still throttled, giving up")
			return raw, nil
		}
		retriesLeft--

		c.logger.Warn().
			Str("url", req.URL).
			Str("error_code", code).
			Dur("wait", wait).
			Int("retries_left", retriesLeft).
			Msg("Request throttled, waiting before retry")

		if err := c.sleep(ctx, wait); err != nil {
			return nil, err
		}
	}
}

// send performs one physical attempt and reads the whole body.
func (c *Client) send(ctx context.Context, method, url string, payload []byte, attempt int) (*RawResponse, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Token "+c.token)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", url).
		Int("attempt", attempt).
		Msg("Sending MonkeyLearn API request")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Method: method, URL: url, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, URL: url, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", url).
		Int("status", resp.StatusCode).
		Str("request_queries", resp.Header.Get(HeaderRequestQueries)).
		Msg("Received MonkeyLearn API response")

	return &RawResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

// throttleWait returns the cool-down of a 429 response. ok is false when the
// response does not describe a retryable throttling condition.
func throttleWait(raw *RawResponse) (wait time.Duration, code string, ok bool) {
	body, parsed := parseErrorBody(raw)
	if !parsed {
		return 0, "", false
	}

	switch KindFor(raw.StatusCode, body.ErrorCode) {
	case KindPlanRateLimit:
		// No announced wait, or a zero one, means the plan limit will not clear by retrying
		n, found := waitSeconds(body.detailText())
		if !found || n == 0 {
			return 0, body.ErrorCode, false
		}
		return time.Duration(n) * time.Second, body.ErrorCode, true
	case KindConcurrencyRateLimit:
		return concurrencyWait, body.ErrorCode, true
	default:
		return 0, body.ErrorCode, false
	}
}
