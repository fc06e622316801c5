package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// RawResponse is one physical HTTP response with its body fully read.
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports whether the status code is 2xx.
func (r *RawResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the JSON body into v.
func (r *RawResponse) Decode(v any) error {
	if len(r.Body) == 0 {
		return fmt.Errorf("empty response body (status %d)", r.StatusCode)
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

// errorBody is the JSON shape of throttling and error responses.
type errorBody struct {
	Detail    json.RawMessage `json:"detail"`
	ErrorCode string          `json:"error_code"`
}

// detailText returns detail as plain text. Validation failures may carry a
// structured detail, which is kept as its JSON form.
func (b errorBody) detailText() string {
	if len(b.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(b.Detail, &s); err == nil {
		return s
	}
	return string(b.Detail)
}

// parseErrorBody decodes the body of an error response. ok is false when the
// body is missing or not a JSON object.
func parseErrorBody(r *RawResponse) (errorBody, bool) {
	var body errorBody
	if len(r.Body) == 0 {
		return body, false
	}
	if err := json.Unmarshal(r.Body, &body); err != nil {
		return body, false
	}
	return body, true
}
