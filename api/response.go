package api

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Rate-limit headers sent with every response.
const (
	HeaderQueryLimit     = "X-Query-Limit-Limit"
	HeaderQueryRemaining = "X-Query-Limit-Remaining"
	HeaderRequestQueries = "X-Query-Limit-Request-Queries"
)

// Response aggregates the raw responses of one logical operation in call
// order. Every held response was either successful or classified as an error
// when it was added.
type Response struct {
	raws []*RawResponse
}

// NewResponse creates a Response from existing raw responses. It stops at
// the first failure and returns the classified error together with the
// partially filled Response.
func NewResponse(raws ...*RawResponse) (*Response, error) {
	r := &Response{}
	for _, raw := range raws {
		if err := r.Add(raw); err != nil {
			return r, err
		}
	}
	return r, nil
}

// Add appends raw. A non-success response is appended first and then
// returned as an *Error, so callers can inspect the partial state.
func (r *Response) Add(raw *RawResponse) error {
	r.raws = append(r.raws, raw)
	if apiErr := Classify(raw, r); apiErr != nil {
		return apiErr
	}
	return nil
}

// RequestCount returns the number of held responses.
func (r *Response) RequestCount() int {
	return len(r.raws)
}

// Responses returns the held responses in call order.
func (r *Response) Responses() []*RawResponse {
	out := make([]*RawResponse, len(r.raws))
	copy(out, r.raws)
	return out
}

// SuccessfulResponses returns the 2xx responses in call order.
func (r *Response) SuccessfulResponses() []*RawResponse {
	var out []*RawResponse
	for _, raw := range r.raws {
		if raw.OK() {
			out = append(out, raw)
		}
	}
	return out
}

// FailedResponses returns the non-2xx responses in call order.
func (r *Response) FailedResponses() []*RawResponse {
	var out []*RawResponse
	for _, raw := range r.raws {
		if !raw.OK() {
			out = append(out, raw)
		}
	}
	return out
}

// Body returns the combined JSON body. A single response yields its body;
// several responses yield the concatenation of their list bodies in call
// order. It returns nil for an empty Response.
//
// After a failed chunk or page the held error body is an object, so Body
// fails. Read partial data from SuccessfulResponses instead, or from
// BatchResult.Results in the monkeylearn package.
func (r *Response) Body() (json.RawMessage, error) {
	switch len(r.raws) {
	case 0:
		return nil, nil
	case 1:
		return json.RawMessage(r.raws[0].Body), nil
	}

	var items []json.RawMessage
	for i, raw := range r.raws {
		var chunk []json.RawMessage
		if err := json.Unmarshal(raw.Body, &chunk); err != nil {
			return nil, fmt.Errorf("response %d body is not a JSON list: %w", i, err)
		}
		items = append(items, chunk...)
	}
	if items == nil {
		items = []json.RawMessage{}
	}

	combined, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to combine response bodies: %w", err)
	}
	return combined, nil
}

// Decode unmarshals the combined body into v.
func (r *Response) Decode(v any) error {
	body, err := r.Body()
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return fmt.Errorf("response has no body")
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

// PlanQueriesAllowed returns the plan query limit from the last response.
func (r *Response) PlanQueriesAllowed() (int, bool) {
	return r.lastHeaderInt(HeaderQueryLimit)
}

// PlanQueriesRemaining returns the remaining plan queries from the last response.
func (r *Response) PlanQueriesRemaining() (int, bool) {
	return r.lastHeaderInt(HeaderQueryRemaining)
}

// RequestQueriesUsed sums the queries charged by every held response.
// Responses without the header count as zero.
func (r *Response) RequestQueriesUsed() int {
	total := 0
	for _, raw := range r.raws {
		if n, ok := headerInt(raw, HeaderRequestQueries); ok {
			total += n
		}
	}
	return total
}

func (r *Response) lastHeaderInt(name string) (int, bool) {
	if len(r.raws) == 0 {
		return 0, false
	}
	return headerInt(r.raws[len(r.raws)-1], name)
}

func headerInt(raw *RawResponse, name string) (int, bool) {
	if raw.Header == nil {
		return 0, false
	}
	v := raw.Header.Get(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
