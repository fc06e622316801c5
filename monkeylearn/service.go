package monkeylearn

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/s0up4200/monkeylearn-go/api"
)

// service is embedded by every resource wrapper.
type service struct {
	api      *api.Client
	endpoint api.Endpoint
	logger   zerolog.Logger
}

// BatchResult is the outcome of a batched operation. Results follow input
// order. After a failed chunk it holds the results of the chunks that
// succeeded before it; read those from Results, since Body fails once the
// error body of the failed chunk is held.
type BatchResult[T any] struct {
	*api.Response
	Results []T
}

type batchPayload struct {
	Data            []Input `json:"data"`
	ProductionModel *bool   `json:"production_model,omitempty"`
}

// do sends one request and wraps the raw response. On failure the returned
// Response still holds the failed raw response.
func (s *service) do(ctx context.Context, method, url string, payload any, cs callSettings) (*api.Response, error) {
	raw, err := s.api.Do(ctx, api.Request{
		Method:           method,
		URL:              url,
		Payload:          payload,
		RetryIfThrottled: cs.retryIfThrottled,
	})
	if err != nil {
		return nil, err
	}
	return api.NewResponse(raw)
}

func (s *service) list(ctx context.Context, lo ListOptions, cs callSettings) (*api.Response, error) {
	if err := ValidateOrderBy(lo.OrderBy); err != nil {
		return nil, err
	}
	return s.do(ctx, http.MethodGet, s.endpoint.ListURL("", listQuery(lo)), nil, cs)
}

// listAll walks pages from lo.Page (default 1) until a page returns fewer
// than PerPage items and aggregates them into one Response.
func (s *service) listAll(ctx context.Context, lo ListOptions, cs callSettings) (*api.Response, error) {
	if err := ValidateOrderBy(lo.OrderBy); err != nil {
		return nil, err
	}
	if lo.PerPage <= 0 {
		lo.PerPage = DefaultPerPage
	}

	resp := &api.Response{}
	for page := max(lo.Page, 1); ; page++ {
		lo.Page = page
		raw, err := s.api.Do(ctx, api.Request{
			Method:           http.MethodGet,
			URL:              s.endpoint.ListURL("", listQuery(lo)),
			RetryIfThrottled: cs.retryIfThrottled,
		})
		if err != nil {
			return resp, err
		}
		if err := resp.Add(raw); err != nil {
			return resp, err
		}

		var items []json.RawMessage
		if err := raw.Decode(&items); err != nil {
			return resp, fmt.Errorf("page %d: %w", page, err)
		}

		s.logger.Debug().
			Str("resource", s.endpoint.Resource).
			Int("page", page).
			Int("count", len(items)).
			Msg("Retrieved list page")

		if len(items) < lo.PerPage {
			return resp, nil
		}
	}
}

func listQuery(lo ListOptions) api.Query {
	var q api.Query
	if lo.Page > 0 {
		q = q.Add("page", strconv.Itoa(lo.Page))
	}
	if lo.PerPage > 0 {
		q = q.Add("per_page", strconv.Itoa(lo.PerPage))
	}
	if len(lo.OrderBy) > 0 {
		q = q.Add("order_by", strings.Join(lo.OrderBy, ","))
	}
	return q
}

func sandboxQuery(cs callSettings) api.Query {
	if !cs.sandbox {
		return nil
	}
	return api.Query{}.Add("sandbox", "1")
}

// runBatched sends inputs in chunks of cs.batchSize, strictly in order, and
// decodes each chunk body as a list of T.
func runBatched[T any](ctx context.Context, s *service, url string, inputs []Input, cs callSettings) (*BatchResult[T], error) {
	if err := ValidateBatchSize(cs.batchSize); err != nil {
		return nil, err
	}
	if err := validateInputs(inputs); err != nil {
		return nil, err
	}

	res := &BatchResult[T]{Response: &api.Response{}}
	for start := 0; start < len(inputs); start += cs.batchSize {
		chunk := inputs[start:min(start+cs.batchSize, len(inputs))]

		s.logger.Debug().
			Str("url", url).
			Int("chunk", start/cs.batchSize).
			Int("size", len(chunk)).
			Msg("Sending batch chunk")

		raw, err := s.api.Do(ctx, api.Request{
			Method:           http.MethodPost,
			URL:              url,
			Payload:          batchPayload{Data: chunk, ProductionModel: cs.productionModel},
			RetryIfThrottled: cs.retryIfThrottled,
		})
		if err != nil {
			return res, err
		}
		if err := res.Add(raw); err != nil {
			return res, err
		}

		var items []T
		if err := raw.Decode(&items); err != nil {
			return res, fmt.Errorf("chunk %d: %w", start/cs.batchSize, err)
		}
		res.Results = append(res.Results, items...)
	}
	return res, nil
}
