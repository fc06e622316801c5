package monkeylearn

import (
	"context"
	"net/http"

	"github.com/s0up4200/monkeylearn-go/api"
)

// Extractors wraps the extractors/ resource.
type Extractors struct {
	service
}

// List returns one page of extractors.
func (e *Extractors) List(ctx context.Context, lo ListOptions, opts ...CallOption) (*api.Response, error) {
	return e.list(ctx, lo, newCallSettings(opts))
}

// ListAll returns every extractor, walking all pages.
func (e *Extractors) ListAll(ctx context.Context, lo ListOptions, opts ...CallOption) (*api.Response, error) {
	return e.listAll(ctx, lo, newCallSettings(opts))
}

// Detail returns one extractor.
func (e *Extractors) Detail(ctx context.Context, modelID string, opts ...CallOption) (*api.Response, error) {
	if err := validateID("model_id", modelID); err != nil {
		return nil, err
	}
	return e.do(ctx, http.MethodGet, e.endpoint.DetailURL(modelID, "", nil), nil, newCallSettings(opts))
}

// Extract runs the extractor on every input.
func (e *Extractors) Extract(ctx context.Context, modelID string, inputs []Input, opts ...CallOption) (*BatchResult[ExtractionResult], error) {
	if err := validateID("model_id", modelID); err != nil {
		return nil, err
	}
	cs := newCallSettings(opts)
	return runBatched[ExtractionResult](ctx, &e.service, e.endpoint.DetailURL(modelID, "extract", sandboxQuery(cs)), inputs, cs)
}
