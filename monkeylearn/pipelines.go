package monkeylearn

import (
	"context"
	"net/http"

	"github.com/s0up4200/monkeylearn-go/api"
)

// Pipelines wraps the pipelines/ resource.
type Pipelines struct {
	service
}

// Run executes a pipeline on data, which must be a non-nil JSON object.
// Use WithSandbox to run against the sandbox models.
func (p *Pipelines) Run(ctx context.Context, pipelineID string, data map[string]any, opts ...CallOption) (*api.Response, error) {
	if err := validateID("pipeline_id", pipelineID); err != nil {
		return nil, err
	}
	if data == nil {
		return nil, api.NewValidationError("data", "must be a JSON object")
	}
	cs := newCallSettings(opts)
	return p.do(ctx, http.MethodPost, p.endpoint.DetailURL(pipelineID, "run", sandboxQuery(cs)), data, cs)
}
