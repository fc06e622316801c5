package monkeylearn

import (
	"github.com/rs/zerolog"

	"github.com/s0up4200/monkeylearn-go/api"
)

// Client groups the resource wrappers of the MonkeyLearn API.
type Client struct {
	api *api.Client

	Classifiers *Classifiers
	Extractors  *Extractors
	Clusters    *Clusters
	Workflows   *Workflows
	Pipelines   *Pipelines
}

// New creates a client authenticated with token.
func New(token string, logger zerolog.Logger, opts ...api.Option) (*Client, error) {
	c, err := api.New(token, logger, opts...)
	if err != nil {
		return nil, err
	}
	return NewFromAPI(c), nil
}

// NewFromAPI wraps an existing request client.
func NewFromAPI(c *api.Client) *Client {
	svc := func(resource string) service {
		return service{api: c, endpoint: c.Endpoint(resource), logger: c.Logger()}
	}
	nested := func(parent, child string) service {
		return service{api: c, endpoint: c.NestedEndpoint(parent, child), logger: c.Logger()}
	}

	return &Client{
		api: c,
		Classifiers: &Classifiers{
			service: svc("classifiers"),
			Tags:    &ClassifierTags{service: nested("classifiers", "tags")},
		},
		Extractors: &Extractors{service: svc("extractors")},
		Clusters:   &Clusters{service: svc("clusters")},
		Workflows: &Workflows{
			service:      svc("workflows"),
			Steps:        &WorkflowSteps{service: nested("workflows", "steps")},
			Data:         &WorkflowData{service: nested("workflows", "data")},
			CustomFields: &WorkflowCustomFields{service: nested("workflows", "custom-fields")},
		},
		Pipelines: &Pipelines{service: svc("pipelines")},
	}
}

// API returns the underlying request client.
func (c *Client) API() *api.Client {
	return c.api
}
