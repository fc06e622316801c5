package monkeylearn

import (
	"context"
	"net/http"

	"github.com/s0up4200/monkeylearn-go/api"
)

// Clusters wraps the clusters/ resource.
type Clusters struct {
	service
}

// ClusterParams holds the fields of a cluster model create call. Only
// non-nil fields are sent.
type ClusterParams struct {
	Name                *string  `json:"name,omitempty"`
	Description         *string  `json:"description,omitempty"`
	TrainState          *string  `json:"train_state,omitempty"`
	Language            *string  `json:"language,omitempty"`
	NgramRange          []int    `json:"ngram_range,omitempty"`
	UseStemmer          *bool    `json:"use_stemmer,omitempty"`
	StopWords           []string `json:"stop_words,omitempty"`
	MaxFeatures         *int     `json:"max_features,omitempty"`
	StripStopwords      *bool    `json:"strip_stopwords,omitempty"`
	IsTwitterData       *bool    `json:"is_twitter_data,omitempty"`
	Industry            *string  `json:"industry,omitempty"`
	TextType            *string  `json:"text_type,omitempty"`
	Permissions         *string  `json:"permissions,omitempty"`
	NClusters           *int     `json:"n_clusters,omitempty"`
	AutoClusters        *bool    `json:"auto_clusters,omitempty"`
	ClusteringAlgorithm *string  `json:"clustering_algorithm,omitempty"`
}

// ClusterSample is one text uploaded to a cluster model, optionally labelled
// with one or more tag names.
type ClusterSample struct {
	Text string   `json:"text"`
	Tags []string `json:"tag,omitempty"`
}

// List returns one page of cluster models.
func (c *Clusters) List(ctx context.Context, lo ListOptions, opts ...CallOption) (*api.Response, error) {
	return c.list(ctx, lo, newCallSettings(opts))
}

// ListAll returns every cluster model, walking all pages.
func (c *Clusters) ListAll(ctx context.Context, lo ListOptions, opts ...CallOption) (*api.Response, error) {
	return c.listAll(ctx, lo, newCallSettings(opts))
}

// Create creates a cluster model. Name is required.
func (c *Clusters) Create(ctx context.Context, params ClusterParams, opts ...CallOption) (*api.Response, error) {
	if params.Name == nil || *params.Name == "" {
		return nil, api.NewValidationError("name", "is required")
	}
	if params.NClusters != nil && *params.NClusters < 1 {
		return nil, api.NewValidationError("n_clusters", "must be at least 1, got %d", *params.NClusters)
	}
	return c.do(ctx, http.MethodPost, c.endpoint.ListURL("", nil), params, newCallSettings(opts))
}

// UploadSamples adds texts to a cluster model.
func (c *Clusters) UploadSamples(ctx context.Context, modelID string, samples []ClusterSample, opts ...CallOption) (*api.Response, error) {
	if err := validateID("model_id", modelID); err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, api.NewValidationError("samples", "must contain at least one sample")
	}
	for i, s := range samples {
		if s.Text == "" {
			return nil, api.NewValidationError("samples", "empty text at position %d", i)
		}
		for _, tag := range s.Tags {
			if tag == "" {
				return nil, api.NewValidationError("tag", "empty tag name in sample %d", i)
			}
		}
	}
	payload := struct {
		Samples []ClusterSample `json:"samples"`
	}{Samples: samples}
	return c.do(ctx, http.MethodPost, c.endpoint.DetailURL(modelID, "samples", nil), payload, newCallSettings(opts))
}

// Detail returns one cluster model.
func (c *Clusters) Detail(ctx context.Context, modelID string, opts ...CallOption) (*api.Response, error) {
	if err := validateID("model_id", modelID); err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodGet, c.endpoint.DetailURL(modelID, "", nil), nil, newCallSettings(opts))
}

// Delete removes a cluster model.
func (c *Clusters) Delete(ctx context.Context, modelID string, opts ...CallOption) (*api.Response, error) {
	if err := validateID("model_id", modelID); err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodDelete, c.endpoint.DetailURL(modelID, "", nil), nil, newCallSettings(opts))
}

// Train starts training a cluster model.
func (c *Clusters) Train(ctx context.Context, modelID string, opts ...CallOption) (*api.Response, error) {
	if err := validateID("model_id", modelID); err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, c.endpoint.DetailURL(modelID, "train", nil), nil, newCallSettings(opts))
}

// Deploy promotes the latest trained version to production.
func (c *Clusters) Deploy(ctx context.Context, modelID string, opts ...CallOption) (*api.Response, error) {
	if err := validateID("model_id", modelID); err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, c.endpoint.DetailURL(modelID, "deploy", nil), nil, newCallSettings(opts))
}

// Predict assigns every input to a cluster.
func (c *Clusters) Predict(ctx context.Context, modelID string, inputs []Input, opts ...CallOption) (*BatchResult[ClusterResult], error) {
	if err := validateID("model_id", modelID); err != nil {
		return nil, err
	}
	cs := newCallSettings(opts)
	return runBatched[ClusterResult](ctx, &c.service, c.endpoint.DetailURL(modelID, "predict", sandboxQuery(cs)), inputs, cs)
}
