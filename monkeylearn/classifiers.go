package monkeylearn

import (
	"context"
	"net/http"

	"github.com/s0up4200/monkeylearn-go/api"
)

// Classifiers wraps the classifiers/ resource.
type Classifiers struct {
	service

	Tags *ClassifierTags
}

// ClassifierParams holds the fields of a classifier create or edit call.
// Only non-nil fields are sent.
type ClassifierParams struct {
	Name                  *string  `json:"name,omitempty"`
	Description           *string  `json:"description,omitempty"`
	Algorithm             *string  `json:"algorithm,omitempty"`
	Language              *string  `json:"language,omitempty"`
	MaxFeatures           *int     `json:"max_features,omitempty"`
	NgramRange            []int    `json:"ngram_range,omitempty"`
	UseStemming           *bool    `json:"use_stemming,omitempty"`
	PreprocessNumbers     *bool    `json:"preprocess_numbers,omitempty"`
	PreprocessSocialMedia *bool    `json:"preprocess_social_media,omitempty"`
	NormalizeWeights      *bool    `json:"normalize_weights,omitempty"`
	Stopwords             []string `json:"stopwords,omitempty"`
	Whitelist             []string `json:"whitelist,omitempty"`
}

// List returns one page of classifiers.
func (c *Classifiers) List(ctx context.Context, lo ListOptions, opts ...CallOption) (*api.Response, error) {
	return c.list(ctx, lo, newCallSettings(opts))
}

// ListAll returns every classifier, walking all pages.
func (c *Classifiers) ListAll(ctx context.Context, lo ListOptions, opts ...CallOption) (*api.Response, error) {
	return c.listAll(ctx, lo, newCallSettings(opts))
}

// Detail returns one classifier.
func (c *Classifiers) Detail(ctx context.Context, modelID string, opts ...CallOption) (*api.Response, error) {
	if err := validateID("model_id", modelID); err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodGet, c.endpoint.DetailURL(modelID, "", nil), nil, newCallSettings(opts))
}

// Create creates a classifier. Name is required.
func (c *Classifiers) Create(ctx context.Context, params ClassifierParams, opts ...CallOption) (*api.Response, error) {
	if params.Name == nil || *params.Name == "" {
		return nil, api.NewValidationError("name", "is required")
	}
	return c.do(ctx, http.MethodPost, c.endpoint.ListURL("", nil), params, newCallSettings(opts))
}

// Edit updates the supplied fields of a classifier.
func (c *Classifiers) Edit(ctx context.Context, modelID string, params ClassifierParams, opts ...CallOption) (*api.Response, error) {
	if err := validateID("model_id", modelID); err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPatch, c.endpoint.DetailURL(modelID, "", nil), params, newCallSettings(opts))
}

// Delete removes a classifier.
func (c *Classifiers) Delete(ctx context.Context, modelID string, opts ...CallOption) (*api.Response, error) {
	if err := validateID("model_id", modelID); err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodDelete, c.endpoint.DetailURL(modelID, "", nil), nil, newCallSettings(opts))
}

// Deploy promotes the latest trained version to production.
func (c *Classifiers) Deploy(ctx context.Context, modelID string, opts ...CallOption) (*api.Response, error) {
	return c.action(ctx, modelID, "deploy", opts)
}

// Train starts training a classifier.
func (c *Classifiers) Train(ctx context.Context, modelID string, opts ...CallOption) (*api.Response, error) {
	return c.action(ctx, modelID, "train", opts)
}

// Classify predicts tags for every input.
func (c *Classifiers) Classify(ctx context.Context, modelID string, inputs []Input, opts ...CallOption) (*BatchResult[ClassificationResult], error) {
	if err := validateID("model_id", modelID); err != nil {
		return nil, err
	}
	cs := newCallSettings(opts)
	return runBatched[ClassificationResult](ctx, &c.service, c.endpoint.DetailURL(modelID, "classify", sandboxQuery(cs)), inputs, cs)
}

// UploadData adds training samples to a classifier.
func (c *Classifiers) UploadData(ctx context.Context, modelID string, samples []Sample, opts ...CallOption) (*api.Response, error) {
	if err := validateID("model_id", modelID); err != nil {
		return nil, err
	}
	if err := validateSamples(samples); err != nil {
		return nil, err
	}
	payload := struct {
		Data []Sample `json:"data"`
	}{Data: samples}
	return c.do(ctx, http.MethodPost, c.endpoint.DetailURL(modelID, "data", nil), payload, newCallSettings(opts))
}

func (c *Classifiers) action(ctx context.Context, modelID, action string, opts []CallOption) (*api.Response, error) {
	if err := validateID("model_id", modelID); err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, c.endpoint.DetailURL(modelID, action, nil), nil, newCallSettings(opts))
}
