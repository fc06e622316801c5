package monkeylearn

import (
	"context"
	"net/http"
	"strconv"

	"github.com/s0up4200/monkeylearn-go/api"
)

// ClassifierTags wraps classifiers/{id}/tags/.
type ClassifierTags struct {
	service
}

// TagParams holds the fields of a tag create or edit call.
type TagParams struct {
	Name     *string `json:"name,omitempty"`
	ParentID *int64  `json:"parent_id,omitempty"`
}

// Detail returns one tag.
func (t *ClassifierTags) Detail(ctx context.Context, modelID string, tagID int64, opts ...CallOption) (*api.Response, error) {
	if err := validateID("model_id", modelID); err != nil {
		return nil, err
	}
	return t.do(ctx, http.MethodGet, t.tagURL(modelID, tagID), nil, newCallSettings(opts))
}

// Create adds a tag. Name is required.
func (t *ClassifierTags) Create(ctx context.Context, modelID string, params TagParams, opts ...CallOption) (*api.Response, error) {
	if err := validateID("model_id", modelID); err != nil {
		return nil, err
	}
	if params.Name == nil || *params.Name == "" {
		return nil, api.NewValidationError("name", "is required")
	}
	return t.do(ctx, http.MethodPost, t.endpoint.NestedListURL(modelID, "", nil), params, newCallSettings(opts))
}

// Edit renames or moves a tag.
func (t *ClassifierTags) Edit(ctx context.Context, modelID string, tagID int64, params TagParams, opts ...CallOption) (*api.Response, error) {
	if err := validateID("model_id", modelID); err != nil {
		return nil, err
	}
	return t.do(ctx, http.MethodPatch, t.tagURL(modelID, tagID), params, newCallSettings(opts))
}

// Delete removes a tag. When moveDataTo is non-nil the tag's samples are
// reassigned to that tag.
func (t *ClassifierTags) Delete(ctx context.Context, modelID string, tagID int64, moveDataTo *int64, opts ...CallOption) (*api.Response, error) {
	if err := validateID("model_id", modelID); err != nil {
		return nil, err
	}

	var payload any
	if moveDataTo != nil {
		payload = struct {
			MoveDataTo int64 `json:"move_data_to"`
		}{MoveDataTo: *moveDataTo}
	}
	return t.do(ctx, http.MethodDelete, t.tagURL(modelID, tagID), payload, newCallSettings(opts))
}

func (t *ClassifierTags) tagURL(modelID string, tagID int64) string {
	return t.endpoint.NestedDetailURL(modelID, strconv.FormatInt(tagID, 10), "", nil)
}
