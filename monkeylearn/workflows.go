package monkeylearn

import (
	"context"
	"net/http"
	"strconv"

	"github.com/s0up4200/monkeylearn-go/api"
)

// Workflows wraps the workflows/ resource and its nested resources.
type Workflows struct {
	service

	Steps        *WorkflowSteps
	Data         *WorkflowData
	CustomFields *WorkflowCustomFields
}

// WorkflowParams describes a new workflow. Name and DBName are required.
type WorkflowParams struct {
	Name         string               `json:"name"`
	DBName       string               `json:"db_name"`
	Description  string               `json:"description"`
	WebhookURL   *string              `json:"webhook_url,omitempty"`
	Steps        []WorkflowStepParams `json:"steps,omitempty"`
	CustomFields []CustomFieldParams  `json:"custom_fields,omitempty"`
	Sources      map[string]any       `json:"sources,omitempty"`
}

// WorkflowStepParams describes one workflow step.
type WorkflowStepParams struct {
	Name       string          `json:"name"`
	ModelID    string          `json:"model_id"`
	Input      *string         `json:"input,omitempty"`
	Conditions []StepCondition `json:"conditions,omitempty"`
}

// StepCondition restricts a step to data whose parent step produced Value.
type StepCondition struct {
	ParentStep string `json:"parent_step"`
	Operator   string `json:"operator"`
	Value      string `json:"value"`
}

// CustomFieldParams describes a workflow custom field.
type CustomFieldParams struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Create creates a workflow.
func (w *Workflows) Create(ctx context.Context, params WorkflowParams, opts ...CallOption) (*api.Response, error) {
	if params.Name == "" {
		return nil, api.NewValidationError("name", "is required")
	}
	if params.DBName == "" {
		return nil, api.NewValidationError("db_name", "is required")
	}
	for i, step := range params.Steps {
		if err := validateStep(step); err != nil {
			return nil, api.NewValidationError("steps", "step %d: %v", i, err)
		}
	}
	return w.do(ctx, http.MethodPost, w.endpoint.ListURL("", nil), params, newCallSettings(opts))
}

// Detail returns one workflow.
func (w *Workflows) Detail(ctx context.Context, workflowID string, opts ...CallOption) (*api.Response, error) {
	if err := validateID("workflow_id", workflowID); err != nil {
		return nil, err
	}
	return w.do(ctx, http.MethodGet, w.endpoint.DetailURL(workflowID, "", nil), nil, newCallSettings(opts))
}

// Delete removes a workflow.
func (w *Workflows) Delete(ctx context.Context, workflowID string, opts ...CallOption) (*api.Response, error) {
	if err := validateID("workflow_id", workflowID); err != nil {
		return nil, err
	}
	return w.do(ctx, http.MethodDelete, w.endpoint.DetailURL(workflowID, "", nil), nil, newCallSettings(opts))
}

// WorkflowSteps wraps workflows/{id}/steps/.
type WorkflowSteps struct {
	service
}

// Detail returns one step.
func (s *WorkflowSteps) Detail(ctx context.Context, workflowID string, stepID int64, opts ...CallOption) (*api.Response, error) {
	if err := validateID("workflow_id", workflowID); err != nil {
		return nil, err
	}
	return s.do(ctx, http.MethodGet, s.stepURL(workflowID, stepID), nil, newCallSettings(opts))
}

// Create appends a step to a workflow.
func (s *WorkflowSteps) Create(ctx context.Context, workflowID string, params WorkflowStepParams, opts ...CallOption) (*api.Response, error) {
	if err := validateID("workflow_id", workflowID); err != nil {
		return nil, err
	}
	if err := validateStep(params); err != nil {
		return nil, err
	}
	return s.do(ctx, http.MethodPost, s.endpoint.NestedListURL(workflowID, "", nil), params, newCallSettings(opts))
}

// Delete removes a step.
func (s *WorkflowSteps) Delete(ctx context.Context, workflowID string, stepID int64, opts ...CallOption) (*api.Response, error) {
	if err := validateID("workflow_id", workflowID); err != nil {
		return nil, err
	}
	return s.do(ctx, http.MethodDelete, s.stepURL(workflowID, stepID), nil, newCallSettings(opts))
}

func (s *WorkflowSteps) stepURL(workflowID string, stepID int64) string {
	return s.endpoint.NestedDetailURL(workflowID, strconv.FormatInt(stepID, 10), "", nil)
}

func validateStep(step WorkflowStepParams) error {
	if step.Name == "" {
		return api.NewValidationError("name", "is required")
	}
	return validateID("model_id", step.ModelID)
}

// WorkflowData wraps workflows/{id}/data/.
type WorkflowData struct {
	service
}

// DataFilter narrows a workflow data listing. Nil and zero fields are omitted.
type DataFilter struct {
	BatchID               *int64
	IsProcessed           *bool
	SentToProcessDateFrom string
	SentToProcessDateTo   string
	Page                  int
	PerPage               int
}

// Create sends records to a workflow for processing.
func (d *WorkflowData) Create(ctx context.Context, workflowID string, data []map[string]any, opts ...CallOption) (*api.Response, error) {
	if err := validateID("workflow_id", workflowID); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, api.NewValidationError("data", "must contain at least one record")
	}
	for i, rec := range data {
		if rec == nil {
			return nil, api.NewValidationError("data", "record %d must be a JSON object", i)
		}
	}
	payload := struct {
		Data []map[string]any `json:"data"`
	}{Data: data}
	return d.do(ctx, http.MethodPost, d.endpoint.NestedListURL(workflowID, "", nil), payload, newCallSettings(opts))
}

// List returns workflow records matching filter.
func (d *WorkflowData) List(ctx context.Context, workflowID string, filter DataFilter, opts ...CallOption) (*api.Response, error) {
	if err := validateID("workflow_id", workflowID); err != nil {
		return nil, err
	}

	var q api.Query
	if filter.BatchID != nil {
		q = q.Add("batch_id", strconv.FormatInt(*filter.BatchID, 10))
	}
	if filter.IsProcessed != nil {
		q = q.Add("is_processed", strconv.FormatBool(*filter.IsProcessed))
	}
	if filter.SentToProcessDateFrom != "" {
		q = q.Add("sent_to_process_date_from", filter.SentToProcessDateFrom)
	}
	if filter.SentToProcessDateTo != "" {
		q = q.Add("sent_to_process_date_to", filter.SentToProcessDateTo)
	}
	if filter.Page > 0 {
		q = q.Add("page", strconv.Itoa(filter.Page))
	}
	if filter.PerPage > 0 {
		q = q.Add("per_page", strconv.Itoa(filter.PerPage))
	}
	return d.do(ctx, http.MethodGet, d.endpoint.NestedListURL(workflowID, "", q), nil, newCallSettings(opts))
}

// WorkflowCustomFields wraps workflows/{id}/custom-fields/.
type WorkflowCustomFields struct {
	service
}

// Create adds a custom field of dataType ("string", "date", "text", "integer",
// "float" or "bool").
func (f *WorkflowCustomFields) Create(ctx context.Context, workflowID, name, dataType string, opts ...CallOption) (*api.Response, error) {
	if err := validateID("workflow_id", workflowID); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, api.NewValidationError("name", "is required")
	}
	if dataType == "" {
		return nil, api.NewValidationError("type", "is required")
	}
	payload := CustomFieldParams{Name: name, Type: dataType}
	return f.do(ctx, http.MethodPost, f.endpoint.NestedListURL(workflowID, "", nil), payload, newCallSettings(opts))
}
