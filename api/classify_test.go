package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyMapping(t *testing.T) {
	tests := []struct {
		status   int
		code     string
		expected Kind
		sentinel error
	}{
		{422, "", KindRequestParams, ErrRequestParams},
		{422, "SOMETHING", KindRequestParams, ErrRequestParams},
		{401, "", KindAuthentication, ErrAuthentication},
		{403, "MODEL_LIMIT", KindModelLimit, ErrModelLimit},
		{403, "", KindForbidden, ErrForbidden},
		{403, "PERMISSION_DENIED", KindForbidden, ErrForbidden},
		{404, "MODEL_NOT_FOUND", KindModelNotFound, ErrModelNotFound},
		{404, "TAG_NOT_FOUND", KindTagNotFound, ErrTagNotFound},
		{404, "CATEGORY_NOT_FOUND", KindCategoryNotFound, ErrCategoryNotFound},
		{404, "", KindResourceNotFound, ErrResourceNotFound},
		{404, "WORKFLOW_NOT_FOUND", KindResourceNotFound, ErrResourceNotFound},
		{429, "PLAN_RATE_LIMIT", KindPlanRateLimit, ErrPlanRateLimit},
		{429, "REQUEST_LIMIT", KindPlanRateLimit, ErrPlanRateLimit},
		{429, "CONCURRENCY_RATE_LIMIT", KindConcurrencyRateLimit, ErrConcurrencyRateLimit},
		{429, "REQUEST_CONCURRENCY_LIMIT", KindConcurrencyRateLimit, ErrConcurrencyRateLimit},
		{429, "PLAN_QUERY_LIMIT", KindPlanQueryLimit, ErrPlanQueryLimit},
		{429, "", KindRateLimit, ErrRateLimit},
		{429, "UNKNOWN", KindRateLimit, ErrRateLimit},
		{423, "", KindModelState, ErrModelState},
		{400, "", KindResponse, ErrResponse},
		{500, "INTERNAL", KindResponse, ErrResponse},
		{502, "", KindResponse, ErrResponse},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d %s", tt.status, tt.code), func(t *testing.T) {
			body := fmt.Sprintf(`{"detail": "something failed", "error_code": %q}`, tt.code)
			if tt.code == "" {
				body = `{"detail": "something failed"}`
			}

			apiErr := Classify(rawJSON(tt.status, body, 0), nil)
			require.NotNil(t, apiErr)
			assert.Equal(t, tt.expected, apiErr.Kind)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.code, apiErr.ErrorCode)
			assert.Equal(t, "something failed", apiErr.Detail)
			assert.True(t, errors.Is(apiErr, tt.sentinel))
			assert.True(t, errors.Is(apiErr, ErrResponse))
		})
	}
}

func TestClassifySuccess(t *testing.T) {
	for _, status := range []int{200, 201, 204} {
		assert.Nil(t, Classify(rawJSON(status, `{}`, 1), nil))
	}
}

func TestClassifyNonJSON(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"html error page", 502, "<html>Bad Gateway</html>"},
		{"empty body", 404, ""},
		{"json list", 404, `["not", "an", "object"]`},
		{"truncated json", 429, `{"detail": "Request was thro`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := Classify(rawJSON(tt.status, tt.body, 0), nil)
			require.NotNil(t, apiErr)
			assert.Equal(t, KindResponse, apiErr.Kind)
			assert.Equal(t, NonJSONDetail, apiErr.Detail)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Empty(t, apiErr.ErrorCode)
		})
	}
}

func TestClassifyWaitSeconds(t *testing.T) {
	t.Run("plan rate limit carries wait", func(t *testing.T) {
		raw := rawJSON(429, `{"detail": "Request was throttled. Expected available in 7 seconds.", "error_code": "PLAN_RATE_LIMIT"}`, 0)
		apiErr := Classify(raw, nil)
		require.NotNil(t, apiErr)
		assert.Equal(t, KindPlanRateLimit, apiErr.Kind)
		assert.Equal(t, 7, apiErr.WaitSeconds)
	})

	t.Run("generic rate limit carries wait", func(t *testing.T) {
		raw := rawJSON(429, `{"detail": "Throttled, available in 12 seconds"}`, 0)
		apiErr := Classify(raw, nil)
		require.NotNil(t, apiErr)
		assert.Equal(t, KindRateLimit, apiErr.Kind)
		assert.Equal(t, 12, apiErr.WaitSeconds)
	})

	t.Run("no wait in detail", func(t *testing.T) {
		raw := rawJSON(429, `{"detail": "Too many concurrent requests", "error_code": "CONCURRENCY_RATE_LIMIT"}`, 0)
		apiErr := Classify(raw, nil)
		require.NotNil(t, apiErr)
		assert.Zero(t, apiErr.WaitSeconds)
	})
}

func TestClassifyStructuredDetail(t *testing.T) {
	raw := rawJSON(422, `{"detail": {"data": ["This field is required."]}}`, 0)
	apiErr := Classify(raw, nil)
	require.NotNil(t, apiErr)
	assert.Equal(t, KindRequestParams, apiErr.Kind)
	assert.JSONEq(t, `{"data": ["This field is required."]}`, apiErr.Detail)
}

func TestKindFor(t *testing.T) {
	assert.Equal(t, KindModelNotFound, KindFor(404, CodeModelNotFound))
	assert.Equal(t, KindResourceNotFound, KindFor(404, CodeModelLimit))
	assert.Equal(t, KindResponse, KindFor(418, CodeModelNotFound))
}
