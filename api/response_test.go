package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseBodyFlattensLists(t *testing.T) {
	resp, err := NewResponse(
		rawJSON(200, `[{"text": "a"}, {"text": "b"}]`, 2),
		rawJSON(200, `[{"text": "c"}]`, 1),
		rawJSON(200, `[]`, 0),
	)
	require.NoError(t, err)

	body, err := resp.Body()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"text": "a"}, {"text": "b"}, {"text": "c"}]`, string(body))

	var items []struct {
		Text string `json:"text"`
	}
	require.NoError(t, resp.Decode(&items))
	require.Len(t, items, 3)
	assert.Equal(t, "c", items[2].Text)
}

func TestResponseBodySingle(t *testing.T) {
	resp, err := NewResponse(rawJSON(200, `{"id": "cl_1", "name": "Sentiment"}`, 0))
	require.NoError(t, err)

	body, err := resp.Body()
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": "cl_1", "name": "Sentiment"}`, string(body))
}

func TestResponseBodyEmpty(t *testing.T) {
	resp := &Response{}
	body, err := resp.Body()
	require.NoError(t, err)
	assert.Nil(t, body)
	assert.Error(t, resp.Decode(&struct{}{}))
}

func TestResponseBodyRejectsObjectsWhenCombining(t *testing.T) {
	resp, err := NewResponse(rawJSON(200, `[1]`, 0), rawJSON(200, `{"id": 1}`, 0))
	require.NoError(t, err)

	_, err = resp.Body()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "response 1")
}

func TestResponseQueryAccounting(t *testing.T) {
	first := rawJSON(200, `[]`, 200)
	first.Header.Set(HeaderQueryLimit, "10000")
	first.Header.Set(HeaderQueryRemaining, "9800")

	second := rawJSON(200, `[]`, 50)
	second.Header.Set(HeaderQueryLimit, "10000")
	second.Header.Set(HeaderQueryRemaining, "9750")

	third := &RawResponse{StatusCode: 200, Header: http.Header{}, Body: []byte(`[]`)}

	t.Run("sums request queries", func(t *testing.T) {
		resp, err := NewResponse(first, second, third)
		require.NoError(t, err)
		assert.Equal(t, 250, resp.RequestQueriesUsed())
	})

	t.Run("limits come from the last response", func(t *testing.T) {
		resp, err := NewResponse(first, second)
		require.NoError(t, err)

		allowed, ok := resp.PlanQueriesAllowed()
		require.True(t, ok)
		assert.Equal(t, 10000, allowed)

		remaining, ok := resp.PlanQueriesRemaining()
		require.True(t, ok)
		assert.Equal(t, 9750, remaining)
	})

	t.Run("missing headers on the last response", func(t *testing.T) {
		resp, err := NewResponse(first, third)
		require.NoError(t, err)

		_, ok := resp.PlanQueriesRemaining()
		assert.False(t, ok)
	})

	t.Run("empty response", func(t *testing.T) {
		resp := &Response{}
		assert.Zero(t, resp.RequestQueriesUsed())
		_, ok := resp.PlanQueriesAllowed()
		assert.False(t, ok)
	})
}

func TestResponseAddKeepsFailure(t *testing.T) {
	resp := &Response{}
	require.NoError(t, resp.Add(rawJSON(200, `[{"id": 1}]`, 1)))

	err := resp.Add(rawJSON(404, `{"detail": "Model not found", "error_code": "MODEL_NOT_FOUND"}`, 0))
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, KindModelNotFound, apiErr.Kind)
	assert.Same(t, resp, apiErr.Response)

	assert.Equal(t, 2, resp.RequestCount())
	assert.Len(t, resp.SuccessfulResponses(), 1)
	require.Len(t, resp.FailedResponses(), 1)
	assert.Equal(t, http.StatusNotFound, resp.FailedResponses()[0].StatusCode)
}

func TestPartialResponseBodyViaSuccessfulResponses(t *testing.T) {
	resp := &Response{}
	require.NoError(t, resp.Add(rawJSON(200, `[{"id": 1}, {"id": 2}]`, 2)))
	require.Error(t, resp.Add(rawJSON(422, `{"detail": "Invalid text", "error_code": "INVALID_TEXT"}`, 0)))

	_, err := resp.Body()
	require.Error(t, err)

	partial, err := NewResponse(resp.SuccessfulResponses()...)
	require.NoError(t, err)

	var items []map[string]int
	require.NoError(t, partial.Decode(&items))
	assert.Equal(t, []map[string]int{{"id": 1}, {"id": 2}}, items)
	assert.Equal(t, 2, partial.RequestQueriesUsed())
}

func TestNewResponseStopsAtFirstFailure(t *testing.T) {
	resp, err := NewResponse(
		rawJSON(200, `[]`, 1),
		rawJSON(401, `{"detail": "Invalid token"}`, 0),
		rawJSON(200, `[]`, 1),
	)
	require.ErrorIs(t, err, ErrAuthentication)
	require.NotNil(t, resp)
	assert.Equal(t, 2, resp.RequestCount())
	assert.Equal(t, 1, resp.RequestQueriesUsed())
}

func TestResponsesReturnsCopy(t *testing.T) {
	resp, err := NewResponse(rawJSON(200, `[]`, 0))
	require.NoError(t, err)

	raws := resp.Responses()
	raws[0] = nil
	assert.NotNil(t, resp.Responses()[0])
}
