package api

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// sleepRecorder replaces the client sleep so tests never block.
type sleepRecorder struct {
	waits []time.Duration
}

func (s *sleepRecorder) sleep(ctx context.Context, d time.Duration) error {
	s.waits = append(s.waits, d)
	return ctx.Err()
}

func newTestClient(t *testing.T, baseURL string, opts ...Option) (*Client, *sleepRecorder) {
	t.Helper()

	opts = append([]Option{WithBaseURL(baseURL)}, opts...)
	client, err := New("test-token", zerolog.Nop(), opts...)
	require.NoError(t, err)

	rec := &sleepRecorder{}
	client.sleep = rec.sleep
	return client, rec
}

func rawJSON(status int, body string, requestQueries int) *RawResponse {
	h := http.Header{}
	h.Set(HeaderRequestQueries, strconv.Itoa(requestQueries))
	return &RawResponse{StatusCode: status, Header: h, Body: []byte(body)}
}
