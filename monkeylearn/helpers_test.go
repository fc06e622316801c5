package monkeylearn

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/monkeylearn-go/api"
)

type recordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Body     []byte
}

// fakeAPI records every request and answers with respond(n, req), where n
// counts requests from zero.
type fakeAPI struct {
	mu       sync.Mutex
	requests []recordedRequest
	respond  func(n int, req recordedRequest) (int, string)
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	req := recordedRequest{Method: r.Method, Path: r.URL.Path, RawQuery: r.URL.RawQuery, Body: body}

	f.mu.Lock()
	n := len(f.requests)
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	status, resp := http.StatusOK, `{}`
	if f.respond != nil {
		status, resp = f.respond(n, req)
	}
	w.Header().Set(api.HeaderRequestQueries, "1")
	w.WriteHeader(status)
	io.WriteString(w, resp)
}

func (f *fakeAPI) Requests() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]recordedRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

func newFakeClient(t *testing.T, respond func(n int, req recordedRequest) (int, string)) (*Client, *fakeAPI) {
	t.Helper()

	fake := &fakeAPI{respond: respond}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	client, err := New("test-token", zerolog.Nop(), api.WithBaseURL(server.URL))
	require.NoError(t, err)
	return client, fake
}

// echoClassifications answers a classify chunk with one result per input.
func echoClassifications(t *testing.T, body []byte) string {
	t.Helper()
	return echoResults(t, body, `"classifications": [{"tag_name": "Positive", "tag_id": 1, "confidence": 0.9}]`)
}

func echoResults(t *testing.T, body []byte, extra string) string {
	t.Helper()

	var payload struct {
		Data []Input `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))

	out := "["
	for i, in := range payload.Data {
		if i > 0 {
			out += ","
		}
		out += `{"text": ` + strconv.Quote(in.Text) + `, "external_id": ` + strconv.Quote(in.ExternalID) + `, "error": false, ` + extra + `}`
	}
	return out + "]"
}
