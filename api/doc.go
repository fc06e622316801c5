// Package api is the request layer of the MonkeyLearn client.
//
// It turns a method, URL and JSON payload into an authenticated HTTP request,
// retries requests rejected by the two self-describing throttling conditions,
// classifies every other failure into a typed error, and aggregates the raw
// responses of one logical operation.
//
// # Components
//
//   - Endpoint: builds list, detail and nested URLs for a resource type.
//   - Client.Do: issues one logical request, waiting and retrying on throttling.
//   - Classify: maps a failed response to an *Error of a specific Kind.
//   - Response: collects the raw responses of a (possibly batched) operation.
//
// # Retry Behavior
//
// Only 429 responses carrying a known error code are retried:
//
//   - PLAN_RATE_LIMIT / REQUEST_LIMIT: wait the seconds announced in the
//     detail text ("available in N seconds").
//   - CONCURRENCY_RATE_LIMIT / REQUEST_CONCURRENCY_LIMIT: wait 2 seconds.
//
// At most 2 retries are made per logical request. When retries run out the
// last throttled response is returned as-is; it is classified when added to a
// Response. Transport failures are never retried and surface as *TransportError.
//
// # Error Handling
//
// Use errors.Is with the kind sentinels:
//
//	if errors.Is(err, api.ErrModelNotFound) {
//		// the classifier id is wrong
//	}
//
// A specific kind also matches its bucket (ErrModelNotFound matches
// ErrResourceNotFound) and every API error matches ErrResponse.
//
// # Concurrency
//
// A Client may be shared between goroutines. A Response belongs to one
// logical operation and must not be shared while it is being filled.
package api
