package api

import (
	"net/http"
	"regexp"
	"strconv"
)

// Server error codes with a dedicated meaning.
const (
	CodeModelLimit              = "MODEL_LIMIT"
	CodeModelNotFound           = "MODEL_NOT_FOUND"
	CodeTagNotFound             = "TAG_NOT_FOUND"
	CodeCategoryNotFound        = "CATEGORY_NOT_FOUND"
	CodePlanRateLimit           = "PLAN_RATE_LIMIT"
	CodeRequestLimit            = "REQUEST_LIMIT"
	CodeConcurrencyRateLimit    = "CONCURRENCY_RATE_LIMIT"
	CodeRequestConcurrencyLimit = "REQUEST_CONCURRENCY_LIMIT"
	CodePlanQueryLimit          = "PLAN_QUERY_LIMIT"
)

// NonJSONDetail is the detail of errors whose body could not be parsed.
const NonJSONDetail = "Non-JSON response from server"

// statusBucket resolves the error kind for one status code. byCode is
// consulted first; fallback applies when the code is absent or unknown.
type statusBucket struct {
	byCode   map[string]Kind
	fallback Kind
}

var statusBuckets = map[int]statusBucket{
	http.StatusUnprocessableEntity: {fallback: KindRequestParams},
	http.StatusUnauthorized:        {fallback: KindAuthentication},
	http.StatusForbidden: {
		byCode:   map[string]Kind{CodeModelLimit: KindModelLimit},
		fallback: KindForbidden,
	},
	http.StatusNotFound: {
		byCode: map[string]Kind{
			CodeModelNotFound:    KindModelNotFound,
			CodeTagNotFound:      KindTagNotFound,
			CodeCategoryNotFound: KindCategoryNotFound,
		},
		fallback: KindResourceNotFound,
	},
	http.StatusTooManyRequests: {
		byCode: map[string]Kind{
			CodePlanRateLimit:           KindPlanRateLimit,
			CodeRequestLimit:            KindPlanRateLimit,
			CodeConcurrencyRateLimit:    KindConcurrencyRateLimit,
			CodeRequestConcurrencyLimit: KindConcurrencyRateLimit,
			CodePlanQueryLimit:          KindPlanQueryLimit,
		},
		fallback: KindRateLimit,
	},
	http.StatusLocked: {fallback: KindModelState},
}

// KindFor resolves the error kind of a status code and server error code.
func KindFor(statusCode int, errorCode string) Kind {
	bucket, ok := statusBuckets[statusCode]
	if !ok {
		return KindResponse
	}
	if kind, ok := bucket.byCode[errorCode]; ok {
		return kind
	}
	return bucket.fallback
}

var availableInRe = regexp.MustCompile(`available in (\d+) seconds`)

// waitSeconds extracts N from "available in N seconds".
func waitSeconds(detail string) (int, bool) {
	m := availableInRe.FindStringSubmatch(detail)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Classify converts a non-success raw response into an *Error. It returns
// nil for 2xx responses. owner is recorded as the error's Response and may be nil.
func Classify(raw *RawResponse, owner *Response) *Error {
	if raw.OK() {
		return nil
	}

	body, ok := parseErrorBody(raw)
	if !ok {
		return &Error{
			Kind:       KindResponse,
			Detail:     NonJSONDetail,
			StatusCode: raw.StatusCode,
			Response:   owner,
		}
	}

	apiErr := &Error{
		Kind:       KindFor(raw.StatusCode, body.ErrorCode),
		Detail:     body.detailText(),
		ErrorCode:  body.ErrorCode,
		StatusCode: raw.StatusCode,
		Response:   owner,
	}
	if raw.StatusCode == http.StatusTooManyRequests {
		if n, ok := waitSeconds(apiErr.Detail); ok {
			apiErr.WaitSeconds = n
		}
	}
	return apiErr
}
