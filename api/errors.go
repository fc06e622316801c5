package api

import (
	"errors"
	"fmt"
)

// Kind identifies the category of an API error.
type Kind int

const (
	// KindResponse is any non-success response without a more specific kind.
	KindResponse Kind = iota
	KindRequestParams
	KindAuthentication
	KindForbidden
	KindModelLimit
	KindResourceNotFound
	KindModelNotFound
	KindTagNotFound
	KindCategoryNotFound
	KindRateLimit
	KindPlanRateLimit
	KindConcurrencyRateLimit
	KindPlanQueryLimit
	KindModelState
)

var kindNames = map[Kind]string{
	KindResponse:             "ResponseException",
	KindRequestParams:        "RequestParamsError",
	KindAuthentication:       "AuthenticationError",
	KindForbidden:            "ForbiddenError",
	KindModelLimit:           "ModelLimitError",
	KindResourceNotFound:     "ResourceNotFound",
	KindModelNotFound:        "ModelNotFound",
	KindTagNotFound:          "TagNotFound",
	KindCategoryNotFound:     "CategoryNotFound",
	KindRateLimit:            "RateLimitError",
	KindPlanRateLimit:        "PlanRateLimitError",
	KindConcurrencyRateLimit: "ConcurrencyRateLimitError",
	KindPlanQueryLimit:       "PlanQueryLimitError",
	KindModelState:           "ModelStateError",
}

// String returns the kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// parent returns the bucket a specific kind belongs to.
func (k Kind) parent() (Kind, bool) {
	switch k {
	case KindModelLimit:
		return KindForbidden, true
	case KindModelNotFound, KindTagNotFound, KindCategoryNotFound:
		return KindResourceNotFound, true
	case KindPlanRateLimit, KindConcurrencyRateLimit, KindPlanQueryLimit:
		return KindRateLimit, true
	case KindResponse:
		return KindResponse, false
	default:
		return KindResponse, true
	}
}

// Sentinel errors for errors.Is checks against an *Error.
var (
	ErrResponse             = errors.New("monkeylearn: response error")
	ErrRequestParams        = errors.New("monkeylearn: invalid request parameters")
	ErrAuthentication       = errors.New("monkeylearn: authentication failed")
	ErrForbidden            = errors.New("monkeylearn: forbidden")
	ErrModelLimit           = errors.New("monkeylearn: model limit reached")
	ErrResourceNotFound     = errors.New("monkeylearn: resource not found")
	ErrModelNotFound        = errors.New("monkeylearn: model not found")
	ErrTagNotFound          = errors.New("monkeylearn: tag not found")
	ErrCategoryNotFound     = errors.New("monkeylearn: category not found")
	ErrRateLimit            = errors.New("monkeylearn: rate limited")
	ErrPlanRateLimit        = errors.New("monkeylearn: plan rate limit reached")
	ErrConcurrencyRateLimit = errors.New("monkeylearn: concurrency rate limit reached")
	ErrPlanQueryLimit       = errors.New("monkeylearn: plan query limit reached")
	ErrModelState           = errors.New("monkeylearn: model state forbids operation")

	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("monkeylearn: invalid input")
)

var kindSentinels = map[Kind]error{
	KindResponse:             ErrResponse,
	KindRequestParams:        ErrRequestParams,
	KindAuthentication:       ErrAuthentication,
	KindForbidden:            ErrForbidden,
	KindModelLimit:           ErrModelLimit,
	KindResourceNotFound:     ErrResourceNotFound,
	KindModelNotFound:        ErrModelNotFound,
	KindTagNotFound:          ErrTagNotFound,
	KindCategoryNotFound:     ErrCategoryNotFound,
	KindRateLimit:            ErrRateLimit,
	KindPlanRateLimit:        ErrPlanRateLimit,
	KindConcurrencyRateLimit: ErrConcurrencyRateLimit,
	KindPlanQueryLimit:       ErrPlanQueryLimit,
	KindModelState:           ErrModelState,
}

// Error is a classified non-success response from the MonkeyLearn API.
// It is never modified after creation.
type Error struct {
	Kind       Kind
	Detail     string
	ErrorCode  string // server supplied, may be empty
	StatusCode int
	// WaitSeconds is the cool-down announced by a throttled response, 0 if none.
	WaitSeconds int
	// Response is the aggregated response that produced this error, if any.
	Response *Response
}

func (e *Error) Error() string {
	if e.ErrorCode != "" {
		return fmt.Sprintf("%s %d %s: %s", e.Kind, e.StatusCode, e.ErrorCode, e.Detail)
	}
	return fmt.Sprintf("%s %d: %s", e.Kind, e.StatusCode, e.Detail)
}

// Is implements errors.Is by walking from the specific kind to its bucket and
// finally to ErrResponse.
func (e *Error) Is(target error) bool {
	kind := e.Kind
	for {
		if kindSentinels[kind] == target {
			return true
		}
		next, ok := kind.parent()
		if !ok {
			return false
		}
		kind = next
	}
}

// IsNotFound reports whether the error is one of the not-found kinds.
func (e *Error) IsNotFound() bool {
	return errors.Is(e, ErrResourceNotFound)
}

// IsRateLimited reports whether the error is one of the throttling kinds.
func (e *Error) IsRateLimited() bool {
	return errors.Is(e, ErrRateLimit)
}

// IsUnauthorized reports whether the token was rejected.
func (e *Error) IsUnauthorized() bool {
	return e.Kind == KindAuthentication
}

// TransportError is a network-level failure: the request never produced an
// HTTP response. It is not part of the API error taxonomy.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: transport error: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ValidationError is raised before any request is made when caller input is
// malformed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is matches ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError returns a *ValidationError for field.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
