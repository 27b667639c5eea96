package rest

import (
	"errors"
	"fmt"

	"persondesk/pkg/platform/sentinel"
)

// ErrorCategory is the normalized failure taxonomy of backend calls.
type ErrorCategory string

const (
	// ErrorNotFound indicates the backend has no such record.
	ErrorNotFound ErrorCategory = "not_found"

	// ErrorValidation indicates the backend rejected the payload.
	ErrorValidation ErrorCategory = "validation"

	// ErrorConflict indicates the write collided with existing state.
	ErrorConflict ErrorCategory = "conflict"

	// ErrorUnavailable indicates a transport failure or a 5xx response.
	ErrorUnavailable ErrorCategory = "unavailable"

	// ErrorBadData indicates a response body that could not be decoded.
	ErrorBadData ErrorCategory = "bad_data"

	// ErrorInternal covers every other non-2xx response.
	ErrorInternal ErrorCategory = "internal"
)

// APIError describes a failed backend call. Detail is the response body as
// the backend sent it.
type APIError struct {
	Op         string
	StatusCode int
	Detail     string
	Category   ErrorCategory
	Underlying error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		if e.Underlying != nil {
			return fmt.Sprintf("failed to %s: %v", e.Op, e.Underlying)
		}
		return fmt.Sprintf("failed to %s", e.Op)
	}
	return fmt.Sprintf("failed to %s (%d): %s", e.Op, e.StatusCode, e.Detail)
}

// Unwrap exposes both the category sentinel and the underlying cause, so
// errors.Is(err, sentinel.ErrNotFound) works for callers.
func (e *APIError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Category.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Underlying != nil {
		errs = append(errs, e.Underlying)
	}
	return errs
}

func (c ErrorCategory) sentinel() error {
	switch c {
	case ErrorNotFound:
		return sentinel.ErrNotFound
	case ErrorValidation:
		return sentinel.ErrInvalidInput
	case ErrorConflict:
		return sentinel.ErrConflict
	case ErrorUnavailable:
		return sentinel.ErrUnavailable
	case ErrorBadData:
		return sentinel.ErrBadData
	default:
		return nil
	}
}

func categoryForStatus(status int) ErrorCategory {
	switch {
	case status == 404:
		return ErrorNotFound
	case status == 400 || status == 422:
		return ErrorValidation
	case status == 409:
		return ErrorConflict
	case status >= 500:
		return ErrorUnavailable
	default:
		return ErrorInternal
	}
}

// CategoryOf returns the category of err, or "" when err is not an APIError.
func CategoryOf(err error) ErrorCategory {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Category
	}
	return ""
}
