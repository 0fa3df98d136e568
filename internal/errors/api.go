package errors

import (
	"context"
	"errors"
	"net/http"
)

// MapTransportError maps request-level failures to AppError instances.
// It recognizes context timeouts and cancellations; any other error is
// returned unchanged.
func MapTransportError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &AppError{
			Code:    ErrCodeTimeout,
			Message: "Request timed out. Please try again.",
			Cause:   err,
		}
	}
	if errors.Is(err, context.Canceled) {
		return &AppError{
			Code:    ErrCodeCanceled,
			Message: "Request was canceled.",
			Cause:   err,
		}
	}
	return err
}

// MapStatus maps a non-2xx HTTP status and the server's stated reason
// to an AppError. The reason string ends up user-visible, so callers
// should pass the server's error field rather than a raw body dump
// when they have one.
func MapStatus(status int, reason string) *AppError {
	switch {
	case status == http.StatusNotFound:
		return NotFound(reason)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return Unauthorized(reason)
	case status >= 400 && status < 500:
		return Validation(reason)
	default:
		return Remote(reason)
	}
}
