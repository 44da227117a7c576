package errs

import (
	"fmt"
	"net/http"

	"github.com/accessdesk/api/manager/domain"
	"github.com/pkg/errors"
)

// ServerErrorMessage is the only text a client sees for an unexpected failure.
const ServerErrorMessage = "Server error"

type HTTPStatusError struct {
	StatusCode  int
	Message     string
	OriginalErr error
}

func (e *HTTPStatusError) Error() string {
	if e.OriginalErr == nil {
		return fmt.Sprintf("(status %d) %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("(status %d) %s: %v", e.StatusCode, e.Message, e.OriginalErr)
}

func (e *HTTPStatusError) Unwrap() error {
	return e.OriginalErr
}

func NewHTTPStatusError(statusCode int, message string, originalErr error) *HTTPStatusError {
	return &HTTPStatusError{
		StatusCode:  statusCode,
		Message:     message,
		OriginalErr: originalErr,
	}
}

func IsHTTPStatusError(err error) (*HTTPStatusError, bool) {
	if err == nil {
		return nil, false
	}
	var httpErr *HTTPStatusError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}

func wrapKind(kind, err error) error {
	if err == nil {
		return kind
	}
	if errors.Is(err, kind) {
		return err
	}
	return fmt.Errorf("%w: %w", kind, err)
}

func Validation(message string, err error) *HTTPStatusError {
	return NewHTTPStatusError(http.StatusBadRequest, message, wrapKind(domain.ErrValidation, err))
}

func Unauthenticated(message string, err error) *HTTPStatusError {
	return NewHTTPStatusError(http.StatusUnauthorized, message, wrapKind(domain.ErrUnauthenticated, err))
}

// InvalidCredentials has the same shape for an unknown email and a wrong password.
func InvalidCredentials() *HTTPStatusError {
	return NewHTTPStatusError(http.StatusUnauthorized, "Invalid credentials", domain.ErrInvalidCredentials)
}

func Forbidden(message string) *HTTPStatusError {
	return NewHTTPStatusError(http.StatusForbidden, message, domain.ErrForbidden)
}

func NotFound(message string) *HTTPStatusError {
	return NewHTTPStatusError(http.StatusNotFound, message, domain.ErrNotFound)
}

func InvalidTransition(from, to domain.RequestStatus) *HTTPStatusError {
	return NewHTTPStatusError(http.StatusConflict,
		fmt.Sprintf("Request cannot move from %s to %s", from, to),
		domain.ErrInvalidTransition)
}

func Conflict(message string, err error) *HTTPStatusError {
	return NewHTTPStatusError(http.StatusConflict, message, wrapKind(domain.ErrDuplicate, err))
}

func Storage(err error) *HTTPStatusError {
	return NewHTTPStatusError(http.StatusInternalServerError, ServerErrorMessage, wrapKind(domain.ErrStorage, err))
}

// StatusOf maps an error onto the HTTP status and client message it is reported with.
func StatusOf(err error) (int, string) {
	if httpErr, ok := IsHTTPStatusError(err); ok {
		return httpErr.StatusCode, httpErr.Message
	}
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "Invalid request"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Forbidden"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrStatusConflict):
		return http.StatusConflict, "Invalid status transition"
	case errors.Is(err, domain.ErrDuplicate):
		return http.StatusConflict, "Already exists"
	}
	return http.StatusInternalServerError, ServerErrorMessage
}
