package errs

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/accessdesk/api/manager/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusErrorWrapping(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Storage(cause)

	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "(status 500) Server error: storage failure: disk full", err.Error())

	wrapped := errors.WithMessage(err, "create request")
	httpErr, ok := IsHTTPStatusError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
}

func TestIsHTTPStatusError(t *testing.T) {
	_, ok := IsHTTPStatusError(nil)
	assert.False(t, ok)
	_, ok = IsHTTPStatusError(fmt.Errorf("plain"))
	assert.False(t, ok)
}

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		message string
	}{
		{Validation("application is required", nil), http.StatusBadRequest, "application is required"},
		{InvalidCredentials(), http.StatusUnauthorized, "Invalid credentials"},
		{Unauthenticated("Unauthorized", nil), http.StatusUnauthorized, "Unauthorized"},
		{Forbidden("Forbidden"), http.StatusForbidden, "Forbidden"},
		{NotFound("Not found"), http.StatusNotFound, "Not found"},
		{InvalidTransition(domain.StatusApproved, domain.StatusRejected), http.StatusConflict, "Request cannot move from APPROVED to REJECTED"},
		{fmt.Errorf("tx: %w", domain.ErrStatusConflict), http.StatusConflict, "Invalid status transition"},
		{fmt.Errorf("lookup: %w", domain.ErrNotFound), http.StatusNotFound, "Not found"},
		{fmt.Errorf("boom"), http.StatusInternalServerError, ServerErrorMessage},
	}
	for _, c := range cases {
		status, message := StatusOf(c.err)
		assert.Equal(t, c.status, status, c.err.Error())
		assert.Equal(t, c.message, message, c.err.Error())
	}
}

func TestKindsAreMatchable(t *testing.T) {
	assert.ErrorIs(t, Validation("bad", fmt.Errorf("field")), domain.ErrValidation)
	assert.ErrorIs(t, Validation("bad", domain.ErrValidation), domain.ErrValidation)
	assert.ErrorIs(t, InvalidTransition(domain.StatusApproved, domain.StatusApproved), domain.ErrInvalidTransition)
	assert.ErrorIs(t, Conflict("exists", nil), domain.ErrDuplicate)
	assert.ErrorIs(t, Forbidden("no"), domain.ErrForbidden)
}
