package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NotFound("gone").HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, Validation("bad").HTTPStatus())
	assert.Equal(t, http.StatusTooManyRequests, RateLimited("slow down").HTTPStatus())
	assert.Equal(t, http.StatusServiceUnavailable, Unavailable("later").HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, Internal("oops").HTTPStatus())
}

func TestIsMatchesByCode(t *testing.T) {
	err := NotFoundf("business %q not found", "biz-1")
	assert.True(t, Is(err, ErrNotFound))
	assert.False(t, Is(err, ErrValidation))
}

func TestIsMatchesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("lookup: %w", NotFound("missing"))
	assert.True(t, Is(err, ErrNotFound))
}

func TestWithCause(t *testing.T) {
	cause := stderrors.New("socket closed")
	err := Unavailable("sheets unreachable").WithCause(cause)

	assert.True(t, Is(err, ErrUnavailable))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "socket closed")
}

func TestValidationWithDetails(t *testing.T) {
	err := ValidationWithDetails("validation failed", map[string]string{"name": "is required"})

	var domainErr *Error
	assert.True(t, As(err, &domainErr))
	assert.Equal(t, CodeValidation, domainErr.Code)
	assert.NotNil(t, domainErr.Details)
}
