package response

import (
	"encoding/json/v2"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/communitydirectory/directory-server/internal/errors"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]string{"id": "biz_123"}, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	env := decode(t, rec)
	assert.True(t, env.Success)
	assert.Empty(t, env.Error)
}

func TestErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, "business not found", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	env := decode(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "business not found", env.Error)
}

func TestHandleErrorMapsDomainCodes(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{domainerrors.NotFound("no such suburb"), http.StatusNotFound},
		{domainerrors.Validation("bad filter"), http.StatusBadRequest},
		{domainerrors.RateLimited("slow down"), http.StatusTooManyRequests},
		{domainerrors.Unavailable("sheet unreachable"), http.StatusServiceUnavailable},
		{domainerrors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		HandleError(rec, tt.err, nil)
		assert.Equal(t, tt.status, rec.Code, "error %v", tt.err)
	}
}

func TestHandleErrorIncludesValidationDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, domainerrors.ValidationWithDetails("validation failed", map[string]string{"name": "is required"}), nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	env := decode(t, rec)
	details, ok := env.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "is required", details["name"])
}
