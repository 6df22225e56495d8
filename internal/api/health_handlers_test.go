package api

import (
	"encoding/json/v2"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.api.Get("/health")
	assert.Equal(t, http.StatusOK, resp.Code)

	var envelope testEnvelope[HealthResponse]
	err := json.Unmarshal(resp.Body.Bytes(), &envelope)
	require.NoError(t, err)

	assert.True(t, envelope.Success)
	assert.Equal(t, "healthy", envelope.Data.Status)

	require.Contains(t, envelope.Data.Components, "dataset")
	require.Contains(t, envelope.Data.Components, "search")
	require.Contains(t, envelope.Data.Components, "cache")

	assert.Equal(t, "healthy", envelope.Data.Components["dataset"].Status)
	assert.Equal(t, "healthy", envelope.Data.Components["search"].Status)
	assert.Equal(t, "cache not configured", envelope.Data.Components["cache"].Message)
}
