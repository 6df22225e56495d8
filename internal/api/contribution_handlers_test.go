package api

import (
	"encoding/json/v2"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communitydirectory/directory-server/internal/ratelimit"
)

func validBusinessBody() map[string]any {
	return map[string]any{
		"name":        "Saffron House",
		"category":    "restaurants",
		"description": "Persian restaurant with saffron specialties",
		"suburb":      "Springvale",
	}
}

func validReviewBody() map[string]any {
	return map[string]any{
		"businessId": "biz_spice",
		"author":     "Priya",
		"rating":     5,
		"comment":    "Best dosa in the southeast",
	}
}

func TestSubmitBusiness(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.api.Post("/api/v1/contributions/businesses", validBusinessBody())
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var envelope testEnvelope[map[string]any]
	err := json.Unmarshal(resp.Body.Bytes(), &envelope)
	require.NoError(t, err)

	assert.True(t, envelope.Success)
	id, _ := envelope.Data["id"].(string)
	assert.True(t, strings.HasPrefix(id, "biz-"))
	assert.Equal(t, "community", envelope.Data["createdBy"])

	require.Len(t, ts.appender.businesses, 1)
	assert.Equal(t, "Saffron House", ts.appender.businesses[0].Name)

	// The snapshot is untouched until the next reload.
	listResp := ts.api.Get("/api/v1/businesses")
	var listEnvelope testEnvelope[ListBusinessesResponse]
	require.NoError(t, json.Unmarshal(listResp.Body.Bytes(), &listEnvelope))
	assert.Equal(t, 5, listEnvelope.Data.Total)
}

func TestSubmitBusiness_ValidationFailure(t *testing.T) {
	ts := newTestServer(t)

	body := validBusinessBody()
	body["name"] = "S"
	body["description"] = "short"

	resp := ts.api.Post("/api/v1/contributions/businesses", body)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var envelope testEnvelope[any]
	err := json.Unmarshal(resp.Body.Bytes(), &envelope)
	require.NoError(t, err)

	assert.False(t, envelope.Success)
	assert.Equal(t, "VALIDATION", envelope.Code)
	assert.NotNil(t, envelope.Details)
	assert.Empty(t, ts.appender.businesses)
}

func TestSubmitBusiness_UnknownCategory(t *testing.T) {
	ts := newTestServer(t)

	body := validBusinessBody()
	body["category"] = "spaceports"

	resp := ts.api.Post("/api/v1/contributions/businesses", body)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestSubmitReview(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.api.Post("/api/v1/contributions/reviews", validReviewBody())
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var envelope testEnvelope[map[string]any]
	err := json.Unmarshal(resp.Body.Bytes(), &envelope)
	require.NoError(t, err)

	id, _ := envelope.Data["id"].(string)
	assert.True(t, strings.HasPrefix(id, "rev-"))
	require.Len(t, ts.appender.reviews, 1)
}

func TestSubmitReview_UnknownBusiness(t *testing.T) {
	ts := newTestServer(t)

	body := validReviewBody()
	body["businessId"] = "biz_missing"

	resp := ts.api.Post("/api/v1/contributions/reviews", body)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestContributions_RateLimited(t *testing.T) {
	ts := setupTestServer(t, Options{
		ContributionLimiter: ratelimit.New(0.001, 1),
	})

	resp := ts.api.Post("/api/v1/contributions/businesses", validBusinessBody())
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = ts.api.Post("/api/v1/contributions/businesses", validBusinessBody())
	assert.Equal(t, http.StatusTooManyRequests, resp.Code)
}

func TestReadsAreNeverThrottled(t *testing.T) {
	ts := setupTestServer(t, Options{
		ContributionLimiter: ratelimit.New(0.001, 1),
	})

	for range 3 {
		resp := ts.api.Get("/api/v1/businesses")
		assert.Equal(t, http.StatusOK, resp.Code)
	}
}
