package api

import (
	"encoding/json/v2"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCategories(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.api.Get("/api/v1/categories")
	require.Equal(t, http.StatusOK, resp.Code)

	var envelope testEnvelope[ListCategoriesResponse]
	err := json.Unmarshal(resp.Body.Bytes(), &envelope)
	require.NoError(t, err)

	assert.Equal(t, 2, envelope.Data.Total)
}

func TestPopularCategories_UsesLiveCounts(t *testing.T) {
	ts := newTestServer(t)

	// The stored counts say restaurants 99 and healthcare 0; the live
	// counts are 3 and 2 and those are what get reported.
	resp := ts.api.Get("/api/v1/categories/popular?limit=2")
	require.Equal(t, http.StatusOK, resp.Code)

	var envelope testEnvelope[ListCategoriesResponse]
	err := json.Unmarshal(resp.Body.Bytes(), &envelope)
	require.NoError(t, err)

	require.Len(t, envelope.Data.Categories, 2)
	assert.Equal(t, "restaurants", envelope.Data.Categories[0].ID)
	assert.Equal(t, 3, envelope.Data.Categories[0].BusinessCount)
	assert.Equal(t, "healthcare", envelope.Data.Categories[1].ID)
	assert.Equal(t, 2, envelope.Data.Categories[1].BusinessCount)
}

func TestGetCategory(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.api.Get("/api/v1/categories/restaurants")
	require.Equal(t, http.StatusOK, resp.Code)

	var envelope testEnvelope[map[string]any]
	err := json.Unmarshal(resp.Body.Bytes(), &envelope)
	require.NoError(t, err)

	assert.Equal(t, "Restaurants", envelope.Data["name"])
}

func TestGetCategory_NotFound(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.api.Get("/api/v1/categories/spaceports")
	assert.Equal(t, http.StatusNotFound, resp.Code)

	var envelope testEnvelope[any]
	err := json.Unmarshal(resp.Body.Bytes(), &envelope)
	require.NoError(t, err)
	assert.Equal(t, "NOT_FOUND", envelope.Code)
}

func TestGetCategoryBusinesses(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.api.Get("/api/v1/categories/healthcare/businesses")
	require.Equal(t, http.StatusOK, resp.Code)

	var envelope testEnvelope[ListBusinessesResponse]
	err := json.Unmarshal(resp.Body.Bytes(), &envelope)
	require.NoError(t, err)

	require.Equal(t, 2, envelope.Data.Total)
	assert.Equal(t, "biz_physio", envelope.Data.Businesses[0].ID)
	assert.Equal(t, "biz_new", envelope.Data.Businesses[1].ID)
}

func TestGetSubcategory(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.api.Get("/api/v1/categories/restaurants/subcategories/south-indian")
	require.Equal(t, http.StatusOK, resp.Code)

	var envelope testEnvelope[map[string]any]
	err := json.Unmarshal(resp.Body.Bytes(), &envelope)
	require.NoError(t, err)

	assert.Equal(t, "South Indian", envelope.Data["name"])
}

func TestGetSubcategory_NotFound(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.api.Get("/api/v1/categories/restaurants/subcategories/sushi")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
