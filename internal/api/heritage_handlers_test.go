package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heritageapp/heritage-server/internal/search"
)

func TestListHeritageDefaults(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/heritage")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var envelope testEnvelope[ListHeritageResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))

	assert.True(t, envelope.Success)
	assert.Equal(t, 208, envelope.Data.Total)
	assert.Equal(t, 1, envelope.Data.Page)
	assert.Len(t, envelope.Data.Data, 12)
	assert.Equal(t, "马年剪纸", envelope.Data.Data[0].Name)
}

func TestListHeritageCategoryFilter(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/heritage?category=" + url.QueryEscape("民俗"))
	require.Equal(t, http.StatusOK, resp.Code)

	var envelope testEnvelope[ListHeritageResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))

	require.NotEmpty(t, envelope.Data.Data)
	for _, e := range envelope.Data.Data {
		assert.Equal(t, "民俗", e.Category)
	}
}

func TestListHeritageAllSentinel(t *testing.T) {
	ts := setupTestServer(t)

	unfiltered := ts.api.Get("/api/v1/heritage")
	sentinel := ts.api.Get("/api/v1/heritage?category=" + url.QueryEscape("全部") + "&region=" + url.QueryEscape("全部"))

	assert.Equal(t, unfiltered.Body.String(), sentinel.Body.String())
}

func TestListHeritagePastLastPage(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/heritage?page=999")
	require.Equal(t, http.StatusOK, resp.Code)

	var envelope testEnvelope[ListHeritageResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))

	assert.Empty(t, envelope.Data.Data)
	assert.Equal(t, 208, envelope.Data.Total)
	assert.Equal(t, 999, envelope.Data.Page)
}

func TestGetHeritage(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/heritage/9")
	require.Equal(t, http.StatusOK, resp.Code)

	var envelope testEnvelope[map[string]any]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.Equal(t, "皮影戏", envelope.Data["name"])
}

func TestGetHeritageNotFound(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/heritage/99999")
	require.Equal(t, http.StatusNotFound, resp.Code)

	var envelope testErrorEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "NOT_FOUND", envelope.Error.Code)
}

func TestListCategories(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/heritage/categories")
	require.Equal(t, http.StatusOK, resp.Code)

	var envelope testEnvelope[[]string]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.Contains(t, envelope.Data, "传统美术")
}

func TestListRegions(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/heritage/regions")
	require.Equal(t, http.StatusOK, resp.Code)

	var envelope testEnvelope[[]string]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 8)
	assert.Equal(t, "全部", envelope.Data[0])
}

func TestSearchHeritage(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/search?q=" + url.QueryEscape("剪纸"))
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var envelope testEnvelope[search.Result]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.NotZero(t, envelope.Data.Total)
	require.NotEmpty(t, envelope.Data.Hits)
}

func TestHealthCheck(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/health")
	require.Equal(t, http.StatusOK, resp.Code)

	var envelope testEnvelope[HealthResponse]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.Equal(t, "healthy", envelope.Data.Status)
	assert.Equal(t, 208, envelope.Data.Catalog)
}
