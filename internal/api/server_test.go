package api

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/heritageapp/heritage-server/internal/config"
	"github.com/heritageapp/heritage-server/internal/logger"
	"github.com/heritageapp/heritage-server/internal/ratelimit"
	"github.com/heritageapp/heritage-server/internal/search"
	"github.com/heritageapp/heritage-server/internal/service"
	"github.com/heritageapp/heritage-server/internal/store"
)

// testEnvelope mirrors the response envelope for decoding in tests.
type testEnvelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

// testErrorEnvelope mirrors the error envelope for decoding in tests.
type testErrorEnvelope struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details,omitempty"`
	} `json:"error"`
}

// testServer wraps the API server for handler testing.
type testServer struct {
	*Server
	api humatest.TestAPI
}

// setupTestServer builds a server over a fixed-seed catalog and a
// throwaway store.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "heritage-api-test-*")
	require.NoError(t, err)

	st, err := store.New(filepath.Join(tmpDir, "test.db"), nil)
	require.NoError(t, err)

	log := logger.Discard()

	catalogService, err := service.NewCatalogService(config.CatalogConfig{
		TargetSize:  208,
		GridColumns: 4,
		PageSize:    12,
		Seed:        42,
	}, log)
	require.NoError(t, err)

	searchIndex, err := search.NewIndex(search.Options{DataPath: tmpDir, Logger: log})
	require.NoError(t, err)
	searchService := service.NewSearchService(searchIndex, log)
	require.NoError(t, searchService.LoadCatalog(catalogService))

	services := &Services{
		Catalog:   catalogService,
		Profile:   service.NewProfileService(st, log),
		Archetype: service.NewArchetypeService(st, log),
		Search:    searchService,
	}

	router := chi.NewRouter()
	humaConfig := huma.DefaultConfig("Heritage API Test", "1.0.0")
	humaConfig.Transformers = append(humaConfig.Transformers, EnvelopeTransformer)

	humaAPI := humachi.New(router, humaConfig)
	RegisterErrorHandler()

	s := &Server{
		services: services,
		router:   router,
		api:      humaAPI,
		logger:   log,
		limiter:  ratelimit.New(1000, 1000),
	}
	s.registerHealthRoutes()
	s.registerHeritageRoutes()
	s.registerGeneRoutes()

	t.Cleanup(func() {
		s.limiter.Stop()
		_ = searchIndex.Close()
		_ = st.Close()
		_ = os.RemoveAll(tmpDir)
	})

	return &testServer{Server: s, api: humatest.Wrap(t, humaAPI)}
}
