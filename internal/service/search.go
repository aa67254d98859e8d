package service

import (
	"context"
	"log/slog"

	"github.com/heritageapp/heritage-server/internal/search"
)

// SearchService fronts the Bleve index and owns its catalog load.
type SearchService struct {
	index  *search.Index
	logger *slog.Logger
}

// NewSearchService wraps an opened search index.
func NewSearchService(index *search.Index, logger *slog.Logger) *SearchService {
	return &SearchService{index: index, logger: logger}
}

// LoadCatalog replaces the index contents with the given catalog. Run
// once at startup after the catalog is built; the rebuild keeps stale
// documents from a previous process's catalog out of the results.
func (s *SearchService) LoadCatalog(catalog *CatalogService) error {
	if err := s.index.Rebuild(); err != nil {
		return err
	}
	docs := catalog.SearchDocuments()
	if err := s.index.IndexDocuments(docs); err != nil {
		return err
	}
	s.logger.Info("search index loaded", "documents", len(docs))
	return nil
}

// Search executes a relevance query.
func (s *SearchService) Search(ctx context.Context, params search.Params) (*search.Result, error) {
	return s.index.Search(ctx, params)
}
