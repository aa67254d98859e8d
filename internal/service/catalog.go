// Package service orchestrates the domain engines behind the API:
// catalog construction and querying, gene profile generation, and
// archetype assignment.
package service

import (
	"log/slog"
	"math/rand/v2"

	"github.com/heritageapp/heritage-server/internal/catalog"
	"github.com/heritageapp/heritage-server/internal/config"
	"github.com/heritageapp/heritage-server/internal/domain"
	domainerrors "github.com/heritageapp/heritage-server/internal/errors"
	"github.com/heritageapp/heritage-server/internal/search"
	"github.com/heritageapp/heritage-server/internal/vocab"
)

// CatalogService serves the read-only catalog. The catalog is built
// exactly once, at construction; every request afterwards reads the
// same immutable index, which keeps ids and images stable for the
// process lifetime.
type CatalogService struct {
	index    *catalog.Index
	pageSize int
	logger   *slog.Logger
}

// NewCatalogService builds the catalog per config and wraps it in a
// service. A configured snapshot takes priority; otherwise the catalog
// is synthesized from the curated seed, reproducibly when cfg.Seed is
// set and freshly drawn when it is zero.
func NewCatalogService(cfg config.CatalogConfig, logger *slog.Logger) (*CatalogService, error) {
	var entries []domain.CatalogEntry
	var err error

	if cfg.SnapshotPath != "" {
		entries, err = catalog.LoadSnapshot(cfg.SnapshotPath)
		if err != nil {
			return nil, err
		}
		logger.Info("catalog loaded from snapshot", "path", cfg.SnapshotPath, "entries", len(entries))
	} else {
		seed := uint64(cfg.Seed)
		if cfg.Seed == 0 {
			seed = rand.Uint64()
		}
		rng := rand.New(rand.NewPCG(seed, 0))
		entries, err = catalog.Synthesize(vocab.SeedEntries, cfg.TargetSize, rng)
		if err != nil {
			return nil, err
		}
		logger.Info("catalog synthesized", "entries", len(entries), "target_size", cfg.TargetSize)
	}

	return &CatalogService{
		index:    catalog.NewIndex(entries),
		pageSize: cfg.PageSize,
		logger:   logger,
	}, nil
}

// List filters and pages the catalog. Zero page/pageSize fall back to
// the first page at the configured default size.
func (s *CatalogService) List(params domain.QueryParams) domain.QueryResult {
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.PageSize <= 0 {
		params.PageSize = s.pageSize
	}
	return s.index.Query(params)
}

// Get returns a single catalog entry by id.
func (s *CatalogService) Get(id string) (domain.CatalogEntry, error) {
	e, ok := s.index.Get(id)
	if !ok {
		return domain.CatalogEntry{}, domainerrors.NotFoundf("heritage entry %s not found", id)
	}
	return e, nil
}

// Categories returns the categories present in the catalog.
func (s *CatalogService) Categories() []string {
	return s.index.DistinctCategories()
}

// RegionGroups returns the macro-group names, with the "全部" sentinel
// prepended for filter UIs.
func (s *CatalogService) RegionGroups() []string {
	return append([]string{vocab.AllSentinel}, vocab.GroupNames()...)
}

// Size reports the catalog size.
func (s *CatalogService) Size() int {
	return s.index.Len()
}

// SearchDocuments renders the whole catalog as search documents for
// index loading.
func (s *CatalogService) SearchDocuments() []*search.HeritageDocument {
	entries := s.index.Entries()
	docs := make([]*search.HeritageDocument, 0, len(entries))
	for i := range entries {
		docs = append(docs, search.EntryToDocument(&entries[i]))
	}
	return docs
}
