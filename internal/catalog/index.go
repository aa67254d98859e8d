package catalog

import (
	"github.com/heritageapp/heritage-server/internal/domain"
	"github.com/heritageapp/heritage-server/internal/vocab"
)

// Index is a read-only view over a built catalog. Construct it once
// after synthesis; it is safe for any number of concurrent readers.
type Index struct {
	entries    []domain.CatalogEntry
	byID       map[string]*domain.CatalogEntry
	categories []string
}

// NewIndex builds the lookup structures for a completed catalog.
func NewIndex(entries []domain.CatalogEntry) *Index {
	byID := make(map[string]*domain.CatalogEntry, len(entries))
	seen := make(map[string]bool)
	var categories []string
	for i := range entries {
		e := &entries[i]
		byID[e.ID] = e
		if !seen[e.Category] {
			seen[e.Category] = true
			categories = append(categories, e.Category)
		}
	}
	return &Index{entries: entries, byID: byID, categories: categories}
}

// Entries returns the catalog in synthesis order. Callers must not
// mutate the returned slice.
func (ix *Index) Entries() []domain.CatalogEntry {
	return ix.entries
}

// Get looks up an entry by id.
func (ix *Index) Get(id string) (domain.CatalogEntry, bool) {
	e, ok := ix.byID[id]
	if !ok {
		return domain.CatalogEntry{}, false
	}
	return *e, true
}

// Len reports the catalog size.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// DistinctCategories returns the categories actually present in the
// catalog, in first-appearance order.
func (ix *Index) DistinctCategories() []string {
	return ix.categories
}

// RegionGroup resolves an entry region to its macro-group.
func RegionGroup(region string) string {
	return vocab.ResolveGroup(region)
}
