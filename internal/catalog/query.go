package catalog

import (
	"strings"

	"github.com/heritageapp/heritage-server/internal/domain"
	"github.com/heritageapp/heritage-server/internal/vocab"
)

// Query filters and pages the catalog. The three filters are conjunctive
// and order-preserving: matches keep their synthesis order with no
// secondary sort. Page numbers past the last page are not clamped; they
// return an empty item list with the true total, which callers treat as
// a normal outcome.
func (ix *Index) Query(params domain.QueryParams) domain.QueryResult {
	term := strings.ToLower(strings.TrimSpace(params.Term))

	var matches []domain.CatalogEntry
	for _, e := range ix.entries {
		if !matchesTerm(e, term) {
			continue
		}
		if !matchesCategory(e, params.Category) {
			continue
		}
		if !matchesRegionGroup(e, params.RegionGroup) {
			continue
		}
		matches = append(matches, e)
	}

	total := len(matches)
	start := (params.Page - 1) * params.PageSize
	end := start + params.PageSize
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return domain.QueryResult{
		Items: matches[start:end],
		Total: total,
		Page:  params.Page,
	}
}

func matchesTerm(e domain.CatalogEntry, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Name), term) ||
		strings.Contains(strings.ToLower(e.ShortDescription), term)
}

func matchesCategory(e domain.CatalogEntry, category string) bool {
	if category == "" || category == vocab.AllSentinel {
		return true
	}
	return e.Category == category
}

func matchesRegionGroup(e domain.CatalogEntry, group string) bool {
	if group == "" || group == vocab.AllSentinel {
		return true
	}
	return vocab.ResolveGroup(e.Region) == group
}
