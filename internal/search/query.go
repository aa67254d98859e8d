package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
	"golang.org/x/text/unicode/norm"
)

// Params configures a search query.
type Params struct {
	Query string // User's search query

	// Filters (exact match; empty = no filter)
	Category    string
	RegionGroup string

	// Pagination
	Limit  int
	Offset int

	// Options
	IncludeFacets bool
	Highlight     bool
}

// DefaultParams returns sensible defaults.
func DefaultParams() Params {
	return Params{
		Limit:         20,
		Offset:        0,
		IncludeFacets: true,
		Highlight:     true,
	}
}

// Result represents the search results.
type Result struct {
	Query  string  `json:"query"`
	Total  uint64  `json:"total"`
	TookMs int64   `json:"took_ms"`
	Hits   []Hit   `json:"hits"`
	Facets *Facets `json:"facets,omitempty"`
}

// Hit represents a single search result.
type Hit struct {
	ID               string            `json:"id"`
	Score            float64           `json:"score"`
	Name             string            `json:"name"`
	Category         string            `json:"category"`
	Region           string            `json:"region"`
	RegionGroup      string            `json:"region_group"`
	ShortDescription string            `json:"short_desc"`
	Highlights       map[string]string `json:"highlights,omitempty"`
}

// Facets contains facet counts.
type Facets struct {
	Categories   []FacetCount `json:"categories,omitempty"`
	RegionGroups []FacetCount `json:"region_groups,omitempty"`
}

// FacetCount represents a facet value and its count.
type FacetCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Search executes a relevance-ranked query over the catalog index.
func (s *Index) Search(ctx context.Context, params Params) (*Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// IME input often arrives with fullwidth forms; fold them so term
	// text matches what was indexed.
	params.Query = norm.NFKC.String(strings.TrimSpace(params.Query))

	searchQuery := buildSearchQuery(params)
	searchRequest := bleve.NewSearchRequestOptions(searchQuery, params.Limit, params.Offset, false)
	searchRequest.SortBy([]string{"-_score"})

	if params.IncludeFacets {
		searchRequest.AddFacet("category", bleve.NewFacetRequest("category", 20))
		searchRequest.AddFacet("region_group", bleve.NewFacetRequest("region_group", 20))
	}

	if params.Highlight {
		searchRequest.Highlight = bleve.NewHighlight()
		searchRequest.Highlight.AddField("name")
		searchRequest.Highlight.AddField("short_desc")
	}

	searchRequest.Fields = []string{
		"id", "name", "category", "region", "region_group", "short_desc",
	}

	searchResult, err := s.index.SearchInContext(ctx, searchRequest)
	if err != nil {
		return nil, fmt.Errorf("execute search: %w", err)
	}

	result := &Result{
		Query:  params.Query,
		Total:  searchResult.Total,
		TookMs: searchResult.Took.Milliseconds(),
		Hits:   make([]Hit, 0, len(searchResult.Hits)),
	}

	for _, hit := range searchResult.Hits {
		h := Hit{
			ID:    hit.ID,
			Score: hit.Score,
		}
		if n, ok := hit.Fields["name"].(string); ok {
			h.Name = n
		}
		if c, ok := hit.Fields["category"].(string); ok {
			h.Category = c
		}
		if r, ok := hit.Fields["region"].(string); ok {
			h.Region = r
		}
		if g, ok := hit.Fields["region_group"].(string); ok {
			h.RegionGroup = g
		}
		if d, ok := hit.Fields["short_desc"].(string); ok {
			h.ShortDescription = d
		}

		if len(hit.Fragments) > 0 {
			h.Highlights = make(map[string]string)
			for field, fragments := range hit.Fragments {
				if len(fragments) > 0 {
					h.Highlights[field] = fragments[0]
				}
			}
		}

		result.Hits = append(result.Hits, h)
	}

	if params.IncludeFacets {
		result.Facets = extractFacets(searchResult)
	}
	return result, nil
}

// buildSearchQuery constructs the Bleve query from params.
func buildSearchQuery(params Params) query.Query {
	var queries []query.Query

	if params.Query != "" {
		textQueries := []query.Query{}

		// Name match with highest boost.
		nameMatch := bleve.NewMatchQuery(params.Query)
		nameMatch.SetField("name")
		nameMatch.SetBoost(3.0)
		textQueries = append(textQueries, nameMatch)

		shortMatch := bleve.NewMatchQuery(params.Query)
		shortMatch.SetField("short_desc")
		shortMatch.SetBoost(1.5)
		textQueries = append(textQueries, shortMatch)

		fullMatch := bleve.NewMatchQuery(params.Query)
		fullMatch.SetField("full_desc")
		textQueries = append(textQueries, fullMatch)

		queries = append(queries, bleve.NewDisjunctionQuery(textQueries...))
	}

	if params.Category != "" {
		tq := bleve.NewTermQuery(params.Category)
		tq.SetField("category")
		queries = append(queries, tq)
	}

	if params.RegionGroup != "" {
		tq := bleve.NewTermQuery(params.RegionGroup)
		tq.SetField("region_group")
		queries = append(queries, tq)
	}

	if len(queries) == 0 {
		return bleve.NewMatchAllQuery()
	}
	if len(queries) == 1 {
		return queries[0]
	}
	return bleve.NewConjunctionQuery(queries...)
}

// extractFacets converts Bleve facets to our format.
func extractFacets(result *bleve.SearchResult) *Facets {
	facets := &Facets{}

	if categoryFacet, ok := result.Facets["category"]; ok {
		for _, term := range categoryFacet.Terms.Terms() {
			facets.Categories = append(facets.Categories, FacetCount{
				Value: term.Term,
				Count: term.Count,
			})
		}
	}
	if groupFacet, ok := result.Facets["region_group"]; ok {
		for _, term := range groupFacet.Terms.Terms() {
			facets.RegionGroups = append(facets.RegionGroups, FacetCount{
				Value: term.Term,
				Count: term.Count,
			})
		}
	}
	return facets
}
