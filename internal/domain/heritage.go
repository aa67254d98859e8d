// Package domain contains the core types of the heritage catalog.
package domain

// CatalogEntry represents one heritage craft or tradition surfaced by
// list, search, and detail views.
type CatalogEntry struct {
	// ID is unique across the whole catalog. Synthesized entries get
	// contiguous integer ids continuing after the curated seed set.
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	Region           string   `json:"region"`
	ShortDescription string   `json:"desc"`
	FullDescription  string   `json:"full_desc"`
	ImageURL         string   `json:"image_url"`
	ModelURL         string   `json:"model_url,omitempty"` // Optional 3D asset, absent for most entries
	Tags             []string `json:"tags"`
}

// QueryParams describes a catalog list request after parsing.
type QueryParams struct {
	// Term is matched case-insensitively as a substring of name or short
	// description. Empty matches everything.
	Term string
	// Category filters by exact category; the 全部 sentinel (or empty)
	// disables the filter.
	Category string
	// RegionGroup filters by resolved macro-group; the 全部 sentinel (or
	// empty) disables the filter.
	RegionGroup string
	Page        int
	PageSize    int
}

// QueryResult is a single page of a filtered catalog listing.
type QueryResult struct {
	Items []CatalogEntry `json:"items"`
	// Total is the size of the filtered set before pagination.
	Total int `json:"total"`
	Page  int `json:"page"`
}
