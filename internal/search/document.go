// Package search provides full-text relevance search over the catalog
// using Bleve. It complements the catalog's deterministic filter path:
// filtering preserves catalog order, search ranks by score.
package search

import (
	"github.com/heritageapp/heritage-server/internal/domain"
	"github.com/heritageapp/heritage-server/internal/vocab"
)

// HeritageDocument is the document structure for the Bleve index.
// The macro region group is denormalized at index time so it can be
// filtered and faceted without re-resolving per query.
type HeritageDocument struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	Region           string   `json:"region"`
	RegionGroup      string   `json:"region_group"`
	ShortDescription string   `json:"short_desc"`
	FullDescription  string   `json:"full_desc"`
	Tags             []string `json:"tags,omitempty"`
}

// ToMap converts the document to a map with lowercase field names.
// Bleve by default uses Go struct field names (capitalized), but our
// mapping uses lowercase names, so we convert explicitly.
func (d *HeritageDocument) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"id":           d.ID,
		"name":         d.Name,
		"category":     d.Category,
		"region":       d.Region,
		"region_group": d.RegionGroup,
		"short_desc":   d.ShortDescription,
		"full_desc":    d.FullDescription,
	}
	if len(d.Tags) > 0 {
		m["tags"] = d.Tags
	}
	return m
}

// EntryToDocument converts a catalog entry to its search document.
func EntryToDocument(e *domain.CatalogEntry) *HeritageDocument {
	return &HeritageDocument{
		ID:               e.ID,
		Name:             e.Name,
		Category:         e.Category,
		Region:           e.Region,
		RegionGroup:      vocab.ResolveGroup(e.Region),
		ShortDescription: e.ShortDescription,
		FullDescription:  e.FullDescription,
		Tags:             e.Tags,
	}
}
