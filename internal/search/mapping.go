package search

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/lang/cjk"
	"github.com/blevesearch/bleve/v2/mapping"
)

// buildIndexMapping creates the Bleve index mapping for heritage
// documents. Entry text is Chinese, so text fields use the CJK
// analyzer; filter fields use the keyword analyzer for exact matches
// and faceting.
func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultAnalyzer = cjk.AnalyzerName

	docMapping := bleve.NewDocumentMapping()

	// Name - primary search target, stored for result rendering.
	nameFieldMapping := bleve.NewTextFieldMapping()
	nameFieldMapping.Analyzer = cjk.AnalyzerName
	nameFieldMapping.Store = true
	nameFieldMapping.IncludeTermVectors = true // For highlighting
	docMapping.AddFieldMappingsAt("name", nameFieldMapping)

	// Short description - searchable and stored.
	shortDescFieldMapping := bleve.NewTextFieldMapping()
	shortDescFieldMapping.Analyzer = cjk.AnalyzerName
	shortDescFieldMapping.Store = true
	shortDescFieldMapping.IncludeTermVectors = true
	docMapping.AddFieldMappingsAt("short_desc", shortDescFieldMapping)

	// Full description - searchable but not stored.
	fullDescFieldMapping := bleve.NewTextFieldMapping()
	fullDescFieldMapping.Analyzer = cjk.AnalyzerName
	fullDescFieldMapping.Store = false
	docMapping.AddFieldMappingsAt("full_desc", fullDescFieldMapping)

	// ID - stored but not analyzed.
	idFieldMapping := bleve.NewTextFieldMapping()
	idFieldMapping.Analyzer = keyword.Name
	idFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("id", idFieldMapping)

	// Category - exact match filter and facet source.
	categoryFieldMapping := bleve.NewTextFieldMapping()
	categoryFieldMapping.Analyzer = keyword.Name
	categoryFieldMapping.Store = true
	categoryFieldMapping.IncludeTermVectors = true
	docMapping.AddFieldMappingsAt("category", categoryFieldMapping)

	// Region - stored for display.
	regionFieldMapping := bleve.NewTextFieldMapping()
	regionFieldMapping.Analyzer = keyword.Name
	regionFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("region", regionFieldMapping)

	// Region group - exact match filter and facet source.
	regionGroupFieldMapping := bleve.NewTextFieldMapping()
	regionGroupFieldMapping.Analyzer = keyword.Name
	regionGroupFieldMapping.Store = true
	regionGroupFieldMapping.IncludeTermVectors = true
	docMapping.AddFieldMappingsAt("region_group", regionGroupFieldMapping)

	// Tags - keyword analyzer keeps compound tags intact.
	tagsFieldMapping := bleve.NewTextFieldMapping()
	tagsFieldMapping.Analyzer = keyword.Name
	tagsFieldMapping.Store = true
	tagsFieldMapping.IncludeTermVectors = true
	docMapping.AddFieldMappingsAt("tags", tagsFieldMapping)

	indexMapping.AddDocumentMapping("_default", docMapping)
	return indexMapping
}
