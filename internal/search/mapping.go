package search

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/mapping"
)

// buildIndexMapping creates the Bleve index mapping for business documents.
//
// The mapping is designed with these priorities:
//  1. Fast full-text search on names and descriptions with English stemming
//  2. Exact keyword matching for category/suburb filters and facets
//  3. Numeric fields for rating sorts and recency
func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultAnalyzer = en.AnalyzerName

	docMapping := bleve.NewDocumentMapping()

	// --- Text fields (full-text searchable) ---

	// Name - primary search target
	nameFieldMapping := bleve.NewTextFieldMapping()
	nameFieldMapping.Analyzer = en.AnalyzerName
	nameFieldMapping.Store = true
	nameFieldMapping.IncludeTermVectors = true // For highlighting
	docMapping.AddFieldMappingsAt("name", nameFieldMapping)

	// Local-language name - searchable alongside the English name.
	// The keyword analyzer keeps non-Latin text intact rather than
	// running English stemming over it.
	localNameFieldMapping := bleve.NewTextFieldMapping()
	localNameFieldMapping.Analyzer = keyword.Name
	localNameFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("local_name", localNameFieldMapping)

	// Description - searchable but not stored (too large)
	descFieldMapping := bleve.NewTextFieldMapping()
	descFieldMapping.Analyzer = en.AnalyzerName
	descFieldMapping.Store = false
	docMapping.AddFieldMappingsAt("description", descFieldMapping)

	// --- Keyword fields (exact match, facetable) ---

	idFieldMapping := bleve.NewTextFieldMapping()
	idFieldMapping.Analyzer = keyword.Name
	docMapping.AddFieldMappingsAt("id", idFieldMapping)

	categoryFieldMapping := bleve.NewTextFieldMapping()
	categoryFieldMapping.Analyzer = keyword.Name
	categoryFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("category", categoryFieldMapping)

	subcategoryFieldMapping := bleve.NewTextFieldMapping()
	subcategoryFieldMapping.Analyzer = keyword.Name
	subcategoryFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("subcategory", subcategoryFieldMapping)

	suburbFieldMapping := bleve.NewTextFieldMapping()
	suburbFieldMapping.Analyzer = keyword.Name
	suburbFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("suburb", suburbFieldMapping)

	// Tags - keyword analyzer keeps compound tags intact (e.g., "dine-in")
	tagsFieldMapping := bleve.NewTextFieldMapping()
	tagsFieldMapping.Analyzer = keyword.Name
	tagsFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("tags", tagsFieldMapping)

	languagesFieldMapping := bleve.NewTextFieldMapping()
	languagesFieldMapping.Analyzer = keyword.Name
	languagesFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("languages", languagesFieldMapping)

	// --- Numeric fields (range queries, sorting) ---

	ratingFieldMapping := bleve.NewNumericFieldMapping()
	ratingFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("rating", ratingFieldMapping)

	reviewCountFieldMapping := bleve.NewNumericFieldMapping()
	reviewCountFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("review_count", reviewCountFieldMapping)

	updatedAtFieldMapping := bleve.NewNumericFieldMapping()
	updatedAtFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("updated_at", updatedAtFieldMapping)

	indexMapping.AddDocumentMapping("_default", docMapping)

	return indexMapping
}
