// Package search provides full-text business search using Bleve.
// It backs the /search endpoint with relevance-ranked, fuzzy-tolerant
// matching and faceted category/suburb counts; the structured filter
// predicates live in the query package and are unaffected by this index.
package search

import (
	"github.com/communitydirectory/directory-server/internal/domain"
)

// BusinessDocument is the document structure for the Bleve index.
//
// Design note: suburb and category are denormalized onto the document so
// a single query can match, filter, and facet without consulting the
// snapshot. The dataset is small enough that the whole index is rebuilt
// in memory on every reload.
type BusinessDocument struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	LocalName   string `json:"local_name,omitempty"`
	Description string `json:"description,omitempty"`

	// Keyword fields for exact filtering and faceting.
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory,omitempty"`
	Suburb      string   `json:"suburb,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Languages   []string `json:"languages,omitempty"`

	// Numeric fields for range queries and sorting.
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	UpdatedAt   int64   `json:"updated_at"` // Unix millis
}

// ToMap converts the document to a map with lowercase field names.
// Bleve by default uses Go struct field names (capitalized), but our
// mapping uses lowercase names, so we convert explicitly.
func (d *BusinessDocument) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"id":         d.ID,
		"name":       d.Name,
		"category":   d.Category,
		"rating":     d.Rating,
		"updated_at": d.UpdatedAt,
	}

	if d.LocalName != "" {
		m["local_name"] = d.LocalName
	}
	if d.Description != "" {
		m["description"] = d.Description
	}
	if d.Subcategory != "" {
		m["subcategory"] = d.Subcategory
	}
	if d.Suburb != "" {
		m["suburb"] = d.Suburb
	}
	if len(d.Tags) > 0 {
		m["tags"] = d.Tags
	}
	if len(d.Languages) > 0 {
		m["languages"] = d.Languages
	}
	if d.ReviewCount > 0 {
		m["review_count"] = d.ReviewCount
	}

	return m
}

// BusinessToDocument converts a domain Business to a BusinessDocument.
func BusinessToDocument(b *domain.Business) *BusinessDocument {
	return &BusinessDocument{
		ID:          b.ID,
		Name:        b.Name,
		LocalName:   b.LocalName,
		Description: b.Description,
		Category:    b.Category,
		Subcategory: b.Subcategory,
		Suburb:      b.Location.Suburb,
		Tags:        b.Tags,
		Languages:   b.Languages,
		Rating:      b.Rating,
		ReviewCount: b.ReviewCount,
		UpdatedAt:   b.UpdatedAtTime().UnixMilli(),
	}
}
