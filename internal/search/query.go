package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
)

// Params configures a search query.
type Params struct {
	Query string // User's search query

	// Filters
	Category  string  // Exact category ID
	Suburb    string  // Exact suburb name
	MinRating float64 // Minimum rating (0 = no constraint)

	// Pagination
	Limit  int
	Offset int

	// Options
	IncludeFacets bool // Include category/suburb facet counts
	Highlight     bool // Include match highlighting
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
	TookMs int64   `json:"tookMs"`
	Hits   []Hit   `json:"hits"`
	Facets *Facets `json:"facets,omitempty"`
}

// Hit represents a single search result.
type Hit struct {
	ID          string            `json:"id"`
	Score       float64           `json:"score"`
	Name        string            `json:"name"`
	LocalName   string            `json:"localName,omitempty"`
	Category    string            `json:"category"`
	Suburb      string            `json:"suburb,omitempty"`
	Rating      float64           `json:"rating"`
	ReviewCount int               `json:"reviewCount,omitempty"`
	Highlights  map[string]string `json:"highlights,omitempty"`
}

// Facets contains facet counts.
type Facets struct {
	Categories []FacetCount `json:"categories,omitempty"`
	Suburbs    []FacetCount `json:"suburbs,omitempty"`
}

// FacetCount represents a facet value and its count.
type FacetCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Search executes a search query against the index.
func (s *Index) Search(ctx context.Context, params Params) (*Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	searchQuery := buildSearchQuery(params)
	searchRequest := bleve.NewSearchRequestOptions(searchQuery, params.Limit, params.Offset, false)
	searchRequest.SortBy([]string{"-_score", "name"})

	if params.IncludeFacets {
		searchRequest.AddFacet("category", bleve.NewFacetRequest("category", 20))
		searchRequest.AddFacet("suburb", bleve.NewFacetRequest("suburb", 20))
	}

	if params.Highlight {
		searchRequest.Highlight = bleve.NewHighlight()
		searchRequest.Highlight.AddField("name")
		searchRequest.Highlight.AddField("description")
	}

	searchRequest.Fields = []string{
		"id", "name", "local_name", "category", "suburb", "rating", "review_count",
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
		if ln, ok := hit.Fields["local_name"].(string); ok {
			h.LocalName = ln
		}
		if c, ok := hit.Fields["category"].(string); ok {
			h.Category = c
		}
		if sb, ok := hit.Fields["suburb"].(string); ok {
			h.Suburb = sb
		}
		if r, ok := hit.Fields["rating"].(float64); ok {
			h.Rating = r
		}
		if rc, ok := hit.Fields["review_count"].(float64); ok {
			h.ReviewCount = int(rc)
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

		// Name match with highest boost
		nameMatch := bleve.NewMatchQuery(params.Query)
		nameMatch.SetField("name")
		nameMatch.SetBoost(3.0)
		textQueries = append(textQueries, nameMatch)

		descMatch := bleve.NewMatchQuery(params.Query)
		descMatch.SetField("description")
		textQueries = append(textQueries, descMatch)

		// Local-language names are indexed verbatim; match the raw query
		localMatch := bleve.NewMatchQuery(params.Query)
		localMatch.SetField("local_name")
		localMatch.SetBoost(2.0)
		textQueries = append(textQueries, localMatch)

		// Fuzzy matching for typo tolerance on name
		fuzzyQuery := bleve.NewFuzzyQuery(params.Query)
		fuzzyQuery.SetFuzziness(1)
		fuzzyQuery.SetField("name")
		fuzzyQuery.SetBoost(0.8)
		textQueries = append(textQueries, fuzzyQuery)

		// Prefix query for autocomplete (minimum 2 chars)
		if len(params.Query) >= 2 {
			prefixQuery := bleve.NewPrefixQuery(strings.ToLower(params.Query))
			prefixQuery.SetField("name")
			prefixQuery.SetBoost(0.5)
			textQueries = append(textQueries, prefixQuery)
		}

		queries = append(queries, bleve.NewDisjunctionQuery(textQueries...))
	}

	if params.Category != "" {
		tq := bleve.NewTermQuery(params.Category)
		tq.SetField("category")
		queries = append(queries, tq)
	}

	if params.Suburb != "" {
		tq := bleve.NewTermQuery(params.Suburb)
		tq.SetField("suburb")
		queries = append(queries, tq)
	}

	if params.MinRating > 0 {
		min := params.MinRating
		rangeQuery := bleve.NewNumericRangeQuery(&min, nil)
		rangeQuery.SetField("rating")
		queries = append(queries, rangeQuery)
	}

	// Combine all queries with AND
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

	if suburbFacet, ok := result.Facets["suburb"]; ok {
		for _, term := range suburbFacet.Terms.Terms() {
			facets.Suburbs = append(facets.Suburbs, FacetCount{
				Value: term.Term,
				Count: term.Count,
			})
		}
	}

	return facets
}
