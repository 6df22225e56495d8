package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/communitydirectory/directory-server/internal/search"
)

func (s *Server) registerSearchRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "searchBusinesses",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Full-text search",
		Description: "Relevance-ranked search over the business index with typo tolerance and facets",
		Tags:        []string{"Search"},
	}, s.handleSearch)
}

// SearchInput carries the full-text search parameters.
type SearchInput struct {
	Query     string  `query:"q" doc:"Search query"`
	Category  string  `query:"category" doc:"Exact category id"`
	Suburb    string  `query:"suburb" doc:"Exact suburb name"`
	MinRating float64 `query:"minRating" doc:"Minimum rating, inclusive"`
	Limit     int     `query:"limit" doc:"Maximum hits to return (default 20, max 100)"`
	Offset    int     `query:"offset" doc:"Hits to skip for pagination"`
	Facets    bool    `query:"facets" default:"true" doc:"Include category and suburb facet counts"`
	Highlight bool    `query:"highlight" default:"true" doc:"Include match highlighting"`
}

// SearchOutput wraps the search result for Huma.
type SearchOutput struct {
	Body search.Result
}

func (s *Server) handleSearch(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	result, err := s.services.Search.Query(ctx, search.Params{
		Query:         input.Query,
		Category:      input.Category,
		Suburb:        input.Suburb,
		MinRating:     input.MinRating,
		Limit:         input.Limit,
		Offset:        input.Offset,
		IncludeFacets: input.Facets,
		Highlight:     input.Highlight,
	})
	if err != nil {
		return nil, err
	}
	return &SearchOutput{Body: *result}, nil
}
