package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/communitydirectory/directory-server/internal/domain"
	"github.com/communitydirectory/directory-server/internal/hours"
)

const defaultHighlightCount = 6

func (s *Server) registerBusinessRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listBusinesses",
		Method:      http.MethodGet,
		Path:        "/api/v1/businesses",
		Summary:     "List businesses",
		Description: "Returns businesses matching the given filters, optionally sorted",
		Tags:        []string{"Businesses"},
	}, s.handleListBusinesses)

	huma.Register(s.api, huma.Operation{
		OperationID: "featuredBusinesses",
		Method:      http.MethodGet,
		Path:        "/api/v1/businesses/featured",
		Summary:     "Featured businesses",
		Description: "Returns the highest-rated businesses",
		Tags:        []string{"Businesses"},
	}, s.handleFeaturedBusinesses)

	huma.Register(s.api, huma.Operation{
		OperationID: "recentBusinesses",
		Method:      http.MethodGet,
		Path:        "/api/v1/businesses/recent",
		Summary:     "Recently updated businesses",
		Tags:        []string{"Businesses"},
	}, s.handleRecentBusinesses)

	huma.Register(s.api, huma.Operation{
		OperationID: "getBusiness",
		Method:      http.MethodGet,
		Path:        "/api/v1/businesses/{id}",
		Summary:     "Get business",
		Tags:        []string{"Businesses"},
	}, s.handleGetBusiness)
}

// ListBusinessesInput carries the filter and sort query parameters.
// Every filter is optional and filters combine as AND.
type ListBusinessesInput struct {
	Query          string  `query:"q" doc:"Free-text match over name, description, and tags"`
	Category       string  `query:"category" doc:"Category id"`
	Subcategory    string  `query:"subcategory" doc:"Subcategory id"`
	Suburb         string  `query:"suburb" doc:"Suburb name (case-insensitive)"`
	MinRating      float64 `query:"rating" doc:"Minimum rating, inclusive"`
	PriceRange     string  `query:"priceRange" doc:"Exact price tier ($ through $$$$)"`
	CommunityOwned bool    `query:"communityOwned" doc:"Only community-owned businesses"`
	Verified       bool    `query:"verified" doc:"Only verified businesses"`
	OpenNow        bool    `query:"openNow" doc:"Only businesses open at request time"`
	Languages      string  `query:"languages" doc:"Comma-separated languages; any match qualifies"`
	Sort           string  `query:"sort" doc:"Ordering: name, rating, or recent; unknown values keep dataset order"`
}

// ListBusinessesResponse contains a business collection.
type ListBusinessesResponse struct {
	Businesses []domain.Business `json:"businesses"`
	Total      int               `json:"total"`
}

// ListBusinessesOutput wraps the response for Huma.
type ListBusinessesOutput struct {
	Body ListBusinessesResponse
}

func (s *Server) handleListBusinesses(_ context.Context, input *ListBusinessesInput) (*ListBusinessesOutput, error) {
	filters := domain.SearchFilters{
		Query:          input.Query,
		Category:       input.Category,
		Subcategory:    input.Subcategory,
		Suburb:         input.Suburb,
		MinRating:      input.MinRating,
		PriceRange:     domain.PriceRange(input.PriceRange),
		CommunityOwned: input.CommunityOwned,
		Verified:       input.Verified,
		OpenNow:        input.OpenNow,
		Languages:      splitCSV(input.Languages),
	}

	results := s.services.Directory.Search(filters, domain.SortKey(input.Sort))
	return &ListBusinessesOutput{
		Body: ListBusinessesResponse{
			Businesses: results,
			Total:      len(results),
		},
	}, nil
}

// HighlightInput selects how many businesses to return.
type HighlightInput struct {
	Limit int `query:"limit" doc:"Maximum number of businesses to return"`
}

func (s *Server) handleFeaturedBusinesses(_ context.Context, input *HighlightInput) (*ListBusinessesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultHighlightCount
	}

	results := s.services.Stats.Featured(limit)
	return &ListBusinessesOutput{
		Body: ListBusinessesResponse{
			Businesses: results,
			Total:      len(results),
		},
	}, nil
}

func (s *Server) handleRecentBusinesses(_ context.Context, input *HighlightInput) (*ListBusinessesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultHighlightCount
	}

	results := s.services.Stats.Recent(limit)
	return &ListBusinessesOutput{
		Body: ListBusinessesResponse{
			Businesses: results,
			Total:      len(results),
		},
	}, nil
}

// GetBusinessInput identifies a single business.
type GetBusinessInput struct {
	ID string `path:"id" doc:"Business id"`
}

// BusinessDetail is a business plus fields computed at request time for
// the detail view.
type BusinessDetail struct {
	domain.Business
	OpenNow    bool   `json:"openNow" doc:"Whether the business is open right now"`
	HoursToday string `json:"hoursToday" doc:"Display string for today's opening hours"`
}

// BusinessOutput wraps a single business for Huma.
type BusinessOutput struct {
	Body BusinessDetail
}

func (s *Server) handleGetBusiness(_ context.Context, input *GetBusinessInput) (*BusinessOutput, error) {
	b, err := s.services.Directory.Business(input.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &BusinessOutput{Body: BusinessDetail{
		Business:   *b,
		OpenNow:    hours.IsOpenAt(b.Hours, now),
		HoursToday: hours.TodayLabel(b.Hours, now),
	}}, nil
}

// splitCSV splits a comma-separated value into trimmed non-empty entries.
func splitCSV(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
