package service

import (
	"context"
	"log/slog"

	"github.com/communitydirectory/directory-server/internal/errors"
	"github.com/communitydirectory/directory-server/internal/search"
)

// Search limits enforced regardless of what the client asks for.
const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

// SearchService runs relevance-ranked queries against the full-text index.
type SearchService struct {
	index  *search.Index
	logger *slog.Logger
}

// NewSearchService creates a new search service.
func NewSearchService(index *search.Index, logger *slog.Logger) *SearchService {
	return &SearchService{
		index:  index,
		logger: logger,
	}
}

// DocumentCount returns the number of indexed businesses.
func (s *SearchService) DocumentCount() (uint64, error) {
	return s.index.DocumentCount()
}

// Query executes a full-text search with clamped pagination.
func (s *SearchService) Query(ctx context.Context, params search.Params) (*search.Result, error) {
	if params.Limit <= 0 {
		params.Limit = defaultSearchLimit
	}
	if params.Limit > maxSearchLimit {
		params.Limit = maxSearchLimit
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	result, err := s.index.Search(ctx, params)
	if err != nil {
		s.logger.Error("search failed", "query", params.Query, "error", err)
		return nil, errors.Internal("search failed").WithCause(err)
	}
	return result, nil
}
