package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/communitydirectory/directory-server/internal/domain"
)

func (s *Server) registerStatsRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getStats",
		Method:      http.MethodGet,
		Path:        "/api/v1/stats",
		Summary:     "Directory statistics",
		Description: "Returns aggregate figures computed from the current snapshot",
		Tags:        []string{"Stats"},
	}, s.handleGetStats)
}

// StatsOutput wraps the directory statistics for Huma.
type StatsOutput struct {
	Body domain.DirectoryStats
}

func (s *Server) handleGetStats(_ context.Context, _ *struct{}) (*StatsOutput, error) {
	return &StatsOutput{Body: s.services.Stats.Stats()}, nil
}
