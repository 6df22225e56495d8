package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerHealthRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns server health status with component checks",
		Tags:        []string{"Health"},
	}, s.handleHealthCheck)
}

// ComponentHealth describes the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status" doc:"Component status: healthy, degraded, or unhealthy"`
	Message string `json:"message,omitempty" doc:"Additional status information"`
}

// HealthResponse contains health check data in API responses.
type HealthResponse struct {
	Status     string                     `json:"status" doc:"Overall status: healthy, degraded, or unhealthy"`
	Components map[string]ComponentHealth `json:"components" doc:"Individual component statuses"`
}

// HealthOutput wraps the health response for Huma.
type HealthOutput struct {
	Body HealthResponse
}

func (s *Server) handleHealthCheck(_ context.Context, _ *struct{}) (*HealthOutput, error) {
	components := make(map[string]ComponentHealth)
	overall := "healthy"

	datasetHealth := s.checkDataset()
	components["dataset"] = datasetHealth
	if datasetHealth.Status == "unhealthy" {
		overall = "unhealthy"
	} else if datasetHealth.Status == "degraded" && overall == "healthy" {
		overall = "degraded"
	}

	searchHealth := s.checkSearchIndex()
	components["search"] = searchHealth
	if searchHealth.Status == "unhealthy" {
		overall = "unhealthy"
	} else if searchHealth.Status == "degraded" && overall == "healthy" {
		overall = "degraded"
	}

	components["cache"] = s.checkCache()

	return &HealthOutput{
		Body: HealthResponse{
			Status:     overall,
			Components: components,
		},
	}, nil
}

// checkDataset verifies a snapshot is installed and non-empty.
func (s *Server) checkDataset() ComponentHealth {
	if s.services == nil || s.services.Directory == nil {
		return ComponentHealth{
			Status:  "degraded",
			Message: "directory service not configured",
		}
	}

	loadedAt := s.services.Directory.LoadedAt()
	total := len(s.services.Directory.ListBusinesses())

	if total == 0 {
		return ComponentHealth{
			Status:  "degraded",
			Message: "no businesses loaded",
		}
	}

	return ComponentHealth{
		Status:  "healthy",
		Message: "loaded " + loadedAt.UTC().Format(time.RFC3339),
	}
}

// checkSearchIndex verifies the Bleve index is accessible.
func (s *Server) checkSearchIndex() ComponentHealth {
	if s.services == nil || s.services.Search == nil {
		return ComponentHealth{
			Status:  "degraded",
			Message: "search service not configured",
		}
	}

	docCount, err := s.services.Search.DocumentCount()
	if err != nil {
		return ComponentHealth{
			Status:  "unhealthy",
			Message: "search index unreachable",
		}
	}

	// Accessible but empty means a rebuild is pending.
	if docCount == 0 {
		return ComponentHealth{
			Status:  "degraded",
			Message: "search index empty",
		}
	}

	return ComponentHealth{Status: "healthy"}
}

// checkCache reports the fallback cache state. Absence is not a failure;
// deployments serving only the bundled dataset run without one.
func (s *Server) checkCache() ComponentHealth {
	if s.cache == nil {
		return ComponentHealth{
			Status:  "healthy",
			Message: "cache not configured",
		}
	}

	fetchedAt := s.cache.FetchedAt()
	if fetchedAt.IsZero() {
		return ComponentHealth{
			Status:  "healthy",
			Message: "cache empty",
		}
	}

	return ComponentHealth{
		Status:  "healthy",
		Message: "last fetched " + fetchedAt.UTC().Format(time.RFC3339),
	}
}
