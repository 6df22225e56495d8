package api

import (
	"github.com/communitydirectory/directory-server/internal/service"
)

// Services groups all business services needed by the API handlers.
// This reduces the parameter count for NewServer and improves testability.
type Services struct {
	Directory    *service.DirectoryService
	Stats        *service.StatsService
	Search       *service.SearchService
	Contribution *service.ContributionService
}
