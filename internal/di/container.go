// Package di provides dependency injection configuration for the
// directory server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/communitydirectory/directory-server/internal/config"
	"github.com/communitydirectory/directory-server/internal/dataset"
	"github.com/communitydirectory/directory-server/internal/di/providers"
	"github.com/communitydirectory/directory-server/internal/logger"
	"github.com/communitydirectory/directory-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Dataset layer
	do.Provide(injector, providers.ProvideCache)
	do.Provide(injector, providers.ProvideSheetsClient)
	do.Provide(injector, providers.ProvideDatasetSource)
	do.Provide(injector, providers.ProvideHolder)

	// Search layer
	do.Provide(injector, providers.ProvideSearchIndex)

	// Business services
	do.Provide(injector, providers.ProvideDirectoryService)
	do.Provide(injector, providers.ProvideStatsService)
	do.Provide(injector, providers.ProvideSearchService)
	do.Provide(injector, providers.ProvideContributionService)
	do.Provide(injector, providers.ProvideReloader)

	// Workers
	do.Provide(injector, providers.ProvideDatasetWatcher)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle
// management. This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.CacheHandle](injector)
	_ = do.MustInvoke[*providers.SheetsHandle](injector)
	_ = do.MustInvoke[dataset.Source](injector)
	_ = do.MustInvoke[*dataset.Holder](injector)
	_ = do.MustInvoke[*providers.SearchIndexHandle](injector)

	// Business services
	_ = do.MustInvoke[*service.DirectoryService](injector)
	_ = do.MustInvoke[*service.StatsService](injector)
	_ = do.MustInvoke[*service.SearchService](injector)
	_ = do.MustInvoke[*service.ContributionService](injector)
	_ = do.MustInvoke[*service.Reloader](injector)

	// Workers
	_ = do.MustInvoke[*providers.WatcherHandle](injector)

	// Server
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
