package providers

import (
	"github.com/samber/do/v2"

	"github.com/communitydirectory/directory-server/internal/dataset"
	"github.com/communitydirectory/directory-server/internal/logger"
	"github.com/communitydirectory/directory-server/internal/service"
	"github.com/communitydirectory/directory-server/internal/validation"
)

// ProvideDirectoryService provides business, category, and suburb lookups.
func ProvideDirectoryService(i do.Injector) (*service.DirectoryService, error) {
	holder := do.MustInvoke[*dataset.Holder](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewDirectoryService(holder, log.Logger), nil
}

// ProvideStatsService provides aggregations over the snapshot.
func ProvideStatsService(i do.Injector) (*service.StatsService, error) {
	holder := do.MustInvoke[*dataset.Holder](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewStatsService(holder, log.Logger), nil
}

// ProvideSearchService provides full-text queries over the index.
func ProvideSearchService(i do.Injector) (*service.SearchService, error) {
	indexHandle := do.MustInvoke[*SearchIndexHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewSearchService(indexHandle.Index, log.Logger), nil
}

// ProvideContributionService provides community submissions. Submissions
// are disabled (503) when the spreadsheet is not configured.
func ProvideContributionService(i do.Injector) (*service.ContributionService, error) {
	holder := do.MustInvoke[*dataset.Holder](i)
	sheetsHandle := do.MustInvoke[*SheetsHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	var appender service.Appender
	if sheetsHandle.Client != nil {
		appender = sheetsHandle.Client
	}

	return service.NewContributionService(appender, holder, validation.New(), log.Logger), nil
}

// ProvideReloader provides the snapshot reloader used at startup and by
// the file watcher.
func ProvideReloader(i do.Injector) (*service.Reloader, error) {
	source := do.MustInvoke[dataset.Source](i)
	holder := do.MustInvoke[*dataset.Holder](i)
	indexHandle := do.MustInvoke[*SearchIndexHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewReloader(source, holder, indexHandle.Index, log.Logger), nil
}
