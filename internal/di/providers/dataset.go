package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/communitydirectory/directory-server/internal/cache"
	"github.com/communitydirectory/directory-server/internal/config"
	"github.com/communitydirectory/directory-server/internal/dataset"
	"github.com/communitydirectory/directory-server/internal/logger"
	"github.com/communitydirectory/directory-server/internal/sheets"
)

// CacheHandle wraps the fallback cache with Shutdownable. The Cache field
// is nil when the remote source is not configured.
type CacheHandle struct {
	Cache *cache.Cache
}

// Shutdown implements do.Shutdownable.
func (h *CacheHandle) Shutdown() error {
	if h.Cache != nil {
		return h.Cache.Close()
	}
	return nil
}

// ProvideCache provides the last-known-good dataset cache. Only opened
// when the remote spreadsheet source is configured; the bundled dataset
// needs no fallback copy.
func ProvideCache(i do.Injector) (*CacheHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if !cfg.Sheets.Enabled() {
		return &CacheHandle{}, nil
	}

	c, err := cache.Open(cfg.Cache.Path, log.Logger)
	if err != nil {
		// The cache is an availability aid, not a requirement.
		log.Warn("could not open dataset cache, continuing without it", "path", cfg.Cache.Path, "error", err)
		return &CacheHandle{}, nil
	}
	return &CacheHandle{Cache: c}, nil
}

// SheetsHandle carries the optional Sheets client. Nil when the remote
// source is not configured, which also disables contributions.
type SheetsHandle struct {
	Client *sheets.Client
}

// ProvideSheetsClient provides the Google Sheets client.
func ProvideSheetsClient(i do.Injector) (*SheetsHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)

	if !cfg.Sheets.Enabled() {
		return &SheetsHandle{}, nil
	}

	client, err := sheets.NewClient(context.Background(), cfg.Sheets.SpreadsheetID, cfg.Sheets.APIKey)
	if err != nil {
		return nil, err
	}
	return &SheetsHandle{Client: client}, nil
}

// ProvideDatasetSource provides the dataset source: the spreadsheet with
// cache and local fallback when configured, the local files otherwise.
func ProvideDatasetSource(i do.Injector) (dataset.Source, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	local := dataset.NewLocalSource(cfg.Dataset.Path, log.Logger)

	sheetsHandle := do.MustInvoke[*SheetsHandle](i)
	if sheetsHandle.Client == nil {
		return local, nil
	}

	cacheHandle := do.MustInvoke[*CacheHandle](i)
	return sheets.NewRemoteSource(sheetsHandle.Client, cacheHandle.Cache, local, log.Logger), nil
}

// ProvideHolder provides the snapshot holder, seeded with the first load.
func ProvideHolder(i do.Injector) (*dataset.Holder, error) {
	source := do.MustInvoke[dataset.Source](i)
	log := do.MustInvoke[*logger.Logger](i)

	snap, err := dataset.Build(context.Background(), source)
	if err != nil {
		return nil, err
	}

	log.Info("dataset loaded",
		"businesses", len(snap.Businesses()),
		"categories", len(snap.Categories()),
		"suburbs", len(snap.Suburbs()),
	)
	return dataset.NewHolder(snap), nil
}
