package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/communitydirectory/directory-server/internal/config"
	"github.com/communitydirectory/directory-server/internal/logger"
	"github.com/communitydirectory/directory-server/internal/service"
	"github.com/communitydirectory/directory-server/internal/watcher"
)

// WatcherHandle wraps the dataset watcher with Shutdownable. The Watcher
// field is nil when watching is disabled.
type WatcherHandle struct {
	Watcher *watcher.Watcher
	started bool
}

// Shutdown implements do.Shutdownable.
func (h *WatcherHandle) Shutdown() error {
	if h.started && h.Watcher != nil {
		return h.Watcher.Stop()
	}
	return nil
}

// ProvideDatasetWatcher provides the file watcher that reloads the dataset
// when its JSON files change on disk.
func ProvideDatasetWatcher(i do.Injector) (*WatcherHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if !cfg.Dataset.Watch {
		log.Info("dataset watching disabled by configuration")
		return &WatcherHandle{}, nil
	}

	reloader := do.MustInvoke[*service.Reloader](i)

	w, err := watcher.New(cfg.Dataset.Path, func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = reloader.Reload(ctx)
	}, log.Logger)
	if err != nil {
		// A missing directory should not take the server down.
		log.Warn("dataset watching unavailable", "dir", cfg.Dataset.Path, "error", err)
		return &WatcherHandle{}, nil
	}

	w.Start()
	return &WatcherHandle{Watcher: w, started: true}, nil
}
