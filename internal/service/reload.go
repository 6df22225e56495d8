package service

import (
	"context"
	"log/slog"

	"github.com/communitydirectory/directory-server/internal/dataset"
	"github.com/communitydirectory/directory-server/internal/search"
)

// Reloader rebuilds the snapshot from the source and installs it, then
// rebuilds the search index from the new snapshot. The file watcher and
// startup both drive reloads through here.
type Reloader struct {
	source dataset.Source
	holder *dataset.Holder
	index  *search.Index
	logger *slog.Logger
}

// NewReloader creates a new reloader. The index may be nil when search is
// not wired (some tests).
func NewReloader(source dataset.Source, holder *dataset.Holder, index *search.Index, logger *slog.Logger) *Reloader {
	return &Reloader{
		source: source,
		holder: holder,
		index:  index,
		logger: logger,
	}
}

// Reload builds a fresh snapshot and swaps it in. On failure the previous
// snapshot stays installed; readers never observe a partial load.
func (r *Reloader) Reload(ctx context.Context) error {
	snap, err := dataset.Build(ctx, r.source)
	if err != nil {
		r.logger.Error("dataset reload failed, keeping previous snapshot", "error", err)
		return err
	}

	r.holder.Replace(snap)
	r.logger.Info("dataset reloaded",
		"businesses", len(snap.Businesses()),
		"categories", len(snap.Categories()),
		"suburbs", len(snap.Suburbs()),
	)

	if r.index != nil {
		if err := r.index.Rebuild(snap.Businesses()); err != nil {
			// The snapshot is already live; stale search results are
			// better than failing the reload.
			r.logger.Error("search index rebuild failed", "error", err)
		}
	}
	return nil
}
