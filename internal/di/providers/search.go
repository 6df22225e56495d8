package providers

import (
	"github.com/samber/do/v2"

	"github.com/communitydirectory/directory-server/internal/dataset"
	"github.com/communitydirectory/directory-server/internal/logger"
	"github.com/communitydirectory/directory-server/internal/search"
)

// SearchIndexHandle wraps the search index with Shutdownable.
type SearchIndexHandle struct {
	Index *search.Index
}

// Shutdown implements do.Shutdownable.
func (h *SearchIndexHandle) Shutdown() error {
	return h.Index.Close()
}

// ProvideSearchIndex provides the in-memory full-text index, built from
// the initial snapshot.
func ProvideSearchIndex(i do.Injector) (*SearchIndexHandle, error) {
	holder := do.MustInvoke[*dataset.Holder](i)
	log := do.MustInvoke[*logger.Logger](i)

	idx, err := search.NewIndex(log.Logger)
	if err != nil {
		return nil, err
	}

	if err := idx.Rebuild(holder.Current().Businesses()); err != nil {
		// Search degrades to empty results; the directory still serves.
		log.Error("initial search index build failed", "error", err)
	}

	return &SearchIndexHandle{Index: idx}, nil
}
