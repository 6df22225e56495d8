package search

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/blevesearch/bleve/v2"

	"github.com/communitydirectory/directory-server/internal/domain"
)

// Index wraps a memory-only Bleve index over the current business dataset.
//
// Thread safety: all public methods are safe for concurrent use. The mutex
// protects searches from observing a half-built index during Rebuild.
//
// The index is never persisted. The dataset snapshot is the source of
// truth; the index is rebuilt from it on startup and on every reload,
// which takes milliseconds at directory scale.
type Index struct {
	mu     sync.RWMutex
	index  bleve.Index
	logger *slog.Logger
}

// NewIndex creates an empty in-memory search index.
func NewIndex(logger *slog.Logger) (*Index, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}

	return &Index{index: index, logger: logger}, nil
}

// Close closes the index and releases resources.
func (s *Index) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.Close()
}

// Rebuild replaces the index contents with the given businesses.
// Called whenever a new dataset snapshot is installed.
func (s *Index) Rebuild(businesses []domain.Business) error {
	fresh, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}

	const batchSize = 500

	for i := 0; i < len(businesses); i += batchSize {
		end := min(i+batchSize, len(businesses))

		batch := fresh.NewBatch()
		for j := i; j < end; j++ {
			doc := BusinessToDocument(&businesses[j])
			// Convert to map to ensure field names match the mapping (lowercase)
			if err := batch.Index(doc.ID, doc.ToMap()); err != nil {
				return fmt.Errorf("batch index %s: %w", doc.ID, err)
			}
		}

		if err := fresh.Batch(batch); err != nil {
			return fmt.Errorf("commit batch %d-%d: %w", i, end, err)
		}
	}

	s.mu.Lock()
	old := s.index
	s.index = fresh
	s.mu.Unlock()

	if err := old.Close(); err != nil {
		s.logger.Warn("failed to close previous search index", "error", err)
	}

	s.logger.Info("rebuilt search index", "documents", len(businesses))
	return nil
}

// DocumentCount returns the total number of indexed businesses.
func (s *Index) DocumentCount() (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.DocCount()
}
