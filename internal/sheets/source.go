package sheets

import (
	"context"
	"log/slog"

	"github.com/communitydirectory/directory-server/internal/cache"
	"github.com/communitydirectory/directory-server/internal/dataset"
	"github.com/communitydirectory/directory-server/internal/domain"
)

// RemoteSource is a dataset.Source backed by the spreadsheet. Every fetch
// tries the remote tab first; on any failure the last successfully fetched
// copy is served from the cache, and the bundled local dataset is the
// final fallback. Failures are logged and masked, never surfaced: the
// directory always renders, possibly with stale data.
type RemoteSource struct {
	fetcher  Fetcher
	cache    *cache.Cache
	fallback dataset.Source
	logger   *slog.Logger
}

// NewRemoteSource creates a remote source. The cache may be nil, in which
// case failures skip straight to the fallback.
func NewRemoteSource(fetcher Fetcher, c *cache.Cache, fallback dataset.Source, logger *slog.Logger) *RemoteSource {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RemoteSource{fetcher: fetcher, cache: c, fallback: fallback, logger: logger}
}

// Businesses fetches the Businesses tab with cache and local fallback.
func (s *RemoteSource) Businesses(ctx context.Context) ([]domain.Business, error) {
	businesses, err := s.fetcher.FetchBusinesses(ctx)
	if err == nil {
		s.cachePut(cache.CollectionBusinesses, businesses)
		return businesses, nil
	}
	s.logger.Warn("remote business fetch failed, falling back", "error", err)

	var cached []domain.Business
	if s.cacheGet(cache.CollectionBusinesses, &cached) {
		return cached, nil
	}
	return s.fallback.Businesses(ctx)
}

// Categories fetches the Categories tab with cache and local fallback.
func (s *RemoteSource) Categories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.fetcher.FetchCategories(ctx)
	if err == nil {
		s.cachePut(cache.CollectionCategories, categories)
		return categories, nil
	}
	s.logger.Warn("remote category fetch failed, falling back", "error", err)

	var cached []domain.Category
	if s.cacheGet(cache.CollectionCategories, &cached) {
		return cached, nil
	}
	return s.fallback.Categories(ctx)
}

// Suburbs fetches the Suburbs tab with cache and local fallback.
func (s *RemoteSource) Suburbs(ctx context.Context) ([]domain.Suburb, error) {
	suburbs, err := s.fetcher.FetchSuburbs(ctx)
	if err == nil {
		s.cachePut(cache.CollectionSuburbs, suburbs)
		return suburbs, nil
	}
	s.logger.Warn("remote suburb fetch failed, falling back", "error", err)

	var cached []domain.Suburb
	if s.cacheGet(cache.CollectionSuburbs, &cached) {
		return cached, nil
	}
	return s.fallback.Suburbs(ctx)
}

// Reviews fetches the Reviews tab with cache and local fallback.
func (s *RemoteSource) Reviews(ctx context.Context) ([]domain.Review, error) {
	reviews, err := s.fetcher.FetchReviews(ctx)
	if err == nil {
		s.cachePut(cache.CollectionReviews, reviews)
		return reviews, nil
	}
	s.logger.Warn("remote review fetch failed, falling back", "error", err)

	var cached []domain.Review
	if s.cacheGet(cache.CollectionReviews, &cached) {
		return cached, nil
	}
	return s.fallback.Reviews(ctx)
}

func (s *RemoteSource) cachePut(collection string, v any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Put(collection, v); err != nil {
		s.logger.Warn("failed to cache collection", "collection", collection, "error", err)
	}
}

func (s *RemoteSource) cacheGet(collection string, out any) bool {
	if s.cache == nil {
		return false
	}
	found, err := s.cache.Get(collection, out)
	if err != nil {
		s.logger.Warn("failed to read cached collection", "collection", collection, "error", err)
		return false
	}
	if found {
		s.logger.Info("serving collection from cache", "collection", collection, "fetched_at", s.cache.FetchedAt())
	}
	return found
}
