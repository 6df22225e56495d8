package service

import (
	"log/slog"
	"sort"

	"github.com/communitydirectory/directory-server/internal/dataset"
	"github.com/communitydirectory/directory-server/internal/domain"
	"github.com/communitydirectory/directory-server/internal/query"
)

// StatsService computes derived figures over the current snapshot. Every
// method recomputes from live business records; cached counts carried in
// the dataset (Category.BusinessCount, Suburb.BusinessCount) are display
// hints only and never consulted.
type StatsService struct {
	holder *dataset.Holder
	logger *slog.Logger
}

// NewStatsService creates a new stats service.
func NewStatsService(holder *dataset.Holder, logger *slog.Logger) *StatsService {
	return &StatsService{
		holder: holder,
		logger: logger,
	}
}

// Featured returns the n highest-rated businesses. The rating sort is
// stable, so ties keep dataset order.
func (s *StatsService) Featured(n int) []domain.Business {
	sorted := query.SortBusinesses(domain.SortByRating, s.holder.Current().Businesses())
	return firstN(sorted, n)
}

// Recent returns the n most recently updated businesses.
func (s *StatsService) Recent(n int) []domain.Business {
	sorted := query.SortBusinesses(domain.SortByRecent, s.holder.Current().Businesses())
	return firstN(sorted, n)
}

// PopularCategories returns the n categories with the most businesses.
// Counts are computed fresh from the business collection, and the returned
// copies carry the live count in BusinessCount.
func (s *StatsService) PopularCategories(n int) []domain.Category {
	snap := s.holder.Current()

	counts := make(map[string]int)
	for _, b := range snap.Businesses() {
		counts[b.Category]++
	}

	categories := make([]domain.Category, len(snap.Categories()))
	copy(categories, snap.Categories())
	for i := range categories {
		categories[i].BusinessCount = counts[categories[i].ID]
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].BusinessCount > categories[j].BusinessCount
	})

	return firstN(categories, n)
}

// Stats returns directory-wide totals. AverageRating is 0 for an empty
// collection.
func (s *StatsService) Stats() domain.DirectoryStats {
	snap := s.holder.Current()
	businesses := snap.Businesses()

	stats := domain.DirectoryStats{
		TotalBusinesses: len(businesses),
		TotalCategories: len(snap.Categories()),
		TotalSuburbs:    len(snap.Suburbs()),
	}

	var ratingSum float64
	for _, b := range businesses {
		if b.Verified {
			stats.VerifiedBusinesses++
		}
		if b.CommunityOwned {
			stats.CommunityOwnedBusinesses++
		}
		ratingSum += b.Rating
	}

	if len(businesses) > 0 {
		stats.AverageRating = ratingSum / float64(len(businesses))
	}
	return stats
}

func firstN[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}
