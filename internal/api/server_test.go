package api

import (
	"context"
	"log/slog"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/require"

	"github.com/communitydirectory/directory-server/internal/dataset"
	"github.com/communitydirectory/directory-server/internal/domain"
	"github.com/communitydirectory/directory-server/internal/ratelimit"
	"github.com/communitydirectory/directory-server/internal/search"
	"github.com/communitydirectory/directory-server/internal/service"
	"github.com/communitydirectory/directory-server/internal/validation"
)

// testEnvelope mirrors the response envelope for assertions.
type testEnvelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Code    string `json:"code"`
	Error   string `json:"error"`
	Details any    `json:"details"`
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func fixtureBusinesses() []domain.Business {
	return []domain.Business{
		{
			ID: "biz_spice", Name: "Spice Junction", Category: "restaurants",
			Subcategory: "south-indian",
			Description: "South Indian restaurant famous for dosa and filter coffee",
			Location:    domain.Location{Suburb: "Dandenong"},
			Hours:       domain.WeekHours{Monday: "9:00 AM - 5:00 PM"},
			Rating:      4.5, Verified: true,
			UpdatedAt: "2025-02-10T09:00:00Z",
		},
		{
			ID: "biz_chai", Name: "Chai Corner", Category: "restaurants",
			Description: "Street-style chai and snacks",
			Location:    domain.Location{Suburb: "Clayton"},
			Hours:       domain.WeekHours{Monday: "7:00 PM - 11:00 PM"},
			Rating:      4.8, CommunityOwned: true,
			UpdatedAt: "2025-03-01T12:00:00Z",
		},
		{
			ID: "biz_dosa", Name: "Dosa Hut", Category: "restaurants",
			Description: "Quick dosas and thalis",
			Location:    domain.Location{Suburb: "Dandenong"},
			Rating:      4.7,
			UpdatedAt:   "2025-01-05T12:00:00Z",
		},
		{
			ID: "biz_physio", Name: "Lotus Physiotherapy", Category: "healthcare",
			Description: "Physiotherapy and sports injury clinic",
			Location:    domain.Location{Suburb: "Clayton"},
			Rating:      4.3, Verified: true,
			UpdatedAt: "2024-12-20T08:00:00Z",
		},
		{
			ID: "biz_new", Name: "Unrated Newcomer", Category: "healthcare",
			Description: "Recently opened allied health practice",
			Location:    domain.Location{Suburb: "Springvale"},
			Rating:      0,
			UpdatedAt:   "2025-03-10T08:00:00Z",
		},
	}
}

func fixtureCategories() []domain.Category {
	return []domain.Category{
		{
			ID: "restaurants", Name: "Restaurants", Slug: "restaurants",
			// Stored count is deliberately wrong; aggregations must not trust it.
			BusinessCount: 99,
			Subcategories: []domain.Subcategory{
				{ID: "south-indian", Name: "South Indian", Slug: "south-indian"},
			},
		},
		{ID: "healthcare", Name: "Healthcare", Slug: "healthcare", BusinessCount: 0},
	}
}

func fixtureSuburbs() []domain.Suburb {
	return []domain.Suburb{
		{Name: "Dandenong", Postcode: "3175"},
		{Name: "Clayton", Postcode: "3168"},
	}
}

// recordingAppender captures contributions; fails with err when set.
type recordingAppender struct {
	err        error
	businesses []domain.Business
	reviews    []domain.Review
}

func (a *recordingAppender) AppendBusiness(_ context.Context, b domain.Business) error {
	if a.err != nil {
		return a.err
	}
	a.businesses = append(a.businesses, b)
	return nil
}

func (a *recordingAppender) AppendReview(_ context.Context, r domain.Review) error {
	if a.err != nil {
		return a.err
	}
	a.reviews = append(a.reviews, r)
	return nil
}

// testServer bundles the API under test with its collaborators.
type testServer struct {
	*Server
	api      humatest.TestAPI
	appender *recordingAppender
}

func setupTestServer(t *testing.T, opts Options) *testServer {
	t.Helper()

	log := testLogger()
	holder := dataset.NewHolder(dataset.NewSnapshot(fixtureBusinesses(), fixtureCategories(), fixtureSuburbs()))

	idx, err := search.NewIndex(log)
	require.NoError(t, err)
	require.NoError(t, idx.Rebuild(holder.Current().Businesses()))
	t.Cleanup(func() { _ = idx.Close() })

	appender := &recordingAppender{}

	services := &Services{
		Directory:    service.NewDirectoryService(holder, log),
		Stats:        service.NewStatsService(holder, log),
		Search:       service.NewSearchService(idx, log),
		Contribution: service.NewContributionService(appender, holder, validation.New(), log),
	}

	s := NewServer(services, opts, log)

	return &testServer{
		Server:   s,
		api:      humatest.Wrap(t, s.api),
		appender: appender,
	}
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	// A generous limiter so only the dedicated throttling tests hit it.
	return setupTestServer(t, Options{
		ContributionLimiter: ratelimit.New(100, 100),
	})
}
