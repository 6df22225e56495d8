package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communitydirectory/directory-server/internal/domain"
)

func TestRowToBusiness(t *testing.T) {
	row := []any{
		"biz_spice", "Spice Junction", "மசாலா சந்திப்பு", "restaurants", "south-indian",
		"South Indian restaurant", "தென்னிந்திய உணவகம்",
		"12 Foster St", "Dandenong", "3175", "VIC", "Melbourne",
		"-37.9810", "145.2150",
		"03 9791 0000", "hello@spicejunction.com.au", "https://spicejunction.com.au", "", "",
		"9:00 AM - 9:00 PM", "9:00 AM - 9:00 PM", "9:00 AM - 9:00 PM", "9:00 AM - 9:00 PM",
		"9:00 AM - 10:00 PM", "9:00 AM - 10:00 PM", "Closed",
		"English, Tamil", "dosa, vegetarian", "dine-in, takeaway",
		"4.7", "89", "$$", "true", "false",
		"2024-06-01T00:00:00Z", "2025-02-10T09:00:00Z", "admin",
	}

	b, ok := rowToBusiness(row)
	require.True(t, ok)
	assert.Equal(t, "biz_spice", b.ID)
	assert.Equal(t, "Spice Junction", b.Name)
	assert.Equal(t, "Dandenong", b.Location.Suburb)
	assert.Equal(t, []string{"English", "Tamil"}, b.Languages)
	assert.Equal(t, []string{"dosa", "vegetarian"}, b.Tags)
	assert.Equal(t, 4.7, b.Rating)
	assert.Equal(t, 89, b.ReviewCount)
	assert.Equal(t, domain.PriceModerate, b.PriceRange)
	assert.True(t, b.Verified)
	assert.False(t, b.CommunityOwned)
	assert.Equal(t, "Closed", b.Hours.Sunday)
	require.NotNil(t, b.Location.Coordinates)
	assert.InDelta(t, -37.981, b.Location.Coordinates.Lat, 0.001)
}

func TestRowToBusinessDiscardsMissingIdentity(t *testing.T) {
	_, ok := rowToBusiness([]any{"", "Nameless"})
	assert.False(t, ok)

	_, ok = rowToBusiness([]any{"biz_1", ""})
	assert.False(t, ok)
}

func TestRowToBusinessDefaults(t *testing.T) {
	b, ok := rowToBusiness([]any{"biz_min", "Minimal"})
	require.True(t, ok)

	assert.Equal(t, "VIC", b.Location.State)
	assert.Equal(t, "Melbourne", b.Location.City)
	assert.Equal(t, []string{"English"}, b.Languages)
	assert.Equal(t, "community", b.CreatedBy)
	assert.Nil(t, b.Location.Coordinates)
	assert.Empty(t, b.Tags)
}

func TestRowToBusinessCoordinatesRequireBothHalves(t *testing.T) {
	row := make([]any, 14)
	row[0], row[1] = "biz_1", "Half Coords"
	row[12] = "-37.9"

	b, ok := rowToBusiness(row)
	require.True(t, ok)
	assert.Nil(t, b.Location.Coordinates)
}

func TestRowToCategory(t *testing.T) {
	row := []any{
		"restaurants", "Restaurants", "", "restaurants", "Places to eat", "🍛", "#E11D48", "42",
		`[{"id":"south-indian","name":"South Indian","slug":"south-indian"}]`,
	}

	c, ok := rowToCategory(row)
	require.True(t, ok)
	assert.Equal(t, "restaurants", c.ID)
	assert.Equal(t, 42, c.BusinessCount)
	require.Len(t, c.Subcategories, 1)
	assert.Equal(t, "south-indian", c.Subcategories[0].Slug)
}

func TestRowToCategoryDerivesMissingSlugs(t *testing.T) {
	row := []any{
		"cat_cafes", "Chai & Coffee Houses", "", "", "", "", "", "7",
		`[{"id":"sub_filter","name":"Filter Coffee"}]`,
	}

	c, ok := rowToCategory(row)
	require.True(t, ok)
	assert.Equal(t, "chai-coffee-houses", c.Slug)
	require.Len(t, c.Subcategories, 1)
	assert.Equal(t, "filter-coffee", c.Subcategories[0].Slug)
}

func TestRowToCategoryMalformedSubcategories(t *testing.T) {
	c, ok := rowToCategory([]any{"cafes", "Cafes", "", "cafes", "", "", "", "3", "not json"})
	require.True(t, ok)
	assert.Empty(t, c.Subcategories)
}

func TestRowToReview(t *testing.T) {
	row := []any{
		"rev_1", "biz_spice", "Priya", "priya@example.com", "5",
		"Wonderful", "Best dosa in Melbourne", "", "2025-01-20T10:00:00Z", "12",
		"photo1.jpg, photo2.jpg", "true",
		"Owner", "Thank you!", "2025-01-21T08:00:00Z",
	}

	r, ok := rowToReview(row)
	require.True(t, ok)
	assert.Equal(t, 5, r.Rating)
	assert.Equal(t, 12, r.Helpful)
	assert.Equal(t, []string{"photo1.jpg", "photo2.jpg"}, r.Photos)
	require.NotNil(t, r.Response)
	assert.Equal(t, "Owner", r.Response.Author)
}

func TestRowToReviewResponseRequiresAllThreeParts(t *testing.T) {
	row := []any{
		"rev_2", "biz_spice", "Arun", "", "4",
		"", "Good food", "", "2025-01-22T10:00:00Z", "0",
		"", "false",
		"Owner", "", "",
	}

	r, ok := rowToReview(row)
	require.True(t, ok)
	assert.Nil(t, r.Response)
}

func TestRowToReviewDiscardsWithoutBusinessID(t *testing.T) {
	_, ok := rowToReview([]any{"rev_3", ""})
	assert.False(t, ok)
}

func TestRowToSuburb(t *testing.T) {
	s, ok := rowToSuburb([]any{"Dandenong", "3175", "57", "restaurants, groceries"})
	require.True(t, ok)
	assert.Equal(t, "Dandenong", s.Name)
	assert.Equal(t, 57, s.BusinessCount)
	assert.Equal(t, []string{"restaurants", "groceries"}, s.PopularCategories)

	_, ok = rowToSuburb([]any{"Dandenong", ""})
	assert.False(t, ok)
}

func TestBusinessRowRoundTrip(t *testing.T) {
	in := domain.Business{
		ID:       "biz_chai",
		Name:     "Chai Corner",
		Category: "cafes",
		Location: domain.Location{
			Address: "5 Centre Rd", Suburb: "Clayton", Postcode: "3168",
			State: "VIC", City: "Melbourne",
		},
		Hours:          domain.WeekHours{Monday: "7:00 AM - 3:00 PM"},
		Languages:      []string{"English", "Hindi"},
		Tags:           []string{"chai"},
		Features:       []string{},
		Rating:         4.2,
		ReviewCount:    34,
		PriceRange:     domain.PriceBudget,
		CommunityOwned: true,
		CreatedAt:      "2024-08-01T00:00:00Z",
		UpdatedAt:      "2025-01-05T12:00:00Z",
		CreatedBy:      "community",
		Reviews:        []domain.Review{},
	}

	out, ok := rowToBusiness(businessToRow(in))
	require.True(t, ok)
	assert.Equal(t, in, out)
}

func TestReviewRowRoundTrip(t *testing.T) {
	in := domain.Review{
		ID:         "rev_9",
		BusinessID: "biz_chai",
		Author:     "Sam",
		Rating:     4,
		Comment:    "Great chai",
		Date:       "2025-02-01T09:00:00Z",
		Photos:     []string{},
		Response:   &domain.ReviewResponse{Author: "Owner", Comment: "Thanks", Date: "2025-02-02T09:00:00Z"},
	}

	out, ok := rowToReview(reviewToRow(in))
	require.True(t, ok)
	assert.Equal(t, in, out)
}
