package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPriceRangeIsValid(t *testing.T) {
	for _, p := range []PriceRange{PriceBudget, PriceModerate, PriceExpensive, PricePremium} {
		assert.True(t, p.IsValid(), "tier %q", p)
	}
	assert.False(t, PriceRange("").IsValid())
	assert.False(t, PriceRange("$$$$$").IsValid())
	assert.False(t, PriceRange("cheap").IsValid())
}

func TestPriceRangeLabel(t *testing.T) {
	assert.Equal(t, "Budget friendly", PriceBudget.Label())
	assert.Equal(t, "Very expensive", PricePremium.Label())
	assert.Equal(t, "Price not specified", PriceRange("").Label())
}

func TestWeekHoursForWeekday(t *testing.T) {
	h := WeekHours{
		Monday: "9:00 AM - 5:00 PM",
		Sunday: "Closed",
	}

	assert.Equal(t, "9:00 AM - 5:00 PM", h.ForWeekday(time.Monday))
	assert.Equal(t, "Closed", h.ForWeekday(time.Sunday))
	assert.Equal(t, "", h.ForWeekday(time.Wednesday))
}

func TestUpdatedAtTime(t *testing.T) {
	b := Business{UpdatedAt: "2025-03-10T08:30:00Z"}
	assert.Equal(t, time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC), b.UpdatedAtTime())

	malformed := Business{UpdatedAt: "last tuesday"}
	assert.True(t, malformed.UpdatedAtTime().IsZero())

	missing := Business{}
	assert.True(t, missing.UpdatedAtTime().IsZero())
}

func TestAverageReviewRating(t *testing.T) {
	assert.Equal(t, 0.0, AverageReviewRating(nil))

	reviews := []Review{{Rating: 5}, {Rating: 4}, {Rating: 4}}
	assert.InDelta(t, 4.3, AverageReviewRating(reviews), 0.001)
}

func TestSearchFiltersIsZero(t *testing.T) {
	assert.True(t, SearchFilters{}.IsZero())
	assert.False(t, SearchFilters{Query: "chai"}.IsZero())
	assert.False(t, SearchFilters{Verified: true}.IsZero())
	assert.False(t, SearchFilters{Languages: []string{"Hindi"}}.IsZero())
}

func TestSubcategoryBySlug(t *testing.T) {
	c := Category{
		Subcategories: []Subcategory{
			{ID: "cafes", Slug: "cafes"},
			{ID: "caterers", Slug: "caterers"},
		},
	}

	sub := c.SubcategoryBySlug("caterers")
	assert.NotNil(t, sub)
	assert.Equal(t, "caterers", sub.ID)
	assert.Nil(t, c.SubcategoryBySlug("bakeries"))
}
