package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communitydirectory/directory-server/internal/domain"
)

func sampleBusinesses() []domain.Business {
	return []domain.Business{
		{
			ID:             "biz-1",
			Name:           "Spice Junction",
			LocalName:      "மசாலா சந்திப்பு",
			Category:       "restaurants",
			Subcategory:    "south-indian",
			Description:    "Dosa and filter coffee",
			Location:       domain.Location{Suburb: "Dandenong"},
			Languages:      []string{"English", "Tamil"},
			Tags:           []string{"dosa", "vegetarian"},
			Rating:         4.6,
			PriceRange:     domain.PriceModerate,
			Verified:       true,
			CommunityOwned: true,
		},
		{
			ID:          "biz-2",
			Name:        "Chai Corner",
			Category:    "restaurants",
			Subcategory: "cafes",
			Description: "Masala chai and snacks",
			Location:    domain.Location{Suburb: "Clayton"},
			Languages:   []string{"English", "Hindi"},
			Tags:        []string{"chai", "snacks"},
			Rating:      4.1,
			PriceRange:  domain.PriceBudget,
		},
		{
			ID:          "biz-3",
			Name:        "Lotus Physiotherapy",
			Category:    "healthcare",
			Description: "Sports injury clinic",
			Location:    domain.Location{Suburb: "Dandenong"},
			Languages:   []string{"English"},
			Tags:        []string{"physio"},
			Rating:      4.9,
			Verified:    true,
		},
	}
}

func ids(businesses []domain.Business) []string {
	out := make([]string, len(businesses))
	for i, b := range businesses {
		out[i] = b.ID
	}
	return out
}

func TestSearchNoFiltersIsIdentity(t *testing.T) {
	all := sampleBusinesses()
	got := Search(domain.SearchFilters{}, all)
	assert.Equal(t, ids(all), ids(got))
}

func TestSearchTextQuery(t *testing.T) {
	all := sampleBusinesses()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"matches name", "spice", []string{"biz-1"}},
		{"matches local name", "மசாலா", []string{"biz-1"}},
		{"matches description", "chai", []string{"biz-2"}},
		{"matches tag", "physio", []string{"biz-3"}},
		{"matches suburb", "dandenong", []string{"biz-1", "biz-3"}},
		{"case-insensitive", "SPICE", []string{"biz-1"}},
		{"no match", "plumber", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(domain.SearchFilters{Query: tt.query}, all)
			assert.Equal(t, tt.want, idsOrNil(got))
		})
	}
}

func idsOrNil(businesses []domain.Business) []string {
	if len(businesses) == 0 {
		return nil
	}
	return ids(businesses)
}

func TestSearchCategoryCountMatchesFullSet(t *testing.T) {
	all := sampleBusinesses()

	got := Search(domain.SearchFilters{Category: "restaurants"}, all)

	var want int
	for _, b := range all {
		if b.Category == "restaurants" {
			want++
		}
	}
	require.Equal(t, want, len(got))
	for _, b := range got {
		assert.Equal(t, "restaurants", b.Category)
	}
}

func TestSearchSubcategoryAndSuburb(t *testing.T) {
	all := sampleBusinesses()

	assert.Equal(t, []string{"biz-2"}, ids(Search(domain.SearchFilters{Subcategory: "cafes"}, all)))
	assert.Equal(t, []string{"biz-1", "biz-3"}, ids(Search(domain.SearchFilters{Suburb: "DANDENONG"}, all)))
}

func TestSearchRatingFloor(t *testing.T) {
	all := sampleBusinesses()

	got := Search(domain.SearchFilters{MinRating: 4.5}, all)
	assert.Equal(t, []string{"biz-1", "biz-3"}, ids(got))

	// The boundary itself passes.
	got = Search(domain.SearchFilters{MinRating: 4.9}, all)
	assert.Equal(t, []string{"biz-3"}, ids(got))
}

func TestSearchPriceRange(t *testing.T) {
	all := sampleBusinesses()
	got := Search(domain.SearchFilters{PriceRange: domain.PriceBudget}, all)
	assert.Equal(t, []string{"biz-2"}, ids(got))
}

func TestSearchBooleanFlagsAreAsymmetric(t *testing.T) {
	all := sampleBusinesses()

	// True restricts to flagged businesses.
	assert.Equal(t, []string{"biz-1"}, ids(Search(domain.SearchFilters{CommunityOwned: true}, all)))
	assert.Equal(t, []string{"biz-1", "biz-3"}, ids(Search(domain.SearchFilters{Verified: true}, all)))

	// False is "constraint absent", NOT "only non-flagged". This asymmetry
	// is observed behavior of the directory and must not be corrected.
	assert.Equal(t, ids(all), ids(Search(domain.SearchFilters{CommunityOwned: false, Verified: false}, all)))
}

func TestSearchLanguagesAnyOf(t *testing.T) {
	all := sampleBusinesses()

	got := Search(domain.SearchFilters{Languages: []string{"Tamil", "Hindi"}}, all)
	assert.Equal(t, []string{"biz-1", "biz-2"}, ids(got))

	got = Search(domain.SearchFilters{Languages: []string{"Greek"}}, all)
	assert.Empty(t, got)
}

func TestSearchCombinesPredicatesConjunctively(t *testing.T) {
	all := sampleBusinesses()

	got := Search(domain.SearchFilters{
		Category:  "restaurants",
		Suburb:    "Dandenong",
		MinRating: 4.0,
	}, all)
	assert.Equal(t, []string{"biz-1"}, ids(got))
}

func TestSearchPreservesInputOrder(t *testing.T) {
	all := sampleBusinesses()
	got := Search(domain.SearchFilters{MinRating: 4.0}, all)
	assert.Equal(t, []string{"biz-1", "biz-2", "biz-3"}, ids(got))
}
