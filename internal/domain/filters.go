package domain

// SearchFilters narrows the business collection. Every field is optional;
// the zero value means "no constraint on this dimension".
//
// CommunityOwned and Verified are deliberately asymmetric: false is the
// same as absent, so there is no way to ask for "only non-community-owned"
// businesses. This mirrors the published behavior of the directory and is
// pinned by tests; do not "fix" it to a tri-state filter.
//
// OpenNow is not evaluated by the query engine. Open/closed depends on the
// wall clock, so callers apply the hours evaluator to the filtered results
// themselves.
type SearchFilters struct {
	Query          string     `json:"query,omitempty"`
	Category       string     `json:"category,omitempty"`
	Subcategory    string     `json:"subcategory,omitempty"`
	Suburb         string     `json:"suburb,omitempty"`
	MinRating      float64    `json:"rating,omitempty"`
	PriceRange     PriceRange `json:"priceRange,omitempty"`
	CommunityOwned bool       `json:"communityOwned,omitempty"`
	Verified       bool       `json:"verified,omitempty"`
	OpenNow        bool       `json:"openNow,omitempty"`
	Languages      []string   `json:"languages,omitempty"`
}

// IsZero reports whether no constraint is set.
func (f SearchFilters) IsZero() bool {
	return f.Query == "" && f.Category == "" && f.Subcategory == "" &&
		f.Suburb == "" && f.MinRating == 0 && f.PriceRange == "" &&
		!f.CommunityOwned && !f.Verified && !f.OpenNow && len(f.Languages) == 0
}

// SortKey selects an ordering for business results. Sorting is a separate
// step from filtering; the query engine never reorders.
type SortKey string

// Supported orderings.
const (
	SortByName   SortKey = "name"   // locale-aware name ascending
	SortByRating SortKey = "rating" // rating descending, stable
	SortByRecent SortKey = "recent" // updatedAt descending
)

// IsValid reports whether k is a known sort key.
func (k SortKey) IsValid() bool {
	switch k {
	case SortByName, SortByRating, SortByRecent:
		return true
	}
	return false
}
