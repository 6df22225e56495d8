// Package query filters and orders the business collection. Filtering and
// ordering are separate steps: Search preserves input order and callers
// apply SortBusinesses when they want one.
package query

import (
	"strings"

	"github.com/communitydirectory/directory-server/internal/domain"
)

// Search applies every present filter field as an independent AND predicate
// over the collection. The result keeps input order. An all-zero filter
// returns the full collection.
//
// OpenNow is not evaluated here; open/closed depends on the wall clock, so
// the service layer applies the hours evaluator to the result set.
func Search(filters domain.SearchFilters, businesses []domain.Business) []domain.Business {
	out := make([]domain.Business, 0, len(businesses))
	for _, b := range businesses {
		if matches(filters, &b) {
			out = append(out, b)
		}
	}
	return out
}

func matches(f domain.SearchFilters, b *domain.Business) bool {
	if f.Query != "" && !matchesQuery(f.Query, b) {
		return false
	}
	if f.Category != "" && b.Category != f.Category {
		return false
	}
	if f.Subcategory != "" && b.Subcategory != f.Subcategory {
		return false
	}
	if f.Suburb != "" && !strings.EqualFold(b.Location.Suburb, f.Suburb) {
		return false
	}
	if b.Rating < f.MinRating {
		return false
	}
	if f.PriceRange != "" && b.PriceRange != f.PriceRange {
		return false
	}
	// A false flag means "constraint absent", not "only non-owned"; see
	// the SearchFilters doc comment.
	if f.CommunityOwned && !b.CommunityOwned {
		return false
	}
	if f.Verified && !b.Verified {
		return false
	}
	if len(f.Languages) > 0 && !anyLanguage(f.Languages, b.Languages) {
		return false
	}
	return true
}

// matchesQuery is a case-insensitive substring match against name, local
// name, description, any tag, or the suburb name. Any single hit matches.
func matchesQuery(query string, b *domain.Business) bool {
	q := strings.ToLower(query)

	if strings.Contains(strings.ToLower(b.Name), q) ||
		strings.Contains(strings.ToLower(b.LocalName), q) ||
		strings.Contains(strings.ToLower(b.Description), q) ||
		strings.Contains(strings.ToLower(b.Location.Suburb), q) {
		return true
	}
	for _, tag := range b.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// anyLanguage reports whether the two language sets intersect (ANY-of, not
// ALL-of).
func anyLanguage(wanted, offered []string) bool {
	for _, w := range wanted {
		for _, o := range offered {
			if w == o {
				return true
			}
		}
	}
	return false
}
