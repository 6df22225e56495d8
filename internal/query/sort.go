package query

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/communitydirectory/directory-server/internal/domain"
)

// SortBusinesses returns a sorted copy of the collection; the input is
// never reordered. Unknown keys return an unsorted copy.
//
// Rating ties keep input order (stable), which is what lets Featured
// break ties deterministically.
func SortBusinesses(key domain.SortKey, businesses []domain.Business) []domain.Business {
	out := make([]domain.Business, len(businesses))
	copy(out, businesses)

	switch key {
	case domain.SortByName:
		c := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Name, out[j].Name) < 0
		})
	case domain.SortByRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	case domain.SortByRecent:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].UpdatedAtTime().After(out[j].UpdatedAtTime())
		})
	}
	return out
}
