package dataset

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/communitydirectory/directory-server/internal/domain"
)

// Snapshot is an immutable view of the directory's collections plus lookup
// indexes. Construct one with NewSnapshot or Build and never modify the
// returned slices; queries and aggregations are pure functions over it, so
// a snapshot is safe for any number of concurrent readers.
type Snapshot struct {
	businesses []domain.Business
	categories []domain.Category
	suburbs    []domain.Suburb

	businessByID   map[string]*domain.Business
	categoryByID   map[string]*domain.Category
	categoryBySlug map[string]*domain.Category
	suburbByName   map[string]*domain.Suburb // keyed by lowercased name

	loadedAt time.Time
}

// NewSnapshot builds a snapshot with lookup indexes over the given
// collections. The slices are retained as-is; callers hand over ownership.
func NewSnapshot(businesses []domain.Business, categories []domain.Category, suburbs []domain.Suburb) *Snapshot {
	s := &Snapshot{
		businesses:     businesses,
		categories:     categories,
		suburbs:        suburbs,
		businessByID:   make(map[string]*domain.Business, len(businesses)),
		categoryByID:   make(map[string]*domain.Category, len(categories)),
		categoryBySlug: make(map[string]*domain.Category, len(categories)),
		suburbByName:   make(map[string]*domain.Suburb, len(suburbs)),
		loadedAt:       time.Now(),
	}

	for i := range businesses {
		s.businessByID[businesses[i].ID] = &businesses[i]
	}
	for i := range categories {
		s.categoryByID[categories[i].ID] = &categories[i]
		s.categoryBySlug[categories[i].Slug] = &categories[i]
	}
	for i := range suburbs {
		s.suburbByName[strings.ToLower(suburbs[i].Name)] = &suburbs[i]
	}

	return s
}

// Businesses returns every business in dataset order. Read-only.
func (s *Snapshot) Businesses() []domain.Business {
	return s.businesses
}

// Categories returns every category in dataset order. Read-only.
func (s *Snapshot) Categories() []domain.Category {
	return s.categories
}

// Suburbs returns every suburb in dataset order. Read-only.
func (s *Snapshot) Suburbs() []domain.Suburb {
	return s.suburbs
}

// LoadedAt is when this snapshot was constructed.
func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}

// BusinessByID returns the business with the given id, or nil.
func (s *Snapshot) BusinessByID(id string) *domain.Business {
	return s.businessByID[id]
}

// CategoryByID returns the category with the given id, or nil.
func (s *Snapshot) CategoryByID(id string) *domain.Category {
	return s.categoryByID[id]
}

// CategoryBySlug returns the category with the given URL slug, or nil.
func (s *Snapshot) CategoryBySlug(slug string) *domain.Category {
	return s.categoryBySlug[slug]
}

// SuburbByName returns the suburb with the given name, matched
// case-insensitively, or nil.
func (s *Snapshot) SuburbByName(name string) *domain.Suburb {
	return s.suburbByName[strings.ToLower(name)]
}

// BusinessesByCategory returns businesses whose category id matches.
func (s *Snapshot) BusinessesByCategory(categoryID string) []domain.Business {
	var out []domain.Business
	for _, b := range s.businesses {
		if b.Category == categoryID {
			out = append(out, b)
		}
	}
	return out
}

// BusinessesBySubcategory returns businesses whose subcategory id matches.
func (s *Snapshot) BusinessesBySubcategory(subcategoryID string) []domain.Business {
	var out []domain.Business
	for _, b := range s.businesses {
		if b.Subcategory == subcategoryID {
			out = append(out, b)
		}
	}
	return out
}

// BusinessesBySuburb returns businesses in the named suburb,
// case-insensitively.
func (s *Snapshot) BusinessesBySuburb(name string) []domain.Business {
	var out []domain.Business
	for _, b := range s.businesses {
		if strings.EqualFold(b.Location.Suburb, name) {
			out = append(out, b)
		}
	}
	return out
}

// Holder hands out the current snapshot and atomically swaps in
// replacements. Readers always see a complete snapshot: an in-flight
// request keeps the one it started with while a reload installs the next.
type Holder struct {
	current atomic.Pointer[Snapshot]
}

// NewHolder creates a holder seeded with the given snapshot.
func NewHolder(s *Snapshot) *Holder {
	h := &Holder{}
	h.current.Store(s)
	return h
}

// Current returns the currently installed snapshot.
func (h *Holder) Current() *Snapshot {
	return h.current.Load()
}

// Replace installs a new snapshot. Nil snapshots are ignored.
func (h *Holder) Replace(s *Snapshot) {
	if s != nil {
		h.current.Store(s)
	}
}
