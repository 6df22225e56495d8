// Package service implements the directory's use cases over the current
// dataset snapshot. Services are stateless; every call reads the snapshot
// installed at that moment, so a reload never disturbs in-flight requests.
package service

import (
	"log/slog"
	"time"

	"github.com/communitydirectory/directory-server/internal/dataset"
	"github.com/communitydirectory/directory-server/internal/domain"
	"github.com/communitydirectory/directory-server/internal/errors"
	"github.com/communitydirectory/directory-server/internal/hours"
	"github.com/communitydirectory/directory-server/internal/query"
)

// DirectoryService serves business, category, and suburb lookups.
type DirectoryService struct {
	holder *dataset.Holder
	logger *slog.Logger

	// now is swapped in tests to pin openNow evaluation.
	now func() time.Time
}

// NewDirectoryService creates a new directory service.
func NewDirectoryService(holder *dataset.Holder, logger *slog.Logger) *DirectoryService {
	return &DirectoryService{
		holder: holder,
		logger: logger,
		now:    time.Now,
	}
}

// ListBusinesses returns every business in dataset order.
func (s *DirectoryService) ListBusinesses() []domain.Business {
	return s.holder.Current().Businesses()
}

// Business returns the business with the given id.
func (s *DirectoryService) Business(id string) (*domain.Business, error) {
	b := s.holder.Current().BusinessByID(id)
	if b == nil {
		return nil, errors.NotFoundf("business %q not found", id)
	}
	return b, nil
}

// Search filters the collection and optionally sorts it. Filtering applies
// every present filter as an AND predicate; the openNow filter is
// evaluated here against the wall clock because the query engine is pure.
// An empty or unknown sort key keeps dataset order.
func (s *DirectoryService) Search(filters domain.SearchFilters, sortKey domain.SortKey) []domain.Business {
	results := query.Search(filters, s.holder.Current().Businesses())

	if filters.OpenNow {
		at := s.now()
		open := make([]domain.Business, 0, len(results))
		for _, b := range results {
			if hours.IsOpenAt(b.Hours, at) {
				open = append(open, b)
			}
		}
		results = open
	}

	if sortKey.IsValid() {
		results = query.SortBusinesses(sortKey, results)
	}
	return results
}

// ListCategories returns every category in dataset order.
func (s *DirectoryService) ListCategories() []domain.Category {
	return s.holder.Current().Categories()
}

// Category returns the category with the given URL slug.
func (s *DirectoryService) Category(slug string) (*domain.Category, error) {
	c := s.holder.Current().CategoryBySlug(slug)
	if c == nil {
		return nil, errors.NotFoundf("category %q not found", slug)
	}
	return c, nil
}

// Subcategory returns a subcategory by its slug within a category.
func (s *DirectoryService) Subcategory(categorySlug, subcategorySlug string) (*domain.Subcategory, error) {
	c, err := s.Category(categorySlug)
	if err != nil {
		return nil, err
	}
	sub := c.SubcategoryBySlug(subcategorySlug)
	if sub == nil {
		return nil, errors.NotFoundf("subcategory %q not found in %q", subcategorySlug, categorySlug)
	}
	return sub, nil
}

// BusinessesByCategory returns the businesses in the category with the
// given slug.
func (s *DirectoryService) BusinessesByCategory(slug string) ([]domain.Business, error) {
	snap := s.holder.Current()
	c := snap.CategoryBySlug(slug)
	if c == nil {
		return nil, errors.NotFoundf("category %q not found", slug)
	}
	return snap.BusinessesByCategory(c.ID), nil
}

// ListSuburbs returns every suburb in dataset order.
func (s *DirectoryService) ListSuburbs() []domain.Suburb {
	return s.holder.Current().Suburbs()
}

// Suburb returns the suburb with the given name, case-insensitively.
func (s *DirectoryService) Suburb(name string) (*domain.Suburb, error) {
	sub := s.holder.Current().SuburbByName(name)
	if sub == nil {
		return nil, errors.NotFoundf("suburb %q not found", name)
	}
	return sub, nil
}

// BusinessesBySuburb returns the businesses located in the named suburb.
// Unlike Suburb, an unknown name is not an error: businesses can reference
// suburbs absent from the suburbs collection.
func (s *DirectoryService) BusinessesBySuburb(name string) []domain.Business {
	return s.holder.Current().BusinessesBySuburb(name)
}

// LoadedAt is when the current snapshot was constructed.
func (s *DirectoryService) LoadedAt() time.Time {
	return s.holder.Current().LoadedAt()
}
