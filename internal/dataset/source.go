// Package dataset loads the directory's collections and exposes them as
// immutable in-memory snapshots.
package dataset

import (
	"context"
	"fmt"

	"github.com/communitydirectory/directory-server/internal/domain"
)

// Source produces the directory's collections. Implementations must return
// empty slices, not errors, for missing or empty collections: callers are
// designed to render "0 results" rather than fail.
//
// Two implementations exist: the local JSON loader in this package and the
// Google Sheets import adapter in internal/sheets, which falls back to the
// local one on any fetch failure.
type Source interface {
	Businesses(ctx context.Context) ([]domain.Business, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	Suburbs(ctx context.Context) ([]domain.Suburb, error)
	Reviews(ctx context.Context) ([]domain.Review, error)
}

// Build fetches every collection from the source, attaches standalone
// reviews to their businesses, and constructs a snapshot. A business's
// embedded reviews are replaced only when the source reports standalone
// reviews for it.
func Build(ctx context.Context, src Source) (*Snapshot, error) {
	businesses, err := src.Businesses(ctx)
	if err != nil {
		return nil, fmt.Errorf("load businesses: %w", err)
	}
	categories, err := src.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	suburbs, err := src.Suburbs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load suburbs: %w", err)
	}
	reviews, err := src.Reviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	if len(reviews) > 0 {
		byBusiness := make(map[string][]domain.Review)
		for _, r := range reviews {
			byBusiness[r.BusinessID] = append(byBusiness[r.BusinessID], r)
		}
		for i := range businesses {
			if attached, ok := byBusiness[businesses[i].ID]; ok {
				businesses[i].Reviews = attached
			}
		}
	}

	return NewSnapshot(businesses, categories, suburbs), nil
}
