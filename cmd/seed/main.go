// Package main writes a small sample dataset for local development.
// The files use the published envelope format that the local loader reads.
package main

import (
	"encoding/json/v2"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/communitydirectory/directory-server/internal/domain"
)

func main() {
	out := flag.String("out", "data", "Directory to write the sample dataset into")
	flag.Parse()

	if err := run(*out); err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("sample dataset written to %s\n", *out)
}

func run(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)

	files := map[string]any{
		"businesses.json": map[string]any{
			"lastUpdated": now,
			"businesses":  sampleBusinesses(),
		},
		"categories.json": map[string]any{
			"lastUpdated": now,
			"categories":  sampleCategories(),
		},
		"suburbs.json": map[string]any{
			"lastUpdated": now,
			"suburbs":     sampleSuburbs(),
		},
	}

	for name, payload := range files {
		if err := writeJSON(filepath.Join(dir, name), payload); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path) //#nosec G304 -- path comes from the -out flag
	if err != nil {
		return err
	}
	defer f.Close()

	if err := json.MarshalWrite(f, v, json.Deterministic(true)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func sampleBusinesses() []domain.Business {
	return []domain.Business{
		{
			ID:          "biz_sample_spice",
			Name:        "Spice Junction",
			Category:    "restaurants",
			Subcategory: "south-indian",
			Description: "South Indian restaurant famous for dosa and filter coffee.",
			Location: domain.Location{
				Address:  "12 Foster Street",
				Suburb:   "Dandenong",
				Postcode: "3175",
				State:    "VIC",
				City:     "Melbourne",
			},
			Contact: domain.Contact{
				Phone: "03 9791 0000",
			},
			Hours: domain.WeekHours{
				Monday:    "9:00 AM - 5:00 PM",
				Tuesday:   "9:00 AM - 5:00 PM",
				Wednesday: "9:00 AM - 5:00 PM",
				Thursday:  "9:00 AM - 9:00 PM",
				Friday:    "9:00 AM - 9:00 PM",
				Saturday:  "10:00 AM - 9:00 PM",
				Sunday:    "Closed",
			},
			Languages:   []string{"English", "Tamil"},
			Tags:        []string{"dosa", "vegetarian"},
			Features:    []string{"dine-in", "takeaway"},
			Rating:      4.5,
			ReviewCount: 1,
			PriceRange:  domain.PriceModerate,
			Verified:    true,
			CreatedAt:   "2024-06-01T00:00:00Z",
			UpdatedAt:   "2025-02-10T09:00:00Z",
			CreatedBy:   "community",
			Reviews: []domain.Review{
				{
					ID:         "rev_sample_1",
					BusinessID: "biz_sample_spice",
					Author:     "Priya",
					Rating:     5,
					Comment:    "Best dosa in the southeast.",
					Date:       "2025-01-15T00:00:00Z",
				},
			},
		},
		{
			ID:          "biz_sample_physio",
			Name:        "Lotus Physiotherapy",
			Category:    "healthcare",
			Description: "Physiotherapy and sports injury clinic.",
			Location: domain.Location{
				Address:  "3 Centre Road",
				Suburb:   "Clayton",
				Postcode: "3168",
				State:    "VIC",
				City:     "Melbourne",
			},
			Hours: domain.WeekHours{
				Monday:    "8:00 AM - 6:00 PM",
				Tuesday:   "8:00 AM - 6:00 PM",
				Wednesday: "8:00 AM - 6:00 PM",
				Thursday:  "8:00 AM - 6:00 PM",
				Friday:    "8:00 AM - 4:00 PM",
			},
			Languages:      []string{"English", "Hindi"},
			Tags:           []string{"physio"},
			Features:       []string{"appointments"},
			Rating:         4.3,
			ReviewCount:    0,
			Verified:       true,
			CommunityOwned: true,
			CreatedAt:      "2024-08-10T00:00:00Z",
			UpdatedAt:      "2024-12-20T08:00:00Z",
			CreatedBy:      "community",
			Reviews:        []domain.Review{},
		},
	}
}

func sampleCategories() []domain.Category {
	return []domain.Category{
		{
			ID:            "restaurants",
			Name:          "Restaurants",
			Slug:          "restaurants",
			Description:   "Places to eat and drink.",
			Icon:          "🍽️",
			Color:         "#E07A5F",
			BusinessCount: 1,
			Subcategories: []domain.Subcategory{
				{ID: "south-indian", Name: "South Indian", Slug: "south-indian"},
			},
		},
		{
			ID:            "healthcare",
			Name:          "Healthcare",
			Slug:          "healthcare",
			Description:   "Clinics and allied health.",
			Icon:          "🩺",
			Color:         "#81B29A",
			BusinessCount: 1,
			Subcategories: []domain.Subcategory{},
		},
	}
}

func sampleSuburbs() []domain.Suburb {
	return []domain.Suburb{
		{Name: "Dandenong", Postcode: "3175", BusinessCount: 1, PopularCategories: []string{"restaurants"}},
		{Name: "Clayton", Postcode: "3168", BusinessCount: 1, PopularCategories: []string{"healthcare"}},
	}
}
