package domain

// Suburb is a named locality used for location-based grouping.
// Name is effectively unique within a state. BusinessCount is a cached
// display value, like Category.BusinessCount.
type Suburb struct {
	Name              string   `json:"name"`
	Postcode          string   `json:"postcode"`
	BusinessCount     int      `json:"businessCount"`
	PopularCategories []string `json:"popularCategories"`
}
