// Package domain contains the core entities for the community business directory.
//
// JSON field names follow the published dataset format (camelCase) so the
// existing data files load without translation.
package domain

import "time"

// PriceRange is one of four ordinal price tiers.
type PriceRange string

// Price tiers from cheapest to most expensive.
const (
	PriceBudget    PriceRange = "$"
	PriceModerate  PriceRange = "$$"
	PriceExpensive PriceRange = "$$$"
	PricePremium   PriceRange = "$$$$"
)

// IsValid reports whether p is one of the four known tiers.
func (p PriceRange) IsValid() bool {
	switch p {
	case PriceBudget, PriceModerate, PriceExpensive, PricePremium:
		return true
	}
	return false
}

// Label returns a human-readable description of the price tier.
func (p PriceRange) Label() string {
	switch p {
	case PriceBudget:
		return "Budget friendly"
	case PriceModerate:
		return "Moderate"
	case PriceExpensive:
		return "Expensive"
	case PricePremium:
		return "Very expensive"
	default:
		return "Price not specified"
	}
}

// Coordinates is an optional lat/lng pair. Present for display only;
// no distance queries are performed over it.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location describes where a business is.
type Location struct {
	Address     string       `json:"address"`
	Suburb      string       `json:"suburb"`
	Postcode    string       `json:"postcode"`
	State       string       `json:"state"`
	City        string       `json:"city"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Contact holds optional ways to reach a business.
type Contact struct {
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Website   string `json:"website,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// WeekHours maps each weekday to a free-text schedule string.
// A schedule is either empty (unknown), the literal "Closed", or one or
// more comma-separated ranges like "9:00 AM - 5:00 PM".
type WeekHours struct {
	Monday    string `json:"monday,omitempty"`
	Tuesday   string `json:"tuesday,omitempty"`
	Wednesday string `json:"wednesday,omitempty"`
	Thursday  string `json:"thursday,omitempty"`
	Friday    string `json:"friday,omitempty"`
	Saturday  string `json:"saturday,omitempty"`
	Sunday    string `json:"sunday,omitempty"`
}

// ForWeekday returns the schedule string for the given weekday.
func (h WeekHours) ForWeekday(day time.Weekday) string {
	switch day {
	case time.Monday:
		return h.Monday
	case time.Tuesday:
		return h.Tuesday
	case time.Wednesday:
		return h.Wednesday
	case time.Thursday:
		return h.Thursday
	case time.Friday:
		return h.Friday
	case time.Saturday:
		return h.Saturday
	case time.Sunday:
		return h.Sunday
	}
	return ""
}

// Business is a single directory listing.
//
// Rating is 0-5; a rating of 0 with zero reviews means "unrated", not
// "worst". CreatedAt/UpdatedAt are ISO 8601 strings as published in the
// dataset.
type Business struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	LocalName        string     `json:"localName,omitempty"`
	Category         string     `json:"category"`
	Subcategory      string     `json:"subcategory,omitempty"`
	Description      string     `json:"description"`
	LocalDescription string     `json:"localDescription,omitempty"`
	Location         Location   `json:"location"`
	Contact          Contact    `json:"contact"`
	Hours            WeekHours  `json:"hours"`
	Languages        []string   `json:"languages"`
	Tags             []string   `json:"tags"`
	Features         []string   `json:"features"`
	Rating           float64    `json:"rating"`
	ReviewCount      int        `json:"reviewCount"`
	PriceRange       PriceRange `json:"priceRange,omitempty"`
	Verified         bool       `json:"verified"`
	CommunityOwned   bool       `json:"communityOwned"`
	CreatedAt        string     `json:"createdAt"`
	UpdatedAt        string     `json:"updatedAt"`
	CreatedBy        string     `json:"createdBy"`
	Reviews          []Review   `json:"reviews"`
}

// UpdatedAtTime parses the UpdatedAt timestamp. The zero time is returned
// for missing or malformed values, which sorts such businesses last under
// the "recent" ordering.
func (b *Business) UpdatedAtTime() time.Time {
	t, err := time.Parse(time.RFC3339, b.UpdatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}
