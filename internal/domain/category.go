package domain

// Subcategory is a second-level classification within a category.
type Subcategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	LocalName   string `json:"localName,omitempty"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// Category is a top-level business classification.
//
// BusinessCount is a cached display value carried in the dataset. It is
// not authoritative: aggregations always count live Business records
// instead of trusting this field.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	LocalName     string        `json:"localName,omitempty"`
	Slug          string        `json:"slug"`
	Description   string        `json:"description,omitempty"`
	Icon          string        `json:"icon,omitempty"`
	Color         string        `json:"color,omitempty"`
	BusinessCount int           `json:"businessCount"`
	Subcategories []Subcategory `json:"subcategories"`
}

// SubcategoryBySlug returns the subcategory with the given slug, or nil.
func (c *Category) SubcategoryBySlug(slug string) *Subcategory {
	for i := range c.Subcategories {
		if c.Subcategories[i].Slug == slug {
			return &c.Subcategories[i]
		}
	}
	return nil
}
