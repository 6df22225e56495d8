// Package sheets imports the directory dataset from a Google Sheets
// spreadsheet. It exposes the same collections as the local dataset
// loader and appends community contributions as new rows.
//
// The spreadsheet layout is positional: one tab per collection, a header
// row, and fixed column ordering. Rows missing their identity columns are
// discarded; every other column is defaulted field by field.
package sheets

import (
	"encoding/json/v2"
	"fmt"
	"strconv"
	"strings"

	"github.com/communitydirectory/directory-server/internal/domain"
	"github.com/communitydirectory/directory-server/internal/util"
)

// Tab ranges. A2 skips the header row.
const (
	businessesRange = "Businesses!A2:AK"
	categoriesRange = "Categories!A2:I"
	reviewsRange    = "Reviews!A2:O"
	suburbsRange    = "Suburbs!A2:D"

	businessesAppendRange = "Businesses!A:AK"
	reviewsAppendRange    = "Reviews!A:O"
)

// cell returns the string at index i, or "" past the end of the row.
// The values API returns ragged rows of interface{}.
func cell(row []any, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	if s, ok := row[i].(string); ok {
		return s
	}
	return fmt.Sprint(row[i])
}

func cellOr(row []any, i int, fallback string) string {
	if s := cell(row, i); s != "" {
		return s
	}
	return fallback
}

func cellFloat(row []any, i int) float64 {
	f, err := strconv.ParseFloat(cell(row, i), 64)
	if err != nil {
		return 0
	}
	return f
}

func cellInt(row []any, i int) int {
	n, err := strconv.Atoi(cell(row, i))
	if err != nil {
		return 0
	}
	return n
}

func cellBool(row []any, i int) bool {
	return strings.EqualFold(cell(row, i), "true")
}

// cellList splits a comma-separated cell into trimmed values.
func cellList(row []any, i int) []string {
	raw := cell(row, i)
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// rowToBusiness maps the 37-column Businesses tab layout. Returns false
// when the row is missing its id or name.
func rowToBusiness(row []any) (domain.Business, bool) {
	if cell(row, 0) == "" || cell(row, 1) == "" {
		return domain.Business{}, false
	}

	b := domain.Business{
		ID:               cell(row, 0),
		Name:             cell(row, 1),
		LocalName:        cell(row, 2),
		Category:         cell(row, 3),
		Subcategory:      cell(row, 4),
		Description:      cell(row, 5),
		LocalDescription: cell(row, 6),
		Location: domain.Location{
			Address:  cell(row, 7),
			Suburb:   cell(row, 8),
			Postcode: cell(row, 9),
			State:    cellOr(row, 10, "VIC"),
			City:     cellOr(row, 11, "Melbourne"),
		},
		Contact: domain.Contact{
			Phone:     cell(row, 14),
			Email:     cell(row, 15),
			Website:   cell(row, 16),
			Facebook:  cell(row, 17),
			Instagram: cell(row, 18),
		},
		Hours: domain.WeekHours{
			Monday:    cell(row, 19),
			Tuesday:   cell(row, 20),
			Wednesday: cell(row, 21),
			Thursday:  cell(row, 22),
			Friday:    cell(row, 23),
			Saturday:  cell(row, 24),
			Sunday:    cell(row, 25),
		},
		Languages:      cellList(row, 26),
		Tags:           cellList(row, 27),
		Features:       cellList(row, 28),
		Rating:         cellFloat(row, 29),
		ReviewCount:    cellInt(row, 30),
		PriceRange:     domain.PriceRange(cell(row, 31)),
		Verified:       cellBool(row, 32),
		CommunityOwned: cellBool(row, 33),
		CreatedAt:      cell(row, 34),
		UpdatedAt:      cell(row, 35),
		CreatedBy:      cellOr(row, 36, "community"),
		Reviews:        []domain.Review{},
	}

	if len(b.Languages) == 0 {
		b.Languages = []string{"English"}
	}

	// Coordinates only when both halves parse.
	if cell(row, 12) != "" && cell(row, 13) != "" {
		b.Location.Coordinates = &domain.Coordinates{
			Lat: cellFloat(row, 12),
			Lng: cellFloat(row, 13),
		}
	}

	return b, true
}

// rowToCategory maps the 9-column Categories tab layout. Subcategories
// are embedded as a JSON array in the final column. Slugs left blank in
// the sheet are derived from the display name.
func rowToCategory(row []any) (domain.Category, bool) {
	if cell(row, 0) == "" || cell(row, 1) == "" {
		return domain.Category{}, false
	}

	c := domain.Category{
		ID:            cell(row, 0),
		Name:          cell(row, 1),
		LocalName:     cell(row, 2),
		Slug:          cellOr(row, 3, util.Slugify(cell(row, 1))),
		Description:   cell(row, 4),
		Icon:          cellOr(row, 5, "📋"),
		Color:         cellOr(row, 6, "#6B7280"),
		BusinessCount: cellInt(row, 7),
		Subcategories: []domain.Subcategory{},
	}

	if raw := cell(row, 8); raw != "" {
		var subs []domain.Subcategory
		if err := json.Unmarshal([]byte(raw), &subs); err == nil {
			for i := range subs {
				if subs[i].Slug == "" {
					subs[i].Slug = util.Slugify(subs[i].Name)
				}
			}
			c.Subcategories = subs
		}
	}

	return c, true
}

// rowToReview maps the 15-column Reviews tab layout. A response object is
// assembled only when all three response columns are present.
func rowToReview(row []any) (domain.Review, bool) {
	if cell(row, 0) == "" || cell(row, 1) == "" {
		return domain.Review{}, false
	}

	r := domain.Review{
		ID:           cell(row, 0),
		BusinessID:   cell(row, 1),
		Author:       cell(row, 2),
		AuthorEmail:  cell(row, 3),
		Rating:       5,
		Title:        cell(row, 5),
		Comment:      cell(row, 6),
		LocalComment: cell(row, 7),
		Date:         cell(row, 8),
		Helpful:      cellInt(row, 9),
		Photos:       cellList(row, 10),
		Verified:     cellBool(row, 11),
	}

	if rating := cellInt(row, 4); rating != 0 {
		r.Rating = rating
	}

	if author, comment, date := cell(row, 12), cell(row, 13), cell(row, 14); author != "" && comment != "" && date != "" {
		r.Response = &domain.ReviewResponse{Author: author, Comment: comment, Date: date}
	}

	return r, true
}

// rowToSuburb maps the 4-column Suburbs tab layout.
func rowToSuburb(row []any) (domain.Suburb, bool) {
	if cell(row, 0) == "" || cell(row, 1) == "" {
		return domain.Suburb{}, false
	}

	return domain.Suburb{
		Name:              cell(row, 0),
		Postcode:          cell(row, 1),
		BusinessCount:     cellInt(row, 2),
		PopularCategories: cellList(row, 3),
	}, true
}

// businessToRow serializes a business into the Businesses tab column order.
func businessToRow(b domain.Business) []any {
	var lat, lng any = "", ""
	if b.Location.Coordinates != nil {
		lat = b.Location.Coordinates.Lat
		lng = b.Location.Coordinates.Lng
	}

	languages := strings.Join(b.Languages, ", ")
	if languages == "" {
		languages = "English"
	}

	return []any{
		b.ID,
		b.Name,
		b.LocalName,
		b.Category,
		b.Subcategory,
		b.Description,
		b.LocalDescription,
		b.Location.Address,
		b.Location.Suburb,
		b.Location.Postcode,
		b.Location.State,
		b.Location.City,
		lat,
		lng,
		b.Contact.Phone,
		b.Contact.Email,
		b.Contact.Website,
		b.Contact.Facebook,
		b.Contact.Instagram,
		b.Hours.Monday,
		b.Hours.Tuesday,
		b.Hours.Wednesday,
		b.Hours.Thursday,
		b.Hours.Friday,
		b.Hours.Saturday,
		b.Hours.Sunday,
		languages,
		strings.Join(b.Tags, ", "),
		strings.Join(b.Features, ", "),
		b.Rating,
		b.ReviewCount,
		string(b.PriceRange),
		b.Verified,
		b.CommunityOwned,
		b.CreatedAt,
		b.UpdatedAt,
		b.CreatedBy,
	}
}

// reviewToRow serializes a review into the Reviews tab column order.
func reviewToRow(r domain.Review) []any {
	var respAuthor, respComment, respDate string
	if r.Response != nil {
		respAuthor = r.Response.Author
		respComment = r.Response.Comment
		respDate = r.Response.Date
	}

	return []any{
		r.ID,
		r.BusinessID,
		r.Author,
		r.AuthorEmail,
		r.Rating,
		r.Title,
		r.Comment,
		r.LocalComment,
		r.Date,
		r.Helpful,
		strings.Join(r.Photos, ", "),
		r.Verified,
		respAuthor,
		respComment,
		respDate,
	}
}
