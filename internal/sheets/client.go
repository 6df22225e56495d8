package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/communitydirectory/directory-server/internal/domain"
)

// Fetcher is the remote spreadsheet surface used by RemoteSource.
// Client is the production implementation; tests substitute stubs.
type Fetcher interface {
	FetchBusinesses(ctx context.Context) ([]domain.Business, error)
	FetchCategories(ctx context.Context) ([]domain.Category, error)
	FetchReviews(ctx context.Context) ([]domain.Review, error)
	FetchSuburbs(ctx context.Context) ([]domain.Suburb, error)
	AppendBusiness(ctx context.Context, b domain.Business) error
	AppendReview(ctx context.Context, r domain.Review) error
}

// Client reads and appends directory rows in a Google Sheets spreadsheet.
// The spreadsheet must be readable with an API key; appends additionally
// require the sheet to be writable by the key's project.
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
}

// NewClient creates a Sheets client for the given spreadsheet.
func NewClient(ctx context.Context, spreadsheetID, apiKey string) (*Client, error) {
	svc, err := sheetsapi.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &Client{svc: svc, spreadsheetID: spreadsheetID}, nil
}

func (c *Client) fetch(ctx context.Context, readRange string) ([][]any, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", readRange, err)
	}
	return resp.Values, nil
}

func (c *Client) append(ctx context.Context, appendRange string, row []any) error {
	body := &sheetsapi.ValueRange{Values: [][]any{row}}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, appendRange, body).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append %s: %w", appendRange, err)
	}
	return nil
}

// FetchBusinesses loads the Businesses tab. Rows without an id and name
// are discarded.
func (c *Client) FetchBusinesses(ctx context.Context) ([]domain.Business, error) {
	rows, err := c.fetch(ctx, businessesRange)
	if err != nil {
		return nil, err
	}

	businesses := make([]domain.Business, 0, len(rows))
	for _, row := range rows {
		if b, ok := rowToBusiness(row); ok {
			businesses = append(businesses, b)
		}
	}
	return businesses, nil
}

// FetchCategories loads the Categories tab.
func (c *Client) FetchCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := c.fetch(ctx, categoriesRange)
	if err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		if cat, ok := rowToCategory(row); ok {
			categories = append(categories, cat)
		}
	}
	return categories, nil
}

// FetchReviews loads the Reviews tab.
func (c *Client) FetchReviews(ctx context.Context) ([]domain.Review, error) {
	rows, err := c.fetch(ctx, reviewsRange)
	if err != nil {
		return nil, err
	}

	reviews := make([]domain.Review, 0, len(rows))
	for _, row := range rows {
		if r, ok := rowToReview(row); ok {
			reviews = append(reviews, r)
		}
	}
	return reviews, nil
}

// FetchSuburbs loads the Suburbs tab.
func (c *Client) FetchSuburbs(ctx context.Context) ([]domain.Suburb, error) {
	rows, err := c.fetch(ctx, suburbsRange)
	if err != nil {
		return nil, err
	}

	suburbs := make([]domain.Suburb, 0, len(rows))
	for _, row := range rows {
		if s, ok := rowToSuburb(row); ok {
			suburbs = append(suburbs, s)
		}
	}
	return suburbs, nil
}

// AppendBusiness appends a business as a new row. The in-memory snapshot
// is unaffected; the row becomes visible on the next full reload.
func (c *Client) AppendBusiness(ctx context.Context, b domain.Business) error {
	return c.append(ctx, businessesAppendRange, businessToRow(b))
}

// AppendReview appends a review as a new row.
func (c *Client) AppendReview(ctx context.Context, r domain.Review) error {
	return c.append(ctx, reviewsAppendRange, reviewToRow(r))
}
