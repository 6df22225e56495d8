package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/communitydirectory/directory-server/internal/dataset"
	"github.com/communitydirectory/directory-server/internal/domain"
	"github.com/communitydirectory/directory-server/internal/errors"
	"github.com/communitydirectory/directory-server/internal/id"
	"github.com/communitydirectory/directory-server/internal/validation"
)

// Appender receives accepted contributions. The Sheets client is the
// production implementation.
type Appender interface {
	AppendBusiness(ctx context.Context, b domain.Business) error
	AppendReview(ctx context.Context, r domain.Review) error
}

// BusinessSubmission is a community-submitted business listing.
type BusinessSubmission struct {
	Name             string           `json:"name" validate:"required,min=2,max=120"`
	LocalName        string           `json:"localName,omitempty" validate:"max=120"`
	Category         string           `json:"category" validate:"required"`
	Subcategory      string           `json:"subcategory,omitempty"`
	Description      string           `json:"description" validate:"required,min=10,max=2000"`
	LocalDescription string           `json:"localDescription,omitempty" validate:"max=2000"`
	Address          string           `json:"address,omitempty"`
	Suburb           string           `json:"suburb" validate:"required"`
	Postcode         string           `json:"postcode,omitempty" validate:"omitempty,len=4"`
	Phone            string           `json:"phone,omitempty"`
	Email            string           `json:"email,omitempty" validate:"omitempty,email"`
	Website          string           `json:"website,omitempty" validate:"omitempty,url"`
	Hours            domain.WeekHours `json:"hours,omitempty"`
	Languages        []string         `json:"languages,omitempty"`
	Tags             []string         `json:"tags,omitempty"`
	Features         []string         `json:"features,omitempty"`
	PriceRange       string           `json:"priceRange,omitempty" validate:"omitempty,oneof=$ $$ $$$ $$$$"`
	CommunityOwned   bool             `json:"communityOwned,omitempty"`
	SubmittedBy      string           `json:"submittedBy,omitempty" validate:"max=80"`
}

// ReviewSubmission is a community-submitted review.
type ReviewSubmission struct {
	BusinessID   string `json:"businessId" validate:"required"`
	Author       string `json:"author" validate:"required,min=2,max=80"`
	AuthorEmail  string `json:"authorEmail,omitempty" validate:"omitempty,email"`
	Rating       int    `json:"rating" validate:"required,gte=1,lte=5"`
	Title        string `json:"title,omitempty" validate:"max=120"`
	Comment      string `json:"comment" validate:"required,min=10,max=2000"`
	LocalComment string `json:"localComment,omitempty" validate:"max=2000"`
}

// ContributionService accepts community submissions and forwards them to
// the spreadsheet. Contributions never mutate the loaded snapshot: a
// submitted listing becomes visible only after the next full reload.
type ContributionService struct {
	appender  Appender
	holder    *dataset.Holder
	validator *validation.Validator
	logger    *slog.Logger
	now       func() time.Time
}

// NewContributionService creates a new contribution service. A nil
// appender disables submissions (no spreadsheet configured).
func NewContributionService(appender Appender, holder *dataset.Holder, validator *validation.Validator, logger *slog.Logger) *ContributionService {
	return &ContributionService{
		appender:  appender,
		holder:    holder,
		validator: validator,
		logger:    logger,
		now:       time.Now,
	}
}

// SubmitBusiness validates a submission, assigns an id and timestamps, and
// appends it to the spreadsheet. Returns the full record as appended.
func (s *ContributionService) SubmitBusiness(ctx context.Context, sub BusinessSubmission) (*domain.Business, error) {
	if s.appender == nil {
		return nil, errors.Unavailable("contributions are not enabled")
	}
	if err := s.validator.Validate(sub); err != nil {
		return nil, err
	}

	if s.holder.Current().CategoryByID(sub.Category) == nil {
		return nil, errors.ValidationWithDetails("validation failed", map[string]string{
			"category": "is not a known category",
		})
	}

	now := s.now().UTC().Format(time.RFC3339)

	languages := sub.Languages
	if len(languages) == 0 {
		languages = []string{"English"}
	}
	createdBy := sub.SubmittedBy
	if createdBy == "" {
		createdBy = "community"
	}

	newID, err := id.Generate(id.PrefixBusiness)
	if err != nil {
		return nil, errors.Internal("failed to generate id").WithCause(err)
	}

	b := domain.Business{
		ID:               newID,
		Name:             sub.Name,
		LocalName:        sub.LocalName,
		Category:         sub.Category,
		Subcategory:      sub.Subcategory,
		Description:      sub.Description,
		LocalDescription: sub.LocalDescription,
		Location: domain.Location{
			Address:  sub.Address,
			Suburb:   sub.Suburb,
			Postcode: sub.Postcode,
			State:    "VIC",
			City:     "Melbourne",
		},
		Contact: domain.Contact{
			Phone:   sub.Phone,
			Email:   sub.Email,
			Website: sub.Website,
		},
		Hours:          sub.Hours,
		Languages:      languages,
		Tags:           sub.Tags,
		Features:       sub.Features,
		PriceRange:     domain.PriceRange(sub.PriceRange),
		CommunityOwned: sub.CommunityOwned,
		CreatedAt:      now,
		UpdatedAt:      now,
		CreatedBy:      createdBy,
		Reviews:        []domain.Review{},
	}

	if err := s.appender.AppendBusiness(ctx, b); err != nil {
		s.logger.Error("failed to append business", "name", b.Name, "error", err)
		return nil, errors.Unavailable("could not record submission").WithCause(err)
	}

	s.logger.Info("business submitted", "id", b.ID, "name", b.Name, "suburb", b.Location.Suburb)
	return &b, nil
}

// SubmitReview validates a review, assigns an id and date, and appends it
// to the spreadsheet. The target business must exist in the current
// snapshot.
func (s *ContributionService) SubmitReview(ctx context.Context, sub ReviewSubmission) (*domain.Review, error) {
	if s.appender == nil {
		return nil, errors.Unavailable("contributions are not enabled")
	}
	if err := s.validator.Validate(sub); err != nil {
		return nil, err
	}

	if s.holder.Current().BusinessByID(sub.BusinessID) == nil {
		return nil, errors.NotFoundf("business %q not found", sub.BusinessID)
	}

	newID, err := id.Generate(id.PrefixReview)
	if err != nil {
		return nil, errors.Internal("failed to generate id").WithCause(err)
	}

	r := domain.Review{
		ID:           newID,
		BusinessID:   sub.BusinessID,
		Author:       sub.Author,
		AuthorEmail:  sub.AuthorEmail,
		Rating:       sub.Rating,
		Title:        sub.Title,
		Comment:      sub.Comment,
		LocalComment: sub.LocalComment,
		Date:         s.now().UTC().Format(time.RFC3339),
		Photos:       []string{},
	}

	if err := s.appender.AppendReview(ctx, r); err != nil {
		s.logger.Error("failed to append review", "business_id", r.BusinessID, "error", err)
		return nil, errors.Unavailable("could not record submission").WithCause(err)
	}

	s.logger.Info("review submitted", "id", r.ID, "business_id", r.BusinessID, "rating", r.Rating)
	return &r, nil
}
