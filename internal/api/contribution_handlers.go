package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/communitydirectory/directory-server/internal/domain"
	"github.com/communitydirectory/directory-server/internal/service"
)

func (s *Server) registerContributionRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID:   "submitBusiness",
		Method:        http.MethodPost,
		Path:          "/api/v1/contributions/businesses",
		Summary:       "Submit business",
		Description:   "Accepts a community-submitted listing; it becomes visible after the next dataset reload",
		Tags:          []string{"Contributions"},
		DefaultStatus: http.StatusCreated,
	}, s.handleSubmitBusiness)

	huma.Register(s.api, huma.Operation{
		OperationID:   "submitReview",
		Method:        http.MethodPost,
		Path:          "/api/v1/contributions/reviews",
		Summary:       "Submit review",
		Tags:          []string{"Contributions"},
		DefaultStatus: http.StatusCreated,
	}, s.handleSubmitReview)
}

// SubmitBusinessInput wraps a business submission body.
type SubmitBusinessInput struct {
	Body service.BusinessSubmission
}

func (s *Server) handleSubmitBusiness(ctx context.Context, input *SubmitBusinessInput) (*BusinessOutput, error) {
	b, err := s.services.Contribution.SubmitBusiness(ctx, input.Body)
	if err != nil {
		return nil, err
	}
	return &BusinessOutput{Body: BusinessDetail{Business: *b}}, nil
}

// SubmitReviewInput wraps a review submission body.
type SubmitReviewInput struct {
	Body service.ReviewSubmission
}

// ReviewOutput wraps a single review for Huma.
type ReviewOutput struct {
	Body domain.Review
}

func (s *Server) handleSubmitReview(ctx context.Context, input *SubmitReviewInput) (*ReviewOutput, error) {
	r, err := s.services.Contribution.SubmitReview(ctx, input.Body)
	if err != nil {
		return nil, err
	}
	return &ReviewOutput{Body: *r}, nil
}
