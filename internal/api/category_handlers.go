package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/communitydirectory/directory-server/internal/domain"
)

func (s *Server) registerCategoryRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listCategories",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories",
		Summary:     "List categories",
		Tags:        []string{"Categories"},
	}, s.handleListCategories)

	huma.Register(s.api, huma.Operation{
		OperationID: "popularCategories",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories/popular",
		Summary:     "Popular categories",
		Description: "Returns categories ordered by live business count",
		Tags:        []string{"Categories"},
	}, s.handlePopularCategories)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCategory",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories/{slug}",
		Summary:     "Get category",
		Tags:        []string{"Categories"},
	}, s.handleGetCategory)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCategoryBusinesses",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories/{slug}/businesses",
		Summary:     "Businesses in category",
		Tags:        []string{"Categories"},
	}, s.handleGetCategoryBusinesses)

	huma.Register(s.api, huma.Operation{
		OperationID: "getSubcategory",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories/{slug}/subcategories/{subSlug}",
		Summary:     "Get subcategory",
		Tags:        []string{"Categories"},
	}, s.handleGetSubcategory)
}

// ListCategoriesResponse contains a category collection.
type ListCategoriesResponse struct {
	Categories []domain.Category `json:"categories"`
	Total      int               `json:"total"`
}

// ListCategoriesOutput wraps the response for Huma.
type ListCategoriesOutput struct {
	Body ListCategoriesResponse
}

func (s *Server) handleListCategories(_ context.Context, _ *struct{}) (*ListCategoriesOutput, error) {
	categories := s.services.Directory.ListCategories()
	return &ListCategoriesOutput{
		Body: ListCategoriesResponse{
			Categories: categories,
			Total:      len(categories),
		},
	}, nil
}

func (s *Server) handlePopularCategories(_ context.Context, input *HighlightInput) (*ListCategoriesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultHighlightCount
	}

	categories := s.services.Stats.PopularCategories(limit)
	return &ListCategoriesOutput{
		Body: ListCategoriesResponse{
			Categories: categories,
			Total:      len(categories),
		},
	}, nil
}

// GetCategoryInput identifies a category by URL slug.
type GetCategoryInput struct {
	Slug string `path:"slug" doc:"Category URL slug"`
}

// CategoryOutput wraps a single category for Huma.
type CategoryOutput struct {
	Body domain.Category
}

func (s *Server) handleGetCategory(_ context.Context, input *GetCategoryInput) (*CategoryOutput, error) {
	c, err := s.services.Directory.Category(input.Slug)
	if err != nil {
		return nil, err
	}
	return &CategoryOutput{Body: *c}, nil
}

func (s *Server) handleGetCategoryBusinesses(_ context.Context, input *GetCategoryInput) (*ListBusinessesOutput, error) {
	businesses, err := s.services.Directory.BusinessesByCategory(input.Slug)
	if err != nil {
		return nil, err
	}
	return &ListBusinessesOutput{
		Body: ListBusinessesResponse{
			Businesses: businesses,
			Total:      len(businesses),
		},
	}, nil
}

// GetSubcategoryInput identifies a subcategory within a category.
type GetSubcategoryInput struct {
	Slug    string `path:"slug" doc:"Category URL slug"`
	SubSlug string `path:"subSlug" doc:"Subcategory URL slug"`
}

// SubcategoryOutput wraps a single subcategory for Huma.
type SubcategoryOutput struct {
	Body domain.Subcategory
}

func (s *Server) handleGetSubcategory(_ context.Context, input *GetSubcategoryInput) (*SubcategoryOutput, error) {
	sub, err := s.services.Directory.Subcategory(input.Slug, input.SubSlug)
	if err != nil {
		return nil, err
	}
	return &SubcategoryOutput{Body: *sub}, nil
}
