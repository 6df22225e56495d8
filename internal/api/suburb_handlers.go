package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/communitydirectory/directory-server/internal/domain"
)

func (s *Server) registerSuburbRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listSuburbs",
		Method:      http.MethodGet,
		Path:        "/api/v1/suburbs",
		Summary:     "List suburbs",
		Tags:        []string{"Suburbs"},
	}, s.handleListSuburbs)

	huma.Register(s.api, huma.Operation{
		OperationID: "getSuburb",
		Method:      http.MethodGet,
		Path:        "/api/v1/suburbs/{name}",
		Summary:     "Get suburb",
		Tags:        []string{"Suburbs"},
	}, s.handleGetSuburb)

	huma.Register(s.api, huma.Operation{
		OperationID: "getSuburbBusinesses",
		Method:      http.MethodGet,
		Path:        "/api/v1/suburbs/{name}/businesses",
		Summary:     "Businesses in suburb",
		Description: "Returns businesses located in the named suburb; unknown names yield an empty list",
		Tags:        []string{"Suburbs"},
	}, s.handleGetSuburbBusinesses)
}

// ListSuburbsResponse contains a suburb collection.
type ListSuburbsResponse struct {
	Suburbs []domain.Suburb `json:"suburbs"`
	Total   int             `json:"total"`
}

// ListSuburbsOutput wraps the response for Huma.
type ListSuburbsOutput struct {
	Body ListSuburbsResponse
}

func (s *Server) handleListSuburbs(_ context.Context, _ *struct{}) (*ListSuburbsOutput, error) {
	suburbs := s.services.Directory.ListSuburbs()
	return &ListSuburbsOutput{
		Body: ListSuburbsResponse{
			Suburbs: suburbs,
			Total:   len(suburbs),
		},
	}, nil
}

// GetSuburbInput identifies a suburb by name.
type GetSuburbInput struct {
	Name string `path:"name" doc:"Suburb name (case-insensitive)"`
}

// SuburbOutput wraps a single suburb for Huma.
type SuburbOutput struct {
	Body domain.Suburb
}

func (s *Server) handleGetSuburb(_ context.Context, input *GetSuburbInput) (*SuburbOutput, error) {
	sub, err := s.services.Directory.Suburb(input.Name)
	if err != nil {
		return nil, err
	}
	return &SuburbOutput{Body: *sub}, nil
}

func (s *Server) handleGetSuburbBusinesses(_ context.Context, input *GetSuburbInput) (*ListBusinessesOutput, error) {
	// Businesses can reference suburbs absent from the suburbs
	// collection, so an unknown name is not a 404 here.
	businesses := s.services.Directory.BusinessesBySuburb(input.Name)
	return &ListBusinessesOutput{
		Body: ListBusinessesResponse{
			Businesses: businesses,
			Total:      len(businesses),
		},
	}, nil
}
