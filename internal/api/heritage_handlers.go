package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/heritageapp/heritage-server/internal/domain"
	"github.com/heritageapp/heritage-server/internal/search"
)

func (s *Server) registerHeritageRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listHeritage",
		Method:      http.MethodGet,
		Path:        "/api/v1/heritage",
		Summary:     "List heritage entries",
		Description: "Returns a filtered, paginated slice of the catalog",
		Tags:        []string{"Heritage"},
	}, s.handleListHeritage)

	huma.Register(s.api, huma.Operation{
		OperationID: "listHeritageCategories",
		Method:      http.MethodGet,
		Path:        "/api/v1/heritage/categories",
		Summary:     "List categories",
		Description: "Returns the categories present in the catalog",
		Tags:        []string{"Heritage"},
	}, s.handleListCategories)

	huma.Register(s.api, huma.Operation{
		OperationID: "listHeritageRegions",
		Method:      http.MethodGet,
		Path:        "/api/v1/heritage/regions",
		Summary:     "List region groups",
		Description: "Returns the macro region groups used for filtering",
		Tags:        []string{"Heritage"},
	}, s.handleListRegions)

	huma.Register(s.api, huma.Operation{
		OperationID: "getHeritage",
		Method:      http.MethodGet,
		Path:        "/api/v1/heritage/{id}",
		Summary:     "Get heritage entry",
		Description: "Returns a single catalog entry by ID",
		Tags:        []string{"Heritage"},
	}, s.handleGetHeritage)

	if s.services.Search != nil {
		huma.Register(s.api, huma.Operation{
			OperationID: "searchHeritage",
			Method:      http.MethodGet,
			Path:        "/api/v1/search",
			Summary:     "Search heritage entries",
			Description: "Relevance-ranked full-text search over the catalog",
			Tags:        []string{"Heritage"},
		}, s.handleSearchHeritage)
	}
}

// === DTOs ===

// ListHeritageInput contains parameters for listing the catalog.
type ListHeritageInput struct {
	Query    string `query:"q" doc:"Search term matched against name and description"`
	Category string `query:"category" doc:"Category filter; 全部 disables it"`
	Region   string `query:"region" doc:"Region group filter; 全部 disables it"`
	Page     int    `query:"page" default:"1" minimum:"1" doc:"Page number"`
	Limit    int    `query:"limit" default:"12" minimum:"1" maximum:"100" doc:"Page size"`
}

// ListHeritageResponse contains a catalog page.
type ListHeritageResponse struct {
	Data  []domain.CatalogEntry `json:"data" doc:"Catalog entries in catalog order"`
	Total int                   `json:"total" doc:"Size of the filtered set before paging"`
	Page  int                   `json:"page" doc:"Requested page number"`
}

// ListHeritageOutput wraps the list response for Huma.
type ListHeritageOutput struct {
	Body ListHeritageResponse
}

// GetHeritageInput contains parameters for fetching one entry.
type GetHeritageInput struct {
	ID string `path:"id" doc:"Catalog entry ID"`
}

// HeritageOutput wraps a single entry for Huma.
type HeritageOutput struct {
	Body domain.CatalogEntry
}

// CategoriesOutput wraps the category list for Huma.
type CategoriesOutput struct {
	Body []string
}

// RegionsOutput wraps the region group list for Huma.
type RegionsOutput struct {
	Body []string
}

// SearchHeritageInput contains full-text search parameters.
type SearchHeritageInput struct {
	Query    string `query:"q" doc:"Search query"`
	Category string `query:"category" doc:"Exact category filter"`
	Region   string `query:"region" doc:"Exact region group filter"`
	Limit    int    `query:"limit" default:"20" minimum:"1" maximum:"100" doc:"Maximum hits"`
	Offset   int    `query:"offset" default:"0" minimum:"0" doc:"Hits to skip"`
}

// SearchHeritageOutput wraps search results for Huma.
type SearchHeritageOutput struct {
	Body search.Result
}

// === Handlers ===

func (s *Server) handleListHeritage(_ context.Context, input *ListHeritageInput) (*ListHeritageOutput, error) {
	result := s.services.Catalog.List(domain.QueryParams{
		Term:        input.Query,
		Category:    input.Category,
		RegionGroup: input.Region,
		Page:        input.Page,
		PageSize:    input.Limit,
	})

	items := result.Items
	if items == nil {
		items = []domain.CatalogEntry{}
	}
	return &ListHeritageOutput{Body: ListHeritageResponse{
		Data:  items,
		Total: result.Total,
		Page:  result.Page,
	}}, nil
}

func (s *Server) handleGetHeritage(_ context.Context, input *GetHeritageInput) (*HeritageOutput, error) {
	entry, err := s.services.Catalog.Get(input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("heritage entry not found", err)
	}
	return &HeritageOutput{Body: entry}, nil
}

func (s *Server) handleListCategories(_ context.Context, _ *struct{}) (*CategoriesOutput, error) {
	return &CategoriesOutput{Body: s.services.Catalog.Categories()}, nil
}

func (s *Server) handleListRegions(_ context.Context, _ *struct{}) (*RegionsOutput, error) {
	return &RegionsOutput{Body: s.services.Catalog.RegionGroups()}, nil
}

func (s *Server) handleSearchHeritage(ctx context.Context, input *SearchHeritageInput) (*SearchHeritageOutput, error) {
	params := search.DefaultParams()
	params.Query = input.Query
	params.Category = input.Category
	params.RegionGroup = input.Region
	params.Limit = input.Limit
	params.Offset = input.Offset

	result, err := s.services.Search.Search(ctx, params)
	if err != nil {
		s.logger.Error("search failed", "error", err, "query", input.Query)
		return nil, huma.Error500InternalServerError("search failed", err)
	}
	return &SearchHeritageOutput{Body: *result}, nil
}
