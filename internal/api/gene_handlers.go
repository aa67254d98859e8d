package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/heritageapp/heritage-server/internal/domain"
	domainerrors "github.com/heritageapp/heritage-server/internal/errors"
	"github.com/heritageapp/heritage-server/internal/service"
)

func (s *Server) registerGeneRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "generateGeneProfile",
		Method:      http.MethodPost,
		Path:        "/api/v1/gene/generate",
		Summary:     "Generate gene profile",
		Description: "Scores the questionnaire answers and persists the resulting profile",
		Tags:        []string{"Gene"},
	}, s.handleGenerateProfile)

	huma.Register(s.api, huma.Operation{
		OperationID: "getGeneProfile",
		Method:      http.MethodGet,
		Path:        "/api/v1/gene/profile/{id}",
		Summary:     "Get gene profile",
		Description: "Returns a previously generated profile",
		Tags:        []string{"Gene"},
	}, s.handleGetProfile)

	huma.Register(s.api, huma.Operation{
		OperationID: "assignArchetype",
		Method:      http.MethodPost,
		Path:        "/api/v1/gene/archetype",
		Summary:     "Assign archetype card",
		Description: "Returns the user's archetype card, drawing and persisting one on first call",
		Tags:        []string{"Gene"},
	}, s.handleAssignArchetype)

	huma.Register(s.api, huma.Operation{
		OperationID: "listArchetypes",
		Method:      http.MethodGet,
		Path:        "/api/v1/gene/archetypes",
		Summary:     "List archetype cards",
		Description: "Returns the full archetype deck",
		Tags:        []string{"Gene"},
	}, s.handleListArchetypes)
}

// === DTOs ===

// GenerateProfileInput wraps the generation request for Huma.
type GenerateProfileInput struct {
	Body service.GenerateProfileRequest
}

// GenerateProfileResponse is the generation result.
type GenerateProfileResponse struct {
	ProfileID       string         `json:"profileId" doc:"ID of the persisted profile"`
	GeneMap         domain.GeneMap `json:"geneMap" doc:"Computed gene map"`
	Recommendations []string       `json:"recommendations" doc:"Recommended exhibit IDs"`
}

// GenerateProfileOutput wraps the generation response for Huma.
type GenerateProfileOutput struct {
	Body GenerateProfileResponse
}

// GetProfileInput contains parameters for fetching a profile.
type GetProfileInput struct {
	ID string `path:"id" doc:"Profile ID"`
}

// ProfileOutput wraps a stored profile for Huma.
type ProfileOutput struct {
	Body domain.GeneProfile
}

// AssignArchetypeRequest identifies the user and their known assignment.
type AssignArchetypeRequest struct {
	UserID     string `json:"userId" validate:"required" doc:"User to assign a card to"`
	ExistingID string `json:"existingId,omitempty" doc:"Previously persisted card ID, if any"`
}

// AssignArchetypeInput wraps the assignment request for Huma.
type AssignArchetypeInput struct {
	Body AssignArchetypeRequest
}

// ArchetypeOutput wraps a single archetype card for Huma.
type ArchetypeOutput struct {
	Body domain.ArchetypeCard
}

// ArchetypesOutput wraps the archetype deck for Huma.
type ArchetypesOutput struct {
	Body []domain.ArchetypeCard
}

// === Handlers ===

func (s *Server) handleGenerateProfile(ctx context.Context, input *GenerateProfileInput) (*GenerateProfileOutput, error) {
	profile, err := s.services.Profile.Generate(ctx, input.Body)
	if err != nil {
		if domainerrors.Is(err, domainerrors.ErrValidation) {
			return nil, huma.Error400BadRequest("invalid profile request", err)
		}
		s.logger.Error("profile generation failed", "error", err)
		return nil, huma.Error500InternalServerError("failed to generate profile", err)
	}

	return &GenerateProfileOutput{Body: GenerateProfileResponse{
		ProfileID:       profile.ID,
		GeneMap:         profile.GeneMap,
		Recommendations: profile.Recommendations,
	}}, nil
}

func (s *Server) handleGetProfile(ctx context.Context, input *GetProfileInput) (*ProfileOutput, error) {
	profile, err := s.services.Profile.Get(ctx, input.ID)
	if err != nil {
		if domainerrors.Is(err, domainerrors.ErrNotFound) {
			return nil, huma.Error404NotFound("profile not found", err)
		}
		s.logger.Error("profile lookup failed", "error", err, "profile_id", input.ID)
		return nil, huma.Error500InternalServerError("failed to load profile", err)
	}
	return &ProfileOutput{Body: *profile}, nil
}

func (s *Server) handleAssignArchetype(ctx context.Context, input *AssignArchetypeInput) (*ArchetypeOutput, error) {
	if input.Body.UserID == "" {
		return nil, huma.Error400BadRequest("userId is required")
	}

	card, err := s.services.Archetype.Assign(ctx, input.Body.UserID, input.Body.ExistingID)
	if err != nil {
		s.logger.Error("archetype assignment failed", "error", err, "user_id", input.Body.UserID)
		return nil, huma.Error500InternalServerError("failed to assign archetype", err)
	}
	return &ArchetypeOutput{Body: card}, nil
}

func (s *Server) handleListArchetypes(_ context.Context, _ *struct{}) (*ArchetypesOutput, error) {
	return &ArchetypesOutput{Body: s.services.Archetype.Cards()}, nil
}
