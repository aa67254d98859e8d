package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/heritageapp/heritage-server/internal/domain"
	"github.com/heritageapp/heritage-server/internal/gene"
	"github.com/heritageapp/heritage-server/internal/id"
	"github.com/heritageapp/heritage-server/internal/store"
	"github.com/heritageapp/heritage-server/internal/validation"
)

// ProfileService generates and retrieves gene profiles. Scoring itself
// is pure; the service adds validation, id minting, and persistence.
type ProfileService struct {
	store     *store.Store
	logger    *slog.Logger
	validator *validation.Validator
}

// NewProfileService creates a new profile service.
func NewProfileService(store *store.Store, logger *slog.Logger) *ProfileService {
	return &ProfileService{
		store:     store,
		logger:    logger,
		validator: validation.New(),
	}
}

// GenerateProfileRequest contains the answers a profile is scored from.
type GenerateProfileRequest struct {
	Hometown         string   `json:"hometown" validate:"required,max=100"`
	Age              int      `json:"age" validate:"required,gte=1,lte=150"`
	Interests        []string `json:"interests,omitempty"`
	FamilyTraditions []string `json:"familyTraditions,omitempty"`
}

// Generate validates the request, scores it, and persists the result
// under a fresh profile id.
func (s *ProfileService) Generate(ctx context.Context, req GenerateProfileRequest) (*domain.GeneProfile, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	geneMap, recommendations := gene.Compute(gene.Input{
		Hometown:         req.Hometown,
		Age:              req.Age,
		Interests:        req.Interests,
		FamilyTraditions: req.FamilyTraditions,
	})

	profileID, err := id.Generate("gene")
	if err != nil {
		return nil, err
	}

	profile := &domain.GeneProfile{
		ID:               profileID,
		Hometown:         req.Hometown,
		Age:              req.Age,
		Interests:        req.Interests,
		FamilyTraditions: req.FamilyTraditions,
		GeneMap:          geneMap,
		Recommendations:  recommendations,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.store.Profiles.Create(ctx, profileID, profile); err != nil {
		return nil, err
	}

	s.logger.Info("gene profile generated",
		"profile_id", profileID,
		"dominant_trait", geneMap.DominantTrait,
	)
	return profile, nil
}

// Get retrieves a persisted profile by id.
func (s *ProfileService) Get(ctx context.Context, profileID string) (*domain.GeneProfile, error) {
	return s.store.Profiles.Get(ctx, profileID)
}
