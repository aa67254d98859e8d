package service

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/heritageapp/heritage-server/internal/domain"
	domainerrors "github.com/heritageapp/heritage-server/internal/errors"
	"github.com/heritageapp/heritage-server/internal/store"
	"github.com/heritageapp/heritage-server/internal/vocab"
)

// ArchetypeService assigns archetype cards to users. A user's first
// call draws a card at random and persists it; stability afterwards
// rests on the conditional create, so concurrent first calls for one
// user still converge on a single persisted card.
type ArchetypeService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewArchetypeService creates a new archetype service.
func NewArchetypeService(store *store.Store, logger *slog.Logger) *ArchetypeService {
	return &ArchetypeService{store: store, logger: logger}
}

// Cards returns the full archetype deck.
func (s *ArchetypeService) Cards() []domain.ArchetypeCard {
	return vocab.ArchetypeCards
}

// Assign resolves the archetype for a user. When the caller supplies a
// known existing card id, that card is returned unchanged without
// touching the store. Otherwise a card is drawn and persisted with a
// first-writer-wins create; losing the race is not an error — the
// winner's card is re-read and returned.
func (s *ArchetypeService) Assign(ctx context.Context, userID, existingID string) (domain.ArchetypeCard, error) {
	if existingID != "" {
		if card, ok := vocab.ArchetypeByID(existingID); ok {
			return card, nil
		}
		s.logger.Warn("unknown archetype id supplied, drawing fresh", "user_id", userID, "archetype_id", existingID)
	}

	drawn := vocab.ArchetypeCards[rand.IntN(len(vocab.ArchetypeCards))]
	assignment := &domain.GeneAssignment{
		UserID:      userID,
		ArchetypeID: drawn.ID,
		AssignedAt:  time.Now().UTC(),
	}

	err := s.store.Assignments.Create(ctx, userID, assignment)
	if err == nil {
		s.logger.Info("archetype assigned", "user_id", userID, "archetype_id", drawn.ID)
		return drawn, nil
	}
	if !domainerrors.Is(err, domainerrors.ErrAlreadyExists) {
		return domain.ArchetypeCard{}, err
	}

	// Lost the race: another request persisted first. Return what won.
	persisted, err := s.store.Assignments.Get(ctx, userID)
	if err != nil {
		return domain.ArchetypeCard{}, err
	}
	card, ok := vocab.ArchetypeByID(persisted.ArchetypeID)
	if !ok {
		return domain.ArchetypeCard{}, domainerrors.Internalf("persisted archetype %s is not in the deck", persisted.ArchetypeID)
	}
	return card, nil
}

// Assignment returns the persisted assignment for a user.
func (s *ArchetypeService) Assignment(ctx context.Context, userID string) (*domain.GeneAssignment, error) {
	return s.store.Assignments.Get(ctx, userID)
}
