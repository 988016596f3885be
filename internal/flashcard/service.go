package flashcard

import (
	"context"

	"github.com/google/uuid"
	"github.com/vmfarias/readrush/internal/apperr"
	"github.com/vmfarias/readrush/internal/deck"
)

type Service interface {
	ListByDeck(ctx context.Context, deckID, userID uuid.UUID) ([]Flashcard, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type service struct {
	repo  Repository
	decks deck.Service
}

func NewService(repo Repository, decks deck.Service) Service {
	return &service{repo: repo, decks: decks}
}

func (s *service) ListByDeck(ctx context.Context, deckID, userID uuid.UUID) ([]Flashcard, error) {
	if _, err := s.decks.GetOwned(ctx, deckID, userID); err != nil {
		return nil, err
	}
	return s.repo.FindAllByDeckID(deckID)
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	card, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if card == nil {
		return apperr.NotFound("flashcard not found")
	}
	if _, err := s.decks.GetOwned(ctx, card.DeckID, userID); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
