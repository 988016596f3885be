package studysession

import (
	"context"

	"github.com/google/uuid"
	"github.com/vmfarias/readrush/internal/apperr"
	"github.com/vmfarias/readrush/internal/deck"
)

type Service interface {
	GetByDeck(ctx context.Context, deckID, userID uuid.UUID) (*StudySession, error)
	UpdateWPM(ctx context.Context, deckID, userID uuid.UUID, wpm int) (*StudySession, error)
}

type service struct {
	repo  Repository
	decks deck.Service
}

func NewService(repo Repository, decks deck.Service) Service {
	return &service{repo: repo, decks: decks}
}

func (s *service) GetByDeck(ctx context.Context, deckID, userID uuid.UUID) (*StudySession, error) {
	if _, err := s.decks.GetOwned(ctx, deckID, userID); err != nil {
		return nil, err
	}

	session, err := s.repo.FindByDeckID(deckID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperr.NotFound("study session not found")
	}
	return session, nil
}

func (s *service) UpdateWPM(ctx context.Context, deckID, userID uuid.UUID, wpm int) (*StudySession, error) {
	if wpm < MinWPM || wpm > MaxWPM {
		return nil, apperr.Validationf("wpm must be between %d and %d", MinWPM, MaxWPM)
	}

	session, err := s.GetByDeck(ctx, deckID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateWPM(deckID, wpm); err != nil {
		return nil, err
	}
	session.WPM = wpm
	return session, nil
}
