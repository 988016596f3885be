package quiz

import (
	"context"

	"github.com/google/uuid"
	"github.com/vmfarias/readrush/internal/apperr"
	"github.com/vmfarias/readrush/internal/config"
	"github.com/vmfarias/readrush/internal/deck"
)

type QuizService interface {
	ListByDeck(ctx context.Context, deckID, userID uuid.UUID) ([]Quiz, error)
	GetWithQuestions(ctx context.Context, quizID, userID uuid.UUID) (*Quiz, error)
	Delete(ctx context.Context, quizID, userID uuid.UUID) error
}

type quizService struct {
	repo  QuizRepository
	decks deck.Service
}

func NewService(repo QuizRepository, decks deck.Service) QuizService {
	return &quizService{repo: repo, decks: decks}
}

func (s *quizService) ListByDeck(ctx context.Context, deckID, userID uuid.UUID) ([]Quiz, error) {
	if _, err := s.decks.GetOwned(ctx, deckID, userID); err != nil {
		return nil, err
	}
	return s.repo.FindAllByDeckID(deckID)
}

func (s *quizService) GetWithQuestions(ctx context.Context, quizID, userID uuid.UUID) (*Quiz, error) {
	q, err := s.repo.GetByID(quizID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, apperr.NotFound("quiz not found")
	}
	if _, err := s.decks.GetOwned(ctx, q.DeckID, userID); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *quizService) Delete(ctx context.Context, quizID, userID uuid.UUID) error {
	if _, err := s.GetWithQuestions(ctx, quizID, userID); err != nil {
		return err
	}

	if err := s.repo.Delete(quizID); err != nil {
		return err
	}

	config.WithContext(ctx).Infof("Deleted quiz %s", quizID)
	return nil
}
