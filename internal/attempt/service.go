package attempt

import (
	"context"

	"github.com/google/uuid"
	"github.com/vmfarias/readrush/internal/apperr"
	"github.com/vmfarias/readrush/internal/config"
	"github.com/vmfarias/readrush/internal/deck"
	"github.com/vmfarias/readrush/internal/quiz"
	"github.com/vmfarias/readrush/internal/streak"
)

type Service interface {
	Submit(ctx context.Context, quizID, userID uuid.UUID, dto SubmitAttemptDTO) (*SubmitAttemptResponse, error)
	ListByQuiz(ctx context.Context, quizID, userID uuid.UUID) ([]QuizAttempt, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*QuizAttempt, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type service struct {
	repo    Repository
	quizzes quiz.QuizRepository
	decks   deck.Service
	streaks streak.Service
}

func NewService(repo Repository, quizzes quiz.QuizRepository, decks deck.Service, streaks streak.Service) Service {
	return &service{
		repo:    repo,
		quizzes: quizzes,
		decks:   decks,
		streaks: streaks,
	}
}

// Submit grades the answers against the stored quiz and persists the
// attempt. The streak update runs after the attempt commits; if it fails
// the attempt stands and the streak heals on the next submission.
func (s *service) Submit(ctx context.Context, quizID, userID uuid.UUID, dto SubmitAttemptDTO) (*SubmitAttemptResponse, error) {
	log := config.WithContext(ctx)

	q, err := s.quizzes.GetByID(quizID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, apperr.NotFound("quiz not found")
	}
	if _, err := s.decks.GetOwned(ctx, q.DeckID, userID); err != nil {
		return nil, err
	}

	result, err := Score(q.Questions, dto.Answers)
	if err != nil {
		return nil, err
	}

	a := &QuizAttempt{
		ID:     uuid.New(),
		QuizID: quizID,
		UserID: userID,
		Score:  result.Score,
	}
	for _, answer := range dto.Answers {
		a.Answers = append(a.Answers, UserAnswer{
			ID:               uuid.New(),
			AttemptID:        a.ID,
			QuestionID:       answer.QuestionID,
			SelectedOptionID: answer.SelectedOptionID,
		})
	}

	if err := s.repo.CreateWithAnswers(a); err != nil {
		return nil, err
	}

	if err := s.streaks.Record(ctx, userID); err != nil {
		log.WithError(err).Warnf("Streak update failed for user %s after attempt %s", userID, a.ID)
	}

	log.Infof("Scored attempt %s: %.2f%% (%d/%d)", a.ID, result.Score, result.CorrectCount, result.TotalCount)

	return &SubmitAttemptResponse{
		AttemptID:    a.ID,
		Score:        result.Score,
		CorrectCount: result.CorrectCount,
		TotalCount:   result.TotalCount,
		CreatedAt:    a.CreatedAt,
	}, nil
}

func (s *service) ListByQuiz(ctx context.Context, quizID, userID uuid.UUID) ([]QuizAttempt, error) {
	q, err := s.quizzes.GetByID(quizID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, apperr.NotFound("quiz not found")
	}
	if _, err := s.decks.GetOwned(ctx, q.DeckID, userID); err != nil {
		return nil, err
	}
	return s.repo.FindAllByQuizAndUser(quizID, userID)
}

// Attempts are owned directly, not through the deck chain.
func (s *service) getOwned(id, userID uuid.UUID) (*QuizAttempt, error) {
	a, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperr.NotFound("attempt not found")
	}
	if a.UserID != userID {
		return nil, apperr.Forbidden("you do not own this attempt")
	}
	return a, nil
}

func (s *service) Get(ctx context.Context, id, userID uuid.UUID) (*QuizAttempt, error) {
	return s.getOwned(id, userID)
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.getOwned(id, userID); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
