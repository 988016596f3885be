package attempt

import (
	"github.com/vmfarias/readrush/internal/deck"
	"github.com/vmfarias/readrush/internal/quiz"
	"github.com/vmfarias/readrush/internal/streak"
	"gorm.io/gorm"
)

type AttemptContainer struct {
	Handler *Handler
}

func NewAttemptContainer(db *gorm.DB, quizzes quiz.QuizRepository, decks deck.Service, streaks streak.Service) *AttemptContainer {
	repo := NewRepository(db)
	service := NewService(repo, quizzes, decks, streaks)
	handler := NewHandler(service)

	return &AttemptContainer{
		Handler: handler,
	}
}
