package quiz

import (
	"github.com/vmfarias/readrush/internal/deck"
	"gorm.io/gorm"
)

type QuizContainer struct {
	Handler *Handler
	Repo    QuizRepository
}

func NewQuizContainer(db *gorm.DB, decks deck.Service) *QuizContainer {
	repo := NewRepository(db)
	service := NewService(repo, decks)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
		Repo:    repo,
	}
}
