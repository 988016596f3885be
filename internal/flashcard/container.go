package flashcard

import (
	"github.com/vmfarias/readrush/internal/deck"
	"gorm.io/gorm"
)

type FlashcardContainer struct {
	Handler *Handler
	Repo    Repository
}

func NewFlashcardContainer(db *gorm.DB, decks deck.Service) *FlashcardContainer {
	repo := NewRepository(db)
	service := NewService(repo, decks)
	handler := NewHandler(service)

	return &FlashcardContainer{
		Handler: handler,
		Repo:    repo,
	}
}
