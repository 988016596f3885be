package document

import (
	"github.com/vmfarias/readrush/internal/deck"
	"gorm.io/gorm"
)

type DocumentContainer struct {
	Handler *Handler
	Repo    Repository
}

func NewDocumentContainer(db *gorm.DB, decks deck.Service) *DocumentContainer {
	repo := NewRepository(db)
	service := NewService(repo, decks)
	handler := NewHandler(service)

	return &DocumentContainer{
		Handler: handler,
		Repo:    repo,
	}
}
