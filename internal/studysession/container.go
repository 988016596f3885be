package studysession

import (
	"github.com/vmfarias/readrush/internal/deck"
	"gorm.io/gorm"
)

type StudySessionContainer struct {
	Handler *Handler
	Repo    Repository
}

func NewStudySessionContainer(db *gorm.DB, decks deck.Service) *StudySessionContainer {
	repo := NewRepository(db)
	service := NewService(repo, decks)
	handler := NewHandler(service)

	return &StudySessionContainer{
		Handler: handler,
		Repo:    repo,
	}
}
