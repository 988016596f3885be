package deck

import "gorm.io/gorm"

type DeckContainer struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewDeckContainer(db *gorm.DB) *DeckContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &DeckContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
