package deck

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/vmfarias/readrush/internal/apperr"
	"github.com/vmfarias/readrush/internal/config"
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, dto CreateDeckDTO) (*Deck, error)
	List(ctx context.Context, userID uuid.UUID) ([]Deck, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*Deck, error)
	Rename(ctx context.Context, id, userID uuid.UUID, dto RenameDeckDTO) (*Deck, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// GetOwned is the ownership gate used by every deck-scoped service.
	GetOwned(ctx context.Context, id, userID uuid.UUID) (*Deck, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, dto CreateDeckDTO) (*Deck, error) {
	name := strings.TrimSpace(dto.Name)
	if name == "" || len(name) > 100 {
		return nil, apperr.Validation("deck name must be between 1 and 100 characters")
	}

	d := &Deck{
		ID:     uuid.New(),
		UserID: userID,
		Name:   name,
	}
	if err := s.repo.Create(d); err != nil {
		return nil, err
	}

	config.WithContext(ctx).Infof("Created deck %s", d.ID)
	return d, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]Deck, error) {
	return s.repo.FindAllByUserID(userID)
}

func (s *service) Get(ctx context.Context, id, userID uuid.UUID) (*Deck, error) {
	return s.GetOwned(ctx, id, userID)
}

func (s *service) GetOwned(ctx context.Context, id, userID uuid.UUID) (*Deck, error) {
	d, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.NotFound("deck not found")
	}
	if d.UserID != userID {
		return nil, apperr.Forbidden("you do not own this deck")
	}
	return d, nil
}

func (s *service) Rename(ctx context.Context, id, userID uuid.UUID, dto RenameDeckDTO) (*Deck, error) {
	name := strings.TrimSpace(dto.Name)
	if name == "" || len(name) > 100 {
		return nil, apperr.Validation("deck name must be between 1 and 100 characters")
	}

	d, err := s.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	d.Name = name
	if err := s.repo.Update(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.GetOwned(ctx, id, userID); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	config.WithContext(ctx).Infof("Deleted deck %s", id)
	return nil
}
