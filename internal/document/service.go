package document

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/vmfarias/readrush/internal/apperr"
	"github.com/vmfarias/readrush/internal/config"
	"github.com/vmfarias/readrush/internal/deck"
)

type Service interface {
	Register(ctx context.Context, deckID, userID uuid.UUID, dto RegisterDocumentDTO) (*Document, error)
	ListByDeck(ctx context.Context, deckID, userID uuid.UUID) ([]Document, error)
	Rename(ctx context.Context, id, userID uuid.UUID, dto RenameDocumentDTO) (*Document, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type service struct {
	repo  Repository
	decks deck.Service
}

func NewService(repo Repository, decks deck.Service) Service {
	return &service{repo: repo, decks: decks}
}

// Register stores the file reference the upload service produced. The
// bytes already live in object storage; this row is our only record.
func (s *service) Register(ctx context.Context, deckID, userID uuid.UUID, dto RegisterDocumentDTO) (*Document, error) {
	if _, err := s.decks.GetOwned(ctx, deckID, userID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(dto.Name)
	if name == "" || len(name) > 255 {
		return nil, apperr.Validation("document name must be between 1 and 255 characters")
	}
	if dto.FileURL == "" || dto.FileKey == "" {
		return nil, apperr.Validation("file_url and file_key are required")
	}
	if dto.FileSize <= 0 {
		return nil, apperr.Validation("file_size must be positive")
	}

	doc := &Document{
		ID:       uuid.New(),
		DeckID:   deckID,
		Name:     name,
		FileURL:  dto.FileURL,
		FileKey:  dto.FileKey,
		FileType: dto.FileType,
		FileSize: dto.FileSize,
	}
	if err := s.repo.Create(doc); err != nil {
		return nil, err
	}

	config.WithContext(ctx).Infof("Registered document %s on deck %s", doc.ID, deckID)
	return doc, nil
}

func (s *service) ListByDeck(ctx context.Context, deckID, userID uuid.UUID) ([]Document, error) {
	if _, err := s.decks.GetOwned(ctx, deckID, userID); err != nil {
		return nil, err
	}
	return s.repo.FindAllByDeckID(deckID)
}

func (s *service) getOwned(ctx context.Context, id, userID uuid.UUID) (*Document, error) {
	doc, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apperr.NotFound("document not found")
	}
	if _, err := s.decks.GetOwned(ctx, doc.DeckID, userID); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *service) Rename(ctx context.Context, id, userID uuid.UUID, dto RenameDocumentDTO) (*Document, error) {
	name := strings.TrimSpace(dto.Name)
	if name == "" || len(name) > 255 {
		return nil, apperr.Validation("document name must be between 1 and 255 characters")
	}

	doc, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	doc.Name = name
	if err := s.repo.Update(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.getOwned(ctx, id, userID); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
