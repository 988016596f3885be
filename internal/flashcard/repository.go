package flashcard

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	// CreateBatch inserts a generated card set atomically.
	CreateBatch(cards []Flashcard) error
	FindByID(id uuid.UUID) (*Flashcard, error)
	FindAllByDeckID(deckID uuid.UUID) ([]Flashcard, error)
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateBatch(cards []Flashcard) error {
	if len(cards) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&cards).Error
	})
}

func (r *repository) FindByID(id uuid.UUID) (*Flashcard, error) {
	var card Flashcard
	if err := r.db.First(&card, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &card, nil
}

func (r *repository) FindAllByDeckID(deckID uuid.UUID) ([]Flashcard, error) {
	var cards []Flashcard
	if err := r.db.
		Where("deck_id = ?", deckID).
		Order("created_at ASC").
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Flashcard{}, "id = ?", id).Error
}
