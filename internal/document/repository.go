package document

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(d *Document) error
	FindByID(id uuid.UUID) (*Document, error)
	FindAllByDeckID(deckID uuid.UUID) ([]Document, error)
	Update(d *Document) error
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(d *Document) error {
	return r.db.Create(d).Error
}

func (r *repository) FindByID(id uuid.UUID) (*Document, error) {
	var doc Document
	if err := r.db.First(&doc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

func (r *repository) FindAllByDeckID(deckID uuid.UUID) ([]Document, error) {
	var docs []Document
	if err := r.db.
		Where("deck_id = ?", deckID).
		Order("created_at ASC").
		Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *repository) Update(d *Document) error {
	return r.db.Save(d).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Document{}, "id = ?", id).Error
}
