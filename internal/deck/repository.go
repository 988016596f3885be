package deck

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(d *Deck) error
	FindByID(id uuid.UUID) (*Deck, error)
	FindAllByUserID(userID uuid.UUID) ([]Deck, error)
	Update(d *Deck) error
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(d *Deck) error {
	return r.db.Create(d).Error
}

func (r *repository) FindByID(id uuid.UUID) (*Deck, error) {
	var d Deck
	if err := r.db.First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *repository) FindAllByUserID(userID uuid.UUID) ([]Deck, error) {
	var decks []Deck
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&decks).Error; err != nil {
		return nil, err
	}
	return decks, nil
}

func (r *repository) Update(d *Deck) error {
	return r.db.Save(d).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Deck{}, "id = ?", id).Error
}
