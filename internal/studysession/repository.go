package studysession

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(s *StudySession) error
	FindByDeckID(deckID uuid.UUID) (*StudySession, error)
	UpdateSummary(deckID uuid.UUID, summary string) error
	UpdateWPM(deckID uuid.UUID, wpm int) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(s *StudySession) error {
	return r.db.Create(s).Error
}

func (r *repository) FindByDeckID(deckID uuid.UUID) (*StudySession, error) {
	var session StudySession
	if err := r.db.First(&session, "deck_id = ?", deckID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

// UpdateSummary writes only the summary column so a concurrent WPM
// change is never clobbered by a regeneration.
func (r *repository) UpdateSummary(deckID uuid.UUID, summary string) error {
	return r.db.Model(&StudySession{}).
		Where("deck_id = ?", deckID).
		Update("summary", summary).Error
}

func (r *repository) UpdateWPM(deckID uuid.UUID, wpm int) error {
	return r.db.Model(&StudySession{}).
		Where("deck_id = ?", deckID).
		Update("wpm", wpm).Error
}
