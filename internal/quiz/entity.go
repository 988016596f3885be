package quiz

import (
	"time"

	"github.com/google/uuid"
	"github.com/vmfarias/readrush/internal/deck"
)

// OptionsPerQuestion is fixed: every persisted question carries exactly
// four options, exactly one of them correct.
const OptionsPerQuestion = 4

type Quiz struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DeckID    uuid.UUID `gorm:"type:uuid;not null;index" json:"deck_id"`
	Deck      deck.Deck `gorm:"foreignKey:DeckID;constraint:OnDelete:CASCADE" json:"-"`
	Title     string    `gorm:"not null" json:"title"`
	CreatedAt time.Time `json:"created_at"`

	Questions []Question `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

type Question struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	QuizID   uuid.UUID `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Text     string    `gorm:"type:text;not null" json:"text"`
	Position int       `gorm:"not null" json:"position"`

	Options []Option `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
}

type Option struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	IsCorrect  bool      `gorm:"not null" json:"is_correct"`
}
