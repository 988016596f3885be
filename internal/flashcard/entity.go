package flashcard

import (
	"time"

	"github.com/google/uuid"
	"github.com/vmfarias/readrush/internal/deck"
)

const (
	MaxFrontLen = 500
	MaxBackLen  = 1000
)

type Flashcard struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DeckID    uuid.UUID `gorm:"type:uuid;not null;index" json:"deck_id"`
	Deck      deck.Deck `gorm:"foreignKey:DeckID;constraint:OnDelete:CASCADE" json:"-"`
	Front     string    `gorm:"size:500;not null" json:"front"`
	Back      string    `gorm:"size:1000;not null" json:"back"`
	CreatedAt time.Time `json:"created_at"`
}
