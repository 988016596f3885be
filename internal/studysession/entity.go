package studysession

import (
	"time"

	"github.com/google/uuid"
	"github.com/vmfarias/readrush/internal/deck"
)

const (
	DefaultWPM = 300
	MinWPM     = 100
	MaxWPM     = 1000
)

// StudySession is the single reader session per deck: the generated
// summary plus the RSVP words-per-minute setting. Regeneration replaces
// the summary and leaves the WPM alone.
type StudySession struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DeckID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"deck_id"`
	Deck      deck.Deck `gorm:"foreignKey:DeckID;constraint:OnDelete:CASCADE" json:"-"`
	Summary   string    `gorm:"type:text;not null" json:"summary"`
	WPM       int       `gorm:"not null;default:300" json:"wpm"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
