package deck

import (
	"time"

	"github.com/google/uuid"
	"github.com/vmfarias/readrush/internal/user"
)

// Deck groups a user's documents and everything generated from them.
// Child rows (documents, quizzes, flashcards, study session) hang off
// DeckID with cascade delete declared on their side.
type Deck struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User      user.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
