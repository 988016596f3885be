package document

import (
	"time"

	"github.com/google/uuid"
	"github.com/vmfarias/readrush/internal/deck"
)

// Document is an immutable reference to a file the upload service already
// stored; only the display name can change after creation.
type Document struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DeckID    uuid.UUID `gorm:"type:uuid;not null;index" json:"deck_id"`
	Deck      deck.Deck `gorm:"foreignKey:DeckID;constraint:OnDelete:CASCADE" json:"-"`
	Name      string    `gorm:"not null" json:"name"`
	FileURL   string    `gorm:"not null" json:"file_url"`
	FileKey   string    `gorm:"not null" json:"file_key"`
	FileType  string    `json:"file_type"`
	FileSize  int64     `gorm:"not null" json:"file_size"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
