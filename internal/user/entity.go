package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	GoogleID                    string    `gorm:"uniqueIndex;not null" json:"-"`
	Email                       string    `gorm:"uniqueIndex;not null" json:"email"`
	Name                        string    `gorm:"not null" json:"name"`
	AvatarURL                   string    `json:"avatar_url,omitempty"`
	EncryptedGoogleRefreshToken string    `json:"-"`
	CreatedAt                   time.Time `json:"created_at"`
	UpdatedAt                   time.Time `json:"updated_at"`
}
