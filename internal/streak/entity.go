package streak

import (
	"time"

	"github.com/google/uuid"
	"github.com/vmfarias/readrush/internal/user"
)

// Streak tracks consecutive study days. LongestStreak is the historical
// max of every CurrentStreak value ever observed for the user.
type Streak struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	User             user.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CurrentStreak    int       `gorm:"not null" json:"current_streak"`
	LongestStreak    int       `gorm:"not null" json:"longest_streak"`
	LastActivityDate time.Time `gorm:"not null" json:"last_activity_date"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type LeaderboardEntry struct {
	Rank          int       `json:"rank"`
	UserID        uuid.UUID `json:"user_id"`
	UserName      string    `json:"user_name"`
	CurrentStreak int       `json:"current_streak"`
	LongestStreak int       `json:"longest_streak"`
}
