package attempt

import (
	"time"

	"github.com/google/uuid"
	"github.com/vmfarias/readrush/internal/quiz"
	"github.com/vmfarias/readrush/internal/user"
)

// QuizAttempt is immutable once created; re-taking a quiz creates a new
// row with an independently computed score.
type QuizAttempt struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	QuizID    uuid.UUID `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Quiz      quiz.Quiz `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"-"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User      user.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Score     float64   `gorm:"not null" json:"score"`
	CreatedAt time.Time `json:"created_at"`

	Answers []UserAnswer `gorm:"foreignKey:AttemptID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
}

type UserAnswer struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AttemptID        uuid.UUID `gorm:"type:uuid;not null;index" json:"attempt_id"`
	QuestionID       uuid.UUID `gorm:"type:uuid;not null" json:"question_id"`
	SelectedOptionID uuid.UUID `gorm:"type:uuid;not null" json:"selected_option_id"`
}
