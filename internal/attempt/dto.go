package attempt

import (
	"time"

	"github.com/google/uuid"
)

type AnswerInput struct {
	QuestionID       uuid.UUID `json:"question_id"`
	SelectedOptionID uuid.UUID `json:"selected_option_id"`
}

type SubmitAttemptDTO struct {
	Answers []AnswerInput `json:"answers"`
}

type SubmitAttemptResponse struct {
	AttemptID    uuid.UUID `json:"attempt_id"`
	Score        float64   `json:"score"`
	CorrectCount int       `json:"correct_count"`
	TotalCount   int       `json:"total_count"`
	CreatedAt    time.Time `json:"created_at"`
}
