package attempt

import (
	"github.com/google/uuid"
	"github.com/vmfarias/readrush/internal/apperr"
	"github.com/vmfarias/readrush/internal/quiz"
)

type ScoreResult struct {
	Score        float64
	CorrectCount int
	TotalCount   int
}

// Score grades a submission against the quiz's stored questions. It is a
// pure function: it never touches storage and never mutates its inputs.
//
// Partial submissions are rejected, each question takes exactly one
// answer, and every selected option must belong to the question it claims
// to answer; an option id that exists elsewhere in the same quiz is still
// a validation failure.
func Score(questions []quiz.Question, answers []AnswerInput) (*ScoreResult, error) {
	if len(answers) != len(questions) {
		return nil, apperr.Validationf(
			"expected %d answers, got %d", len(questions), len(answers))
	}

	byID := make(map[uuid.UUID]*quiz.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	correct := 0
	answered := make(map[uuid.UUID]bool, len(answers))
	for _, answer := range answers {
		question, ok := byID[answer.QuestionID]
		if !ok {
			return nil, apperr.Validationf(
				"question %s not found in quiz", answer.QuestionID)
		}
		if answered[answer.QuestionID] {
			return nil, apperr.Validationf(
				"duplicate answer for question %s", answer.QuestionID)
		}
		answered[answer.QuestionID] = true

		var selected *quiz.Option
		for i := range question.Options {
			if question.Options[i].ID == answer.SelectedOptionID {
				selected = &question.Options[i]
				break
			}
		}
		if selected == nil {
			return nil, apperr.Validationf(
				"option %s not found in question %s", answer.SelectedOptionID, answer.QuestionID)
		}

		if selected.IsCorrect {
			correct++
		}
	}

	total := len(questions)
	return &ScoreResult{
		// Raw percentage; rounding is for the presentation layer.
		Score:        float64(correct) / float64(total) * 100,
		CorrectCount: correct,
		TotalCount:   total,
	}, nil
}
