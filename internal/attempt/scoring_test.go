package attempt_test

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/vmfarias/readrush/internal/apperr"
	"github.com/vmfarias/readrush/internal/attempt"
	"github.com/vmfarias/readrush/internal/quiz"
)

// buildQuestions returns n questions of four options each; option 0 is
// always the correct one.
func buildQuestions(n int) []quiz.Question {
	questions := make([]quiz.Question, 0, n)
	for i := 0; i < n; i++ {
		q := quiz.Question{ID: uuid.New(), Position: i, Text: "q"}
		for j := 0; j < quiz.OptionsPerQuestion; j++ {
			q.Options = append(q.Options, quiz.Option{
				ID:         uuid.New(),
				QuestionID: q.ID,
				Text:       "o",
				IsCorrect:  j == 0,
			})
		}
		questions = append(questions, q)
	}
	return questions
}

func answerAll(questions []quiz.Question, correct int) []attempt.AnswerInput {
	answers := make([]attempt.AnswerInput, 0, len(questions))
	for i, q := range questions {
		opt := q.Options[0]
		if i >= correct {
			opt = q.Options[1]
		}
		answers = append(answers, attempt.AnswerInput{
			QuestionID:       q.ID,
			SelectedOptionID: opt.ID,
		})
	}
	return answers
}

func TestScore(t *testing.T) {
	t.Run("AllCorrect", func(t *testing.T) {
		questions := buildQuestions(4)

		result, err := attempt.Score(questions, answerAll(questions, 4))
		if err != nil {
			t.Fatalf("Score failed: %v", err)
		}

		if result.Score != 100 {
			t.Errorf("want score 100, got %v", result.Score)
		}
		if result.CorrectCount != 4 || result.TotalCount != 4 {
			t.Errorf("want 4/4, got %d/%d", result.CorrectCount, result.TotalCount)
		}
	})

	t.Run("AllWrong", func(t *testing.T) {
		questions := buildQuestions(4)

		result, err := attempt.Score(questions, answerAll(questions, 0))
		if err != nil {
			t.Fatalf("Score failed: %v", err)
		}
		if result.Score != 0 || result.CorrectCount != 0 {
			t.Errorf("want 0%%, got %v (%d correct)", result.Score, result.CorrectCount)
		}
	})

	t.Run("ScoreIsNotRounded", func(t *testing.T) {
		questions := buildQuestions(3)

		result, err := attempt.Score(questions, answerAll(questions, 1))
		if err != nil {
			t.Fatalf("Score failed: %v", err)
		}

		want := 100.0 / 3.0
		if math.Abs(result.Score-want) > 1e-9 {
			t.Errorf("want raw %v, got %v", want, result.Score)
		}
	})

	t.Run("PartialSubmissionRejected", func(t *testing.T) {
		questions := buildQuestions(3)
		answers := answerAll(questions, 3)[:2]

		_, err := attempt.Score(questions, answers)
		if apperr.KindOf(err) != apperr.KindValidation {
			t.Errorf("want validation error for 2 of 3 answers, got: %v", err)
		}
	})

	t.Run("DuplicateQuestionRejected", func(t *testing.T) {
		questions := buildQuestions(2)
		// Same count as the quiz, but the known answer repeated and the
		// other question never answered.
		answers := []attempt.AnswerInput{
			{QuestionID: questions[0].ID, SelectedOptionID: questions[0].Options[0].ID},
			{QuestionID: questions[0].ID, SelectedOptionID: questions[0].Options[0].ID},
		}

		_, err := attempt.Score(questions, answers)
		if apperr.KindOf(err) != apperr.KindValidation {
			t.Errorf("want validation error for duplicate answer, got: %v", err)
		}
	})

	t.Run("UnknownQuestionRejected", func(t *testing.T) {
		questions := buildQuestions(2)
		answers := answerAll(questions, 2)
		answers[1].QuestionID = uuid.New()

		_, err := attempt.Score(questions, answers)
		if apperr.KindOf(err) != apperr.KindValidation {
			t.Errorf("want validation error for foreign question, got: %v", err)
		}
	})

	t.Run("OptionFromAnotherQuestionRejected", func(t *testing.T) {
		questions := buildQuestions(2)
		answers := answerAll(questions, 2)
		// A real option id, but belonging to the other question.
		answers[0].SelectedOptionID = questions[1].Options[0].ID

		_, err := attempt.Score(questions, answers)
		if apperr.KindOf(err) != apperr.KindValidation {
			t.Errorf("want validation error for cross-question option, got: %v", err)
		}
	})
}
