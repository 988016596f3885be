package aigen_test

import (
	"strings"
	"testing"

	"github.com/vmfarias/readrush/internal/aigen"
	"github.com/vmfarias/readrush/internal/apperr"
)

const validQuestionsJSON = `[
	{
		"questionText": "What is the powerhouse of the cell?",
		"options": [
			{"optionText": "Mitochondria", "isCorrect": true},
			{"optionText": "Nucleus", "isCorrect": false},
			{"optionText": "Ribosome", "isCorrect": false},
			{"optionText": "Golgi apparatus", "isCorrect": false}
		]
	},
	{
		"questionText": "Which molecule carries genetic information?",
		"options": [
			{"optionText": "ATP", "isCorrect": false},
			{"optionText": "DNA", "isCorrect": true},
			{"optionText": "Glucose", "isCorrect": false},
			{"optionText": "Lipid", "isCorrect": false}
		]
	}
]`

func TestParseQuestions(t *testing.T) {
	t.Run("PlainJSON", func(t *testing.T) {
		questions, err := aigen.ParseQuestions(validQuestionsJSON, 10)
		if err != nil {
			t.Fatalf("ParseQuestions failed: %v", err)
		}
		if len(questions) != 2 {
			t.Fatalf("want 2 questions, got %d", len(questions))
		}
		if questions[0].QuestionText != "What is the powerhouse of the cell?" {
			t.Errorf("wrong first question: %q", questions[0].QuestionText)
		}
	})

	t.Run("CodeFences", func(t *testing.T) {
		raw := "```json\n" + validQuestionsJSON + "\n```"

		questions, err := aigen.ParseQuestions(raw, 10)
		if err != nil {
			t.Fatalf("fenced output should parse: %v", err)
		}
		if len(questions) != 2 {
			t.Errorf("want 2 questions, got %d", len(questions))
		}
	})

	t.Run("SurroundingProse", func(t *testing.T) {
		raw := "Here are your questions:\n" + validQuestionsJSON + "\nLet me know if you need more."

		if _, err := aigen.ParseQuestions(raw, 10); err != nil {
			t.Errorf("array embedded in prose should parse: %v", err)
		}
	})

	t.Run("TrailingCommaRepaired", func(t *testing.T) {
		raw := `[
			{
				"questionText": "Pick one.",
				"options": [
					{"optionText": "A", "isCorrect": true},
					{"optionText": "B", "isCorrect": false},
					{"optionText": "C", "isCorrect": false},
					{"optionText": "D", "isCorrect": false},
				],
			},
		]`

		questions, err := aigen.ParseQuestions(raw, 10)
		if err != nil {
			t.Fatalf("trailing commas should be repaired: %v", err)
		}
		if len(questions) != 1 {
			t.Errorf("want 1 question, got %d", len(questions))
		}
	})

	t.Run("TruncatesToRequestedCount", func(t *testing.T) {
		questions, err := aigen.ParseQuestions(validQuestionsJSON, 1)
		if err != nil {
			t.Fatalf("ParseQuestions failed: %v", err)
		}
		if len(questions) != 1 {
			t.Errorf("want truncation to 1 question, got %d", len(questions))
		}
	})

	t.Run("NoArray", func(t *testing.T) {
		_, err := aigen.ParseQuestions("I could not read the documents, sorry.", 10)
		if apperr.KindOf(err) != apperr.KindUpstream {
			t.Errorf("want upstream error, got: %v", err)
		}
	})

	t.Run("EmptyArray", func(t *testing.T) {
		if _, err := aigen.ParseQuestions("[]", 10); apperr.KindOf(err) != apperr.KindUpstream {
			t.Errorf("want upstream error for empty list, got: %v", err)
		}
	})

	t.Run("WrongOptionCount", func(t *testing.T) {
		raw := `[{"questionText": "Pick one.", "options": [
			{"optionText": "A", "isCorrect": true},
			{"optionText": "B", "isCorrect": false},
			{"optionText": "C", "isCorrect": false}
		]}]`

		if _, err := aigen.ParseQuestions(raw, 10); apperr.KindOf(err) != apperr.KindUpstream {
			t.Errorf("want upstream error for 3 options, got: %v", err)
		}
	})

	t.Run("TwoCorrectOptions", func(t *testing.T) {
		raw := `[{"questionText": "Pick one.", "options": [
			{"optionText": "A", "isCorrect": true},
			{"optionText": "B", "isCorrect": true},
			{"optionText": "C", "isCorrect": false},
			{"optionText": "D", "isCorrect": false}
		]}]`

		if _, err := aigen.ParseQuestions(raw, 10); apperr.KindOf(err) != apperr.KindUpstream {
			t.Errorf("want upstream error for two correct options, got: %v", err)
		}
	})

	t.Run("NoCorrectOption", func(t *testing.T) {
		raw := `[{"questionText": "Pick one.", "options": [
			{"optionText": "A", "isCorrect": false},
			{"optionText": "B", "isCorrect": false},
			{"optionText": "C", "isCorrect": false},
			{"optionText": "D", "isCorrect": false}
		]}]`

		if _, err := aigen.ParseQuestions(raw, 10); apperr.KindOf(err) != apperr.KindUpstream {
			t.Errorf("want upstream error for zero correct options, got: %v", err)
		}
	})

	t.Run("EmptyQuestionText", func(t *testing.T) {
		raw := `[{"questionText": "  ", "options": [
			{"optionText": "A", "isCorrect": true},
			{"optionText": "B", "isCorrect": false},
			{"optionText": "C", "isCorrect": false},
			{"optionText": "D", "isCorrect": false}
		]}]`

		if _, err := aigen.ParseQuestions(raw, 10); apperr.KindOf(err) != apperr.KindUpstream {
			t.Errorf("want upstream error for blank question text, got: %v", err)
		}
	})
}

func TestParseFlashcards(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		raw := "```json\n" + `[
			{"front": "Mitochondria", "back": "Organelle that produces ATP."},
			{"front": "DNA", "back": "Molecule carrying genetic information."}
		]` + "\n```"

		cards, err := aigen.ParseFlashcards(raw, 10)
		if err != nil {
			t.Fatalf("ParseFlashcards failed: %v", err)
		}
		if len(cards) != 2 {
			t.Errorf("want 2 cards, got %d", len(cards))
		}
	})

	t.Run("EmptySideRejected", func(t *testing.T) {
		raw := `[{"front": "Mitochondria", "back": "  "}]`

		if _, err := aigen.ParseFlashcards(raw, 10); apperr.KindOf(err) != apperr.KindUpstream {
			t.Errorf("want upstream error for blank back, got: %v", err)
		}
	})

	t.Run("OversizedFrontRejected", func(t *testing.T) {
		raw := `[{"front": "` + strings.Repeat("x", 501) + `", "back": "ok"}]`

		if _, err := aigen.ParseFlashcards(raw, 10); apperr.KindOf(err) != apperr.KindUpstream {
			t.Errorf("want upstream error for oversized front, got: %v", err)
		}
	})

	t.Run("BoundsCountCharactersNotBytes", func(t *testing.T) {
		// 500 two-byte runes: over 500 bytes but within the limit.
		raw := `[{"front": "` + strings.Repeat("é", 500) + `", "back": "ok"}]`

		cards, err := aigen.ParseFlashcards(raw, 10)
		if err != nil {
			t.Fatalf("500-character non-ASCII front should pass: %v", err)
		}
		if got := len([]rune(cards[0].Front)); got != 500 {
			t.Errorf("want 500-character front, got %d", got)
		}
	})

	t.Run("NoRepairPass", func(t *testing.T) {
		raw := `[{"front": "A", "back": "B"},]`

		if _, err := aigen.ParseFlashcards(raw, 10); apperr.KindOf(err) != apperr.KindUpstream {
			t.Errorf("flashcard parsing must not repair, got: %v", err)
		}
	})

	t.Run("TruncatesToRequestedCount", func(t *testing.T) {
		raw := `[
			{"front": "A", "back": "1"},
			{"front": "B", "back": "2"},
			{"front": "C", "back": "3"}
		]`

		cards, err := aigen.ParseFlashcards(raw, 2)
		if err != nil {
			t.Fatalf("ParseFlashcards failed: %v", err)
		}
		if len(cards) != 2 {
			t.Errorf("want truncation to 2 cards, got %d", len(cards))
		}
	})
}

func TestParseSummary(t *testing.T) {
	t.Run("TrimsFencesAndWhitespace", func(t *testing.T) {
		summary, err := aigen.ParseSummary("```\n  The cell is the basic unit of life.  \n```")
		if err != nil {
			t.Fatalf("ParseSummary failed: %v", err)
		}
		if summary != "The cell is the basic unit of life." {
			t.Errorf("wrong summary: %q", summary)
		}
	})

	t.Run("EmptyRejected", func(t *testing.T) {
		if _, err := aigen.ParseSummary("```\n\n```"); apperr.KindOf(err) != apperr.KindUpstream {
			t.Errorf("want upstream error for empty summary, got: %v", err)
		}
	})
}
