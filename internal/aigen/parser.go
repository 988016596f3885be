package aigen

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/vmfarias/readrush/internal/apperr"
)

const rawPreviewLen = 300

type GeneratedOption struct {
	OptionText string `json:"optionText"`
	IsCorrect  bool   `json:"isCorrect"`
}

type GeneratedQuestion struct {
	QuestionText string            `json:"questionText"`
	Options      []GeneratedOption `json:"options"`
}

type GeneratedCard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

var trailingCommaRe = regexp.MustCompile(`,\s*([\]}])`)

func stripCodeFences(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return strings.Trim(clean, "`")
}

func extractJSONArray(s string) (string, bool) {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

// repairJSON applies the bounded cleanup rules for near-valid model
// output: trailing commas, over-escaped quotes, embedded newlines. It
// runs only after a first parse already failed, and only once.
func repairJSON(s string) string {
	s = trailingCommaRe.ReplaceAllString(s, "$1")
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

func preview(raw string) string {
	if len(raw) > rawPreviewLen {
		return raw[:rawPreviewLen] + "..."
	}
	return raw
}

// ParseQuestions turns raw model text into validated questions. Output
// that fails validation is rejected outright; nothing is guessed past.
func ParseQuestions(raw string, count int) ([]GeneratedQuestion, error) {
	clean := stripCodeFences(raw)

	arr, ok := extractJSONArray(clean)
	if !ok {
		return nil, apperr.Upstream("quiz generation produced no JSON array",
			fmt.Errorf("raw output: %s", preview(raw)))
	}

	var questions []GeneratedQuestion
	if err := json.Unmarshal([]byte(arr), &questions); err != nil {
		repaired := repairJSON(arr)
		if err := json.Unmarshal([]byte(repaired), &questions); err != nil {
			return nil, apperr.Upstream("quiz generation produced invalid JSON",
				fmt.Errorf("%w; raw output: %s", err, preview(raw)))
		}
	}

	if len(questions) == 0 {
		return nil, apperr.Upstream("quiz generation produced an empty question list", nil)
	}

	for i, q := range questions {
		if strings.TrimSpace(q.QuestionText) == "" {
			return nil, apperr.Upstream(
				fmt.Sprintf("question %d has empty text", i+1), nil)
		}
		if len(q.Options) != 4 {
			return nil, apperr.Upstream(
				fmt.Sprintf("question %d has %d options, want exactly 4", i+1, len(q.Options)), nil)
		}
		correct := 0
		for _, o := range q.Options {
			if strings.TrimSpace(o.OptionText) == "" {
				return nil, apperr.Upstream(
					fmt.Sprintf("question %d has an empty option", i+1), nil)
			}
			if o.IsCorrect {
				correct++
			}
		}
		if correct != 1 {
			return nil, apperr.Upstream(
				fmt.Sprintf("question %d has %d correct options, want exactly 1", i+1, correct), nil)
		}
	}

	if len(questions) > count {
		questions = questions[:count]
	}
	return questions, nil
}

// ParseFlashcards validates generated cards. No repair pass: flashcard
// JSON is flat enough that a failed parse means a genuinely bad response.
func ParseFlashcards(raw string, count int) ([]GeneratedCard, error) {
	clean := stripCodeFences(raw)

	var cards []GeneratedCard
	if err := json.Unmarshal([]byte(clean), &cards); err != nil {
		return nil, apperr.Upstream("flashcard generation produced invalid JSON",
			fmt.Errorf("%w; raw output: %s", err, preview(raw)))
	}

	if len(cards) == 0 {
		return nil, apperr.Upstream("flashcard generation produced an empty card list", nil)
	}

	for i, c := range cards {
		if strings.TrimSpace(c.Front) == "" || strings.TrimSpace(c.Back) == "" {
			return nil, apperr.Upstream(
				fmt.Sprintf("card %d has an empty side", i+1), nil)
		}
		// Bounds are character counts, not bytes.
		if utf8.RuneCountInString(c.Front) > 500 {
			return nil, apperr.Upstream(
				fmt.Sprintf("card %d front exceeds 500 characters", i+1), nil)
		}
		if utf8.RuneCountInString(c.Back) > 1000 {
			return nil, apperr.Upstream(
				fmt.Sprintf("card %d back exceeds 1000 characters", i+1), nil)
		}
	}

	if len(cards) > count {
		cards = cards[:count]
	}
	return cards, nil
}

// ParseSummary has no structure to check: the text is the summary.
func ParseSummary(raw string) (string, error) {
	summary := strings.TrimSpace(stripCodeFences(raw))
	if summary == "" {
		return "", apperr.Upstream("summary generation produced empty output", nil)
	}
	return summary, nil
}
