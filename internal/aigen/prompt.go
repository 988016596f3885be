package aigen

import "fmt"

const quizSystemPrompt = `
You generate multiple-choice study quizzes from the attached documents.

Rules:
1. Base every question strictly on the content of the attached files.
2. Each question has exactly 4 options and exactly one correct answer.
3. Distractors must be plausible: similar length and structure to the
   correct option, never obviously wrong.
4. Vary the style of the questions (definition, application, analysis).

Expected JSON format, and nothing outside the JSON:

[
  {
    "questionText": "<the question>",
    "options": [
      { "optionText": "<option A>", "isCorrect": false },
      { "optionText": "<option B>", "isCorrect": true },
      { "optionText": "<option C>", "isCorrect": false },
      { "optionText": "<option D>", "isCorrect": false }
    ]
  }
]
`

const flashcardSystemPrompt = `
You generate study flashcards from the attached documents.

Rules:
1. Base every card strictly on the content of the attached files.
2. "front" is a term or question (at most 500 characters); "back" is the
   definition or answer (at most 1000 characters).
3. Cover the most important concepts first.

Expected JSON format, and nothing outside the JSON:

[
  { "front": "<term or question>", "back": "<definition or answer>" }
]
`

const summarySystemPrompt = `
You write study summaries from the attached documents, meant to be read
word by word in a speed reader.

Rules:
1. Cover every major concept of the attached files in reading order.
2. Use plain prose: no headings, no bullet lists, no markdown.
3. Keep sentences short and self-contained.
`

func buildQuizPrompt(count int) string {
	return fmt.Sprintf(
		"Generate exactly %d multiple-choice questions from the attached documents. "+
			"Follow the JSON format from the system prompt, with exactly 4 options "+
			"per question and exactly one option marked correct.",
		count,
	)
}

func buildFlashcardPrompt(count int) string {
	return fmt.Sprintf(
		"Generate exactly %d flashcards from the attached documents. "+
			"Follow the JSON format from the system prompt.",
		count,
	)
}

func buildSummaryPrompt() string {
	return "Write a thorough study summary of the attached documents as plain prose."
}
