package aigen

import (
	"context"
	"log"

	"github.com/vmfarias/readrush/internal/deck"
	"github.com/vmfarias/readrush/internal/document"
	"github.com/vmfarias/readrush/internal/flashcard"
	"github.com/vmfarias/readrush/internal/quiz"
	"github.com/vmfarias/readrush/internal/studysession"
)

type AIGenContainer struct {
	Handler *Handler
}

func NewAIGenContainer(
	decks deck.Service,
	documents document.Repository,
	quizzes quiz.QuizRepository,
	flashcards flashcard.Repository,
	sessions studysession.Repository,
) *AIGenContainer {
	client, err := NewGeminiClient(context.Background())
	if err != nil {
		log.Fatalf("failed to initialize Gemini client: %v", err)
	}

	service := NewService(client, decks, documents, quizzes, flashcards, sessions)
	handler := NewHandler(service)

	return &AIGenContainer{
		Handler: handler,
	}
}
