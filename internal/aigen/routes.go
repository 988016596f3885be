package aigen

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/decks/{deckID}/quiz", h.GenerateQuiz)
	r.Post("/decks/{deckID}/flashcards", h.GenerateFlashcards)
	r.Post("/decks/{deckID}/study-session", h.GenerateStudySession)
	r.Post("/decks/{deckID}/study-session/regenerate", h.RegenerateStudySession)

	return r
}
