package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/vmfarias/readrush/internal/aigen"
	"github.com/vmfarias/readrush/internal/attempt"
	"github.com/vmfarias/readrush/internal/auth"
	"github.com/vmfarias/readrush/internal/deck"
	"github.com/vmfarias/readrush/internal/document"
	"github.com/vmfarias/readrush/internal/flashcard"
	"github.com/vmfarias/readrush/internal/middlewares"
	"github.com/vmfarias/readrush/internal/quiz"
	"github.com/vmfarias/readrush/internal/streak"
	"github.com/vmfarias/readrush/internal/studysession"
	"github.com/vmfarias/readrush/internal/user"
)

type RouterConfig struct {
	UserHandler         *user.Handler
	DeckHandler         *deck.Handler
	DocumentHandler     *document.Handler
	StudySessionHandler *studysession.Handler
	QuizHandler         *quiz.Handler
	FlashcardHandler    *flashcard.Handler
	AIGenHandler        *aigen.Handler
	AttemptHandler      *attempt.Handler
	StreakHandler       *streak.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.GoogleLogin)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/decks", deck.Routes(cfg.DeckHandler))
		r.Mount("/documents", document.Routes(cfg.DocumentHandler))
		r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))
		r.Mount("/flashcards", flashcard.Routes(cfg.FlashcardHandler))
		r.Mount("/attempts", attempt.Routes(cfg.AttemptHandler))
		r.Mount("/ai", aigen.Routes(cfg.AIGenHandler))

		r.Post("/decks/{deckID}/documents", cfg.DocumentHandler.Register)
		r.Get("/decks/{deckID}/documents", cfg.DocumentHandler.ListByDeck)
		r.Get("/decks/{deckID}/quizzes", cfg.QuizHandler.ListByDeck)
		r.Get("/decks/{deckID}/flashcards", cfg.FlashcardHandler.ListByDeck)
		r.Get("/decks/{deckID}/study-session", cfg.StudySessionHandler.GetByDeck)
		r.Put("/decks/{deckID}/study-session/wpm", cfg.StudySessionHandler.UpdateWPM)
		r.Post("/quizzes/{quizID}/attempts", cfg.AttemptHandler.Submit)
		r.Get("/quizzes/{quizID}/attempts", cfg.AttemptHandler.ListByQuiz)

		r.Get("/streaks/me", cfg.StreakHandler.GetMine)
		r.Get("/leaderboard", cfg.StreakHandler.Leaderboard)
	})

	return r
}
