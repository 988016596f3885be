package container

import (
	"context"
	"log"
	"os"

	"github.com/vmfarias/readrush/internal/aigen"
	"github.com/vmfarias/readrush/internal/attempt"
	"github.com/vmfarias/readrush/internal/auth"
	"github.com/vmfarias/readrush/internal/config"
	"github.com/vmfarias/readrush/internal/deck"
	"github.com/vmfarias/readrush/internal/document"
	"github.com/vmfarias/readrush/internal/flashcard"
	"github.com/vmfarias/readrush/internal/quiz"
	"github.com/vmfarias/readrush/internal/streak"
	"github.com/vmfarias/readrush/internal/studysession"
	"github.com/vmfarias/readrush/internal/user"
)

type Container struct {
	UserContainer         *user.UserContainer
	DeckContainer         *deck.DeckContainer
	DocumentContainer     *document.DocumentContainer
	StudySessionContainer *studysession.StudySessionContainer
	QuizContainer         *quiz.QuizContainer
	FlashcardContainer    *flashcard.FlashcardContainer
	AIGenContainer        *aigen.AIGenContainer
	AttemptContainer      *attempt.AttemptContainer
	StreakContainer       *streak.StreakContainer
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(
		&user.User{},
		&deck.Deck{},
		&document.Document{},
		&studysession.StudySession{},
		&quiz.Quiz{},
		&quiz.Question{},
		&quiz.Option{},
		&flashcard.Flashcard{},
		&attempt.QuizAttempt{},
		&attempt.UserAnswer{},
		&streak.Streak{},
	); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	deckContainer := deck.NewDeckContainer(config.DB)
	documentContainer := document.NewDocumentContainer(config.DB, deckContainer.Service)
	sessionContainer := studysession.NewStudySessionContainer(config.DB, deckContainer.Service)
	quizContainer := quiz.NewQuizContainer(config.DB, deckContainer.Service)
	flashcardContainer := flashcard.NewFlashcardContainer(config.DB, deckContainer.Service)
	streakContainer := streak.NewStreakContainer(config.DB)

	aiGenContainer := aigen.NewAIGenContainer(
		deckContainer.Service,
		documentContainer.Repo,
		quizContainer.Repo,
		flashcardContainer.Repo,
		sessionContainer.Repo,
	)

	attemptContainer := attempt.NewAttemptContainer(
		config.DB,
		quizContainer.Repo,
		deckContainer.Service,
		streakContainer.Service,
	)

	return &Container{
		UserContainer:         userContainer,
		DeckContainer:         deckContainer,
		DocumentContainer:     documentContainer,
		StudySessionContainer: sessionContainer,
		QuizContainer:         quizContainer,
		FlashcardContainer:    flashcardContainer,
		AIGenContainer:        aiGenContainer,
		AttemptContainer:      attemptContainer,
		StreakContainer:       streakContainer,
	}
}
