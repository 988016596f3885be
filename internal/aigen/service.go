package aigen

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vmfarias/readrush/internal/apperr"
	"github.com/vmfarias/readrush/internal/config"
	"github.com/vmfarias/readrush/internal/deck"
	"github.com/vmfarias/readrush/internal/document"
	"github.com/vmfarias/readrush/internal/flashcard"
	"github.com/vmfarias/readrush/internal/quiz"
	"github.com/vmfarias/readrush/internal/studysession"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultQuestionCount = 10
	MinQuestionCount     = 5
	MaxQuestionCount     = 30

	DefaultCardCount = 10
	MinCardCount     = 5
	MaxCardCount     = 50
)

var (
	quizModelConfig      = ModelConfig{Temperature: 0.7, MaxOutputTokens: 8192}
	flashcardModelConfig = ModelConfig{Temperature: 0.7, MaxOutputTokens: 8192}
	summaryModelConfig   = ModelConfig{Temperature: 0.5, MaxOutputTokens: 4096}
)

type Service interface {
	GenerateQuiz(ctx context.Context, deckID, userID uuid.UUID, questionCount int) (*quiz.Quiz, error)
	GenerateFlashcards(ctx context.Context, deckID, userID uuid.UUID, cardCount int) ([]flashcard.Flashcard, error)
	GenerateStudySession(ctx context.Context, deckID, userID uuid.UUID) (*studysession.StudySession, error)
	RegenerateStudySession(ctx context.Context, deckID, userID uuid.UUID) (*studysession.StudySession, error)
}

type service struct {
	client     Client
	decks      deck.Service
	documents  document.Repository
	quizzes    quiz.QuizRepository
	flashcards flashcard.Repository
	sessions   studysession.Repository
}

func NewService(
	client Client,
	decks deck.Service,
	documents document.Repository,
	quizzes quiz.QuizRepository,
	flashcards flashcard.Repository,
	sessions studysession.Repository,
) Service {
	return &service{
		client:     client,
		decks:      decks,
		documents:  documents,
		quizzes:    quizzes,
		flashcards: flashcards,
		sessions:   sessions,
	}
}

// loadDeckDocuments runs the shared preamble of every orchestrator:
// deck exists, requester owns it, and there is something to generate from.
func (s *service) loadDeckDocuments(ctx context.Context, deckID, userID uuid.UUID) (*deck.Deck, []document.Document, error) {
	d, err := s.decks.GetOwned(ctx, deckID, userID)
	if err != nil {
		return nil, nil, err
	}

	docs, err := s.documents.FindAllByDeckID(deckID)
	if err != nil {
		return nil, nil, err
	}
	if len(docs) == 0 {
		return nil, nil, apperr.Precondition("deck has no documents to generate from")
	}
	return d, docs, nil
}

// uploadDocuments fans out one provider upload per document and joins
// before generating. Any single failure aborts the whole request.
func (s *service) uploadDocuments(ctx context.Context, docs []document.Document) ([]FileHandle, error) {
	handles := make([]FileHandle, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	for i, doc := range docs {
		g.Go(func() error {
			handle, err := s.client.UploadFile(gctx, doc.FileURL, doc.Name)
			if err != nil {
				return err
			}
			handles[i] = *handle
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return handles, nil
}

func (s *service) generate(ctx context.Context, docs []document.Document, system, user string, cfg ModelConfig) (string, error) {
	handles, err := s.uploadDocuments(ctx, docs)
	if err != nil {
		return "", err
	}
	return s.client.GenerateContent(ctx, system, user, handles, cfg)
}

func (s *service) GenerateQuiz(ctx context.Context, deckID, userID uuid.UUID, questionCount int) (*quiz.Quiz, error) {
	log := config.WithContext(ctx)

	if questionCount == 0 {
		questionCount = DefaultQuestionCount
	}
	if questionCount < MinQuestionCount || questionCount > MaxQuestionCount {
		return nil, apperr.Validationf("question count must be between %d and %d",
			MinQuestionCount, MaxQuestionCount)
	}

	d, docs, err := s.loadDeckDocuments(ctx, deckID, userID)
	if err != nil {
		return nil, err
	}

	raw, err := s.generate(ctx, docs, quizSystemPrompt, buildQuizPrompt(questionCount), quizModelConfig)
	if err != nil {
		return nil, err
	}

	generated, err := ParseQuestions(raw, questionCount)
	if err != nil {
		return nil, err
	}

	q := &quiz.Quiz{
		ID:     uuid.New(),
		DeckID: deckID,
		Title:  fmt.Sprintf("%s Quiz", d.Name),
	}
	for i, gq := range generated {
		question := quiz.Question{
			ID:       uuid.New(),
			QuizID:   q.ID,
			Text:     gq.QuestionText,
			Position: i,
		}
		for _, opt := range gq.Options {
			question.Options = append(question.Options, quiz.Option{
				ID:         uuid.New(),
				QuestionID: question.ID,
				Text:       opt.OptionText,
				IsCorrect:  opt.IsCorrect,
			})
		}
		q.Questions = append(q.Questions, question)
	}

	if err := s.quizzes.CreateWithQuestions(q); err != nil {
		return nil, err
	}

	log.Infof("Generated quiz %s with %d questions for deck %s", q.ID, len(q.Questions), deckID)
	return q, nil
}

func (s *service) GenerateFlashcards(ctx context.Context, deckID, userID uuid.UUID, cardCount int) ([]flashcard.Flashcard, error) {
	log := config.WithContext(ctx)

	if cardCount == 0 {
		cardCount = DefaultCardCount
	}
	if cardCount < MinCardCount || cardCount > MaxCardCount {
		return nil, apperr.Validationf("card count must be between %d and %d",
			MinCardCount, MaxCardCount)
	}

	_, docs, err := s.loadDeckDocuments(ctx, deckID, userID)
	if err != nil {
		return nil, err
	}

	raw, err := s.generate(ctx, docs, flashcardSystemPrompt, buildFlashcardPrompt(cardCount), flashcardModelConfig)
	if err != nil {
		return nil, err
	}

	generated, err := ParseFlashcards(raw, cardCount)
	if err != nil {
		return nil, err
	}

	cards := make([]flashcard.Flashcard, 0, len(generated))
	for _, gc := range generated {
		cards = append(cards, flashcard.Flashcard{
			ID:     uuid.New(),
			DeckID: deckID,
			Front:  gc.Front,
			Back:   gc.Back,
		})
	}

	if err := s.flashcards.CreateBatch(cards); err != nil {
		return nil, err
	}

	log.Infof("Generated %d flashcards for deck %s", len(cards), deckID)
	return cards, nil
}

func (s *service) GenerateStudySession(ctx context.Context, deckID, userID uuid.UUID) (*studysession.StudySession, error) {
	return s.generateSession(ctx, deckID, userID, false)
}

// RegenerateStudySession only replaces the summary of an existing
// session; callers without one are pointed at generate instead.
func (s *service) RegenerateStudySession(ctx context.Context, deckID, userID uuid.UUID) (*studysession.StudySession, error) {
	return s.generateSession(ctx, deckID, userID, true)
}

func (s *service) generateSession(ctx context.Context, deckID, userID uuid.UUID, mustExist bool) (*studysession.StudySession, error) {
	log := config.WithContext(ctx)

	_, docs, err := s.loadDeckDocuments(ctx, deckID, userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.sessions.FindByDeckID(deckID)
	if err != nil {
		return nil, err
	}
	if mustExist && existing == nil {
		return nil, apperr.Precondition("deck has no study session; use generate instead")
	}

	raw, err := s.generate(ctx, docs, summarySystemPrompt, buildSummaryPrompt(), summaryModelConfig)
	if err != nil {
		return nil, err
	}

	summary, err := ParseSummary(raw)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		session := &studysession.StudySession{
			ID:      uuid.New(),
			DeckID:  deckID,
			Summary: summary,
			WPM:     studysession.DefaultWPM,
		}
		if err := s.sessions.Create(session); err != nil {
			return nil, err
		}
		log.Infof("Created study session %s for deck %s", session.ID, deckID)
		return session, nil
	}

	// WPM is a user setting; regeneration must not touch it.
	if err := s.sessions.UpdateSummary(deckID, summary); err != nil {
		return nil, err
	}
	existing.Summary = summary

	log.Infof("Replaced study session summary for deck %s", deckID)
	return existing, nil
}
