package aigen

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vmfarias/readrush/internal/auth"
	"github.com/vmfarias/readrush/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func requestIDs(w http.ResponseWriter, r *http.Request) (deckID, userID uuid.UUID, ok bool) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return uuid.Nil, uuid.Nil, false
	}

	deckID, err = uuid.Parse(chi.URLParam(r, "deckID"))
	if err != nil {
		http.Error(w, "invalid deck id", http.StatusBadRequest)
		return uuid.Nil, uuid.Nil, false
	}

	return deckID, uuid.MustParse(claims.UserID), true
}

func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	deckID, userID, ok := requestIDs(w, r)
	if !ok {
		return
	}

	var payload struct {
		QuestionCount int `json:"question_count"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	q, err := h.service.GenerateQuiz(r.Context(), deckID, userID, payload.QuestionCount)
	if err != nil {
		log.WithError(err).Error("Quiz generation failed")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, q)
}

func (h *Handler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	deckID, userID, ok := requestIDs(w, r)
	if !ok {
		return
	}

	var payload struct {
		CardCount int `json:"card_count"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	cards, err := h.service.GenerateFlashcards(r.Context(), deckID, userID, payload.CardCount)
	if err != nil {
		log.WithError(err).Error("Flashcard generation failed")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, cards)
}

func (h *Handler) GenerateStudySession(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	deckID, userID, ok := requestIDs(w, r)
	if !ok {
		return
	}

	session, err := h.service.GenerateStudySession(r.Context(), deckID, userID)
	if err != nil {
		log.WithError(err).Error("Study session generation failed")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, session)
}

func (h *Handler) RegenerateStudySession(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	deckID, userID, ok := requestIDs(w, r)
	if !ok {
		return
	}

	session, err := h.service.RegenerateStudySession(r.Context(), deckID, userID)
	if err != nil {
		log.WithError(err).Error("Study session regeneration failed")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, session)
}
