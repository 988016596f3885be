package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vmfarias/readrush/internal/auth"
	"github.com/vmfarias/readrush/internal/config"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ListByDeck(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	deckID, err := uuid.Parse(chi.URLParam(r, "deckID"))
	if err != nil {
		http.Error(w, "invalid deck id", http.StatusBadRequest)
		return
	}

	quizzes, err := h.service.ListByDeck(r.Context(), deckID, uuid.MustParse(claims.UserID))
	if err != nil {
		log.WithError(err).Warn("Failed to list quizzes")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, quizzes)
}

func (h *Handler) GetWithQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	quizID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid quiz id", http.StatusBadRequest)
		return
	}

	q, err := h.service.GetWithQuestions(r.Context(), quizID, uuid.MustParse(claims.UserID))
	if err != nil {
		log.WithError(err).Warn("Failed to get quiz")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	quizID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid quiz id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), quizID, uuid.MustParse(claims.UserID)); err != nil {
		log.WithError(err).Warn("Failed to delete quiz")
		config.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
