package attempt

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

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	quizID, err := uuid.Parse(chi.URLParam(r, "quizID"))
	if err != nil {
		http.Error(w, "invalid quiz id", http.StatusBadRequest)
		return
	}

	var dto SubmitAttemptDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Submit(r.Context(), quizID, uuid.MustParse(claims.UserID), dto)
	if err != nil {
		log.WithError(err).Warn("Failed to submit attempt")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, resp)
}

func (h *Handler) ListByQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	quizID, err := uuid.Parse(chi.URLParam(r, "quizID"))
	if err != nil {
		http.Error(w, "invalid quiz id", http.StatusBadRequest)
		return
	}

	attempts, err := h.service.ListByQuiz(r.Context(), quizID, uuid.MustParse(claims.UserID))
	if err != nil {
		log.WithError(err).Warn("Failed to list attempts")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, attempts)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	a, err := h.service.Get(r.Context(), id, uuid.MustParse(claims.UserID))
	if err != nil {
		log.WithError(err).Warn("Failed to get attempt")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, a)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id, uuid.MustParse(claims.UserID)); err != nil {
		log.WithError(err).Warn("Failed to delete attempt")
		config.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
