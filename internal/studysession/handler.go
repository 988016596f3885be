package studysession

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

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetByDeck(w http.ResponseWriter, r *http.Request) {
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

	session, err := h.service.GetByDeck(r.Context(), deckID, uuid.MustParse(claims.UserID))
	if err != nil {
		log.WithError(err).Warn("Failed to get study session")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, session)
}

func (h *Handler) UpdateWPM(w http.ResponseWriter, r *http.Request) {
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

	var payload struct {
		WPM int `json:"wpm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	session, err := h.service.UpdateWPM(r.Context(), deckID, uuid.MustParse(claims.UserID), payload.WPM)
	if err != nil {
		log.WithError(err).Warn("Failed to update wpm")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, session)
}
