package document

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

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
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

	var dto RegisterDocumentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	doc, err := h.service.Register(r.Context(), deckID, uuid.MustParse(claims.UserID), dto)
	if err != nil {
		log.WithError(err).Warn("Failed to register document")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, doc)
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

	docs, err := h.service.ListByDeck(r.Context(), deckID, uuid.MustParse(claims.UserID))
	if err != nil {
		log.WithError(err).Warn("Failed to list documents")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, docs)
}

func (h *Handler) Rename(w http.ResponseWriter, r *http.Request) {
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

	var dto RenameDocumentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	doc, err := h.service.Rename(r.Context(), id, uuid.MustParse(claims.UserID), dto)
	if err != nil {
		log.WithError(err).Warn("Failed to rename document")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, doc)
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
		log.WithError(err).Warn("Failed to delete document")
		config.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
