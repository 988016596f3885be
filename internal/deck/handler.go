package deck

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

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto CreateDeckDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	d, err := h.service.Create(r.Context(), uuid.MustParse(claims.UserID), dto)
	if err != nil {
		log.WithError(err).Error("Failed to create deck")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, d)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	decks, err := h.service.List(r.Context(), uuid.MustParse(claims.UserID))
	if err != nil {
		log.WithError(err).Error("Failed to list decks")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, decks)
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

	d, err := h.service.Get(r.Context(), id, uuid.MustParse(claims.UserID))
	if err != nil {
		log.WithError(err).Warn("Failed to get deck")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, d)
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

	var dto RenameDeckDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	d, err := h.service.Rename(r.Context(), id, uuid.MustParse(claims.UserID), dto)
	if err != nil {
		log.WithError(err).Warn("Failed to rename deck")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, d)
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
		log.WithError(err).Warn("Failed to delete deck")
		config.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
