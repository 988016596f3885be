package streak

import (
	"net/http"
	"strconv"

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

func (h *Handler) GetMine(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	st, err := h.service.Get(r.Context(), uuid.MustParse(claims.UserID))
	if err != nil {
		log.WithError(err).Error("Failed to load streak")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, st)
}

func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	entries, err := h.service.Leaderboard(r.Context(), limit)
	if err != nil {
		log.WithError(err).Error("Failed to load leaderboard")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, entries)
}
