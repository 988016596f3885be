package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"github.com/vmfarias/readrush/internal/auth"
	"github.com/vmfarias/readrush/internal/config"
)

type Handler struct {
	service UserService
}

func NewHandler(s UserService) *Handler {
	return &Handler{service: s}
}

func setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    token,
		Path:     "/",
		Domain:   os.Getenv("COOKIE_DOMAIN"),
		MaxAge:   int((60 * 60 * 24 * 7)),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var payload struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Code == "" {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	u, token, err := h.service.GoogleLogin(r.Context(), payload.Code)
	if err != nil {
		if errors.Is(err, ErrInvalidAuthCode) {
			http.Error(w, "invalid auth code", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("Google login failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	setAuthCookie(w, token)
	config.JSON(w, http.StatusOK, u)
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("jwt")
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	token, err := h.service.RefreshToken(r.Context(), cookie.Value)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	setAuthCookie(w, token)
	config.JSON(w, http.StatusOK, map[string]string{
		"message": "token refreshed",
	})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	u, err := h.service.GetByID(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to load user")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if u == nil {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, u)
}
