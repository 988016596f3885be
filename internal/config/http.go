package config

import (
	"encoding/json"
	"net/http"

	"github.com/vmfarias/readrush/internal/apperr"
)

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// Error maps a service error onto its HTTP status and caller-safe message.
func Error(w http.ResponseWriter, err error) {
	JSON(w, apperr.Status(err), map[string]string{
		"error": apperr.Message(err),
	})
}
