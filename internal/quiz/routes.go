package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/{id}", h.GetWithQuestions)
	r.Delete("/{id}", h.Delete)

	return r
}
