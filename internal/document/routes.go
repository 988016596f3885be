package document

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Put("/{id}", h.Rename)
	r.Delete("/{id}", h.Delete)

	return r
}
