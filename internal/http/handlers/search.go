package handlers

import (
	"fmt"
	"net/http"

	apierrors "github.com/pribylovaa/buy-and-sell/internal/errors"
	"github.com/pribylovaa/buy-and-sell/internal/service"
)

// Search — GET /search?query=...
// Нет query -> 400, ничего не найдено -> 404.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	offers, err := h.svc.Search(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if len(offers) == 0 {
		apierrors.WriteError(w, r, fmt.Errorf("search: %w", service.ErrNotFound))
		return
	}

	writeJSON(w, http.StatusOK, offers)
}
