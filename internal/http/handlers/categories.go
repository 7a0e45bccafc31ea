package handlers

import (
	"net/http"
)

func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Categories(r.Context()))
}
