package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/pribylovaa/buy-and-sell/internal/errors"
	"github.com/pribylovaa/buy-and-sell/internal/models"
)

// requireOffer — проверка существования объявления из пути.
// При отсутствии пишет 404 и возвращает false: хендлер должен остановиться.
func (h *Handlers) requireOffer(w http.ResponseWriter, r *http.Request) (*models.Offer, bool) {
	offer, err := h.svc.ResolveOffer(r.Context(), chi.URLParam(r, "offerId"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return nil, false
	}

	return offer, true
}

func (h *Handlers) ListComments(w http.ResponseWriter, r *http.Request) {
	offer, ok := h.requireOffer(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, h.svc.Comments(r.Context(), offer))
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	var in models.CommentInput
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.svc.ValidateComment(r.Context(), in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	offer, ok := h.requireOffer(w, r)
	if !ok {
		return
	}

	comment, err := h.svc.CreateComment(r.Context(), offer, in)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	offer, ok := h.requireOffer(w, r)
	if !ok {
		return
	}

	comment, err := h.svc.DeleteComment(r.Context(), offer, chi.URLParam(r, "commentId"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, comment)
}
