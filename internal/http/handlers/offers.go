package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/pribylovaa/buy-and-sell/internal/errors"
	"github.com/pribylovaa/buy-and-sell/internal/models"
)

func (h *Handlers) ListOffers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Offers(r.Context()))
}

func (h *Handlers) GetOffer(w http.ResponseWriter, r *http.Request) {
	offer, err := h.svc.OfferByID(r.Context(), chi.URLParam(r, "offerId"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, offer)
}

func (h *Handlers) CreateOffer(w http.ResponseWriter, r *http.Request) {
	var in models.OfferInput
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	offer, err := h.svc.CreateOffer(r.Context(), in)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, offer)
}

func (h *Handlers) UpdateOffer(w http.ResponseWriter, r *http.Request) {
	var in models.OfferInput
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.svc.UpdateOffer(r.Context(), chi.URLParam(r, "offerId"), in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeText(w, http.StatusOK, "Updated")
}

func (h *Handlers) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	offer, err := h.svc.DeleteOffer(r.Context(), chi.URLParam(r, "offerId"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, offer)
}
