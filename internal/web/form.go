package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/buy-and-sell/internal/models"
	"github.com/pribylovaa/buy-and-sell/pkg/log"
)

// Поля формы нового объявления.
const (
	fieldTitle       = "ticket-name"
	fieldDescription = "comment"
	fieldPrice       = "price"
	fieldAction      = "action"
	fieldCategory    = "category"
	fieldPicture     = "picture"
)

const maxFormMemory = 10 << 20

// NewOfferForm — форма нового объявления. Категории нужны только для подсказок,
// поэтому их недоступность форму не ломает.
func (wb *Web) NewOfferForm(w http.ResponseWriter, r *http.Request) {
	categories, err := wb.api.Categories(r.Context())
	if err != nil {
		log.Op(r.Context(), "web/NewOfferForm").Warn("categories unavailable", "err", err)
	}

	wb.render(w, r, http.StatusOK, "new-ticket.html", offerPage{Categories: categories})
}

// CreateOffer — приём формы. Успех -> /my, любой отказ -> туда, откуда пришли.
func (wb *Web) CreateOffer(w http.ResponseWriter, r *http.Request) {
	const op = "web/CreateOffer"
	lg := log.Op(r.Context(), op)

	if err := parseForm(r); err != nil {
		lg.Warn("bad form", "err", err)
		redirectBack(w, r)
		return
	}

	offer, err := wb.api.CreateOffer(r.Context(), offerFromForm(r))
	if err != nil {
		lg.Warn("create rejected", "err", err)
		redirectBack(w, r)
		return
	}

	lg.Info("offer created", "offer_id", offer.ID)
	http.Redirect(w, r, "/my", http.StatusSeeOther)
}

// UpdateOffer — приём формы редактирования. Успех -> /my, отказ -> назад.
func (wb *Web) UpdateOffer(w http.ResponseWriter, r *http.Request) {
	const op = "web/UpdateOffer"
	id := chi.URLParam(r, "id")
	lg := log.Op(r.Context(), op, "offer_id", id)

	if err := parseForm(r); err != nil {
		lg.Warn("bad form", "err", err)
		redirectBack(w, r)
		return
	}

	if err := wb.api.UpdateOffer(r.Context(), id, offerFromForm(r)); err != nil {
		lg.Warn("update rejected", "err", err)
		redirectBack(w, r)
		return
	}

	lg.Info("offer updated")
	http.Redirect(w, r, "/my", http.StatusSeeOther)
}

// parseForm принимает и multipart, и urlencoded.
func parseForm(r *http.Request) error {
	err := r.ParseMultipartForm(maxFormMemory)
	if errors.Is(err, http.ErrNotMultipart) {
		return r.ParseForm()
	}
	return err
}

// offerFromForm переносит поля формы во вход API. Нечисловая цена
// оставляет Sum пустым, и API отклонит запрос.
func offerFromForm(r *http.Request) models.OfferInput {
	in := models.OfferInput{
		Title:       strings.TrimSpace(r.PostFormValue(fieldTitle)),
		Description: strings.TrimSpace(r.PostFormValue(fieldDescription)),
		Type:        r.PostFormValue(fieldAction),
		Picture:     r.PostFormValue(fieldPicture),
		Category:    models.Categories(r.PostForm[fieldCategory]),
	}

	if sum, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue(fieldPrice))); err == nil {
		in.Sum = &sum
	}

	return in
}

func redirectBack(w http.ResponseWriter, r *http.Request) {
	target := r.Referer()
	if target == "" {
		target = r.URL.Path
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
