package web

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/pribylovaa/buy-and-sell/internal/models"
	"github.com/pribylovaa/buy-and-sell/pkg/log"
)

// myCommentsLimit — сколько объявлений показывает страница «мои комментарии».
const myCommentsLimit = 3

type listPage struct {
	Offers     []models.Offer
	Categories []string
}

type searchPage struct {
	Query   string
	Results []models.Offer
}

type categoryPage struct {
	Category string
	Offers   []models.Offer
}

type offerPage struct {
	Offer      *models.Offer
	Categories []string
}

// Main — главная: объявления и категории запрашиваются параллельно.
func (wb *Web) Main(w http.ResponseWriter, r *http.Request) {
	const op = "web/Main"
	var page listPage

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		offers, err := wb.api.Offers(ctx)
		page.Offers = offers
		return err
	})
	g.Go(func() error {
		categories, err := wb.api.Categories(ctx)
		page.Categories = categories
		return err
	})

	if err := g.Wait(); err != nil {
		log.Op(r.Context(), op).Warn("api unavailable, rendering empty lists", "err", err)
		page = listPage{}
	}

	wb.render(w, r, http.StatusOK, "main.html", page)
}

// Search — результаты поиска. 404 от API (ничего не найдено) и любой сбой
// дают пустую страницу результатов.
func (wb *Web) Search(w http.ResponseWriter, r *http.Request) {
	const op = "web/Search"
	page := searchPage{Query: r.URL.Query().Get("search")}

	results, err := wb.api.Search(r.Context(), page.Query)
	if err != nil {
		log.Op(r.Context(), op).Debug("search returned nothing", "err", err)
	} else {
		page.Results = results
	}

	wb.render(w, r, http.StatusOK, "search-result.html", page)
}

// MyOffers — «мои объявления».
func (wb *Web) MyOffers(w http.ResponseWriter, r *http.Request) {
	wb.render(w, r, http.StatusOK, "my-tickets.html", listPage{Offers: wb.offersOrEmpty(r, "web/MyOffers")})
}

// MyComments — первые объявления с их комментариями.
func (wb *Web) MyComments(w http.ResponseWriter, r *http.Request) {
	offers := wb.offersOrEmpty(r, "web/MyComments")
	if len(offers) > myCommentsLimit {
		offers = offers[:myCommentsLimit]
	}

	wb.render(w, r, http.StatusOK, "comments.html", listPage{Offers: offers})
}

// Category — объявления одной категории; {id} — название категории.
func (wb *Web) Category(w http.ResponseWriter, r *http.Request) {
	page := categoryPage{Category: chi.URLParam(r, "id")}

	for _, o := range wb.offersOrEmpty(r, "web/Category") {
		if slices.Contains(o.Category, page.Category) {
			page.Offers = append(page.Offers, o)
		}
	}

	wb.render(w, r, http.StatusOK, "category.html", page)
}

// Offer — карточка объявления.
func (wb *Web) Offer(w http.ResponseWriter, r *http.Request) {
	const op = "web/Offer"
	id := chi.URLParam(r, "id")

	offer, err := wb.api.Offer(r.Context(), id)
	if err != nil {
		log.Op(r.Context(), op, "offer_id", id).Warn("offer unavailable", "err", err)
		wb.notFound(w, r)
		return
	}

	wb.render(w, r, http.StatusOK, "ticket.html", offerPage{Offer: offer})
}

// EditOffer — форма редактирования: объявление и категории параллельно.
func (wb *Web) EditOffer(w http.ResponseWriter, r *http.Request) {
	const op = "web/EditOffer"
	id := chi.URLParam(r, "id")
	var page offerPage

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		offer, err := wb.api.Offer(ctx, id)
		page.Offer = offer
		return err
	})
	g.Go(func() error {
		categories, err := wb.api.Categories(ctx)
		page.Categories = categories
		return err
	})

	if err := g.Wait(); err != nil || page.Offer == nil {
		log.Op(r.Context(), op, "offer_id", id).Warn("edit page unavailable", "err", err)
		wb.notFound(w, r)
		return
	}

	wb.render(w, r, http.StatusOK, "ticket-edit.html", page)
}

// offersOrEmpty — все объявления или пустой список при сбое API.
func (wb *Web) offersOrEmpty(r *http.Request, op string) []models.Offer {
	offers, err := wb.api.Offers(r.Context())
	if err != nil {
		log.Op(r.Context(), op).Warn("api unavailable, rendering empty list", "err", err)
		return nil
	}
	return offers
}
