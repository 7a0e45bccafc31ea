// Package web — HTML-страницы доски объявлений поверх JSON API.
//
// Страницы получают данные только через OffersAPI. Сбой API не превращается в 5xx:
// списки деградируют до пустых, форма создания возвращает пользователя назад.
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/buy-and-sell/internal/http/middleware"
	"github.com/pribylovaa/buy-and-sell/internal/metrics"
	"github.com/pribylovaa/buy-and-sell/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// OffersAPI — то, что страницам нужно от API объявлений.
type OffersAPI interface {
	Offers(ctx context.Context) ([]models.Offer, error)
	Offer(ctx context.Context, id string) (*models.Offer, error)
	Search(ctx context.Context, query string) ([]models.Offer, error)
	Categories(ctx context.Context) ([]string, error)
	CreateOffer(ctx context.Context, in models.OfferInput) (*models.Offer, error)
	UpdateOffer(ctx context.Context, id string, in models.OfferInput) error
}

// Options — параметры сборки роутера страниц.
type Options struct {
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	Timeout time.Duration
}

// Web — обработчики страниц.
type Web struct {
	api OffersAPI
	tpl *template.Template
}

// New разбирает встроенные шаблоны.
func New(api OffersAPI) (*Web, error) {
	tpl, err := template.New("").Funcs(template.FuncMap{
		"pathEscape":  pathEscape,
		"hasCategory": hasCategory,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("web: parse templates: %w", err)
	}

	return &Web{api: api, tpl: tpl}, nil
}

// Router собирает http.Handler страниц.
func (wb *Web) Router(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recover(),
		middleware.RequestID(),
		middleware.Logging(opts.Logger),
		middleware.Metrics(opts.Metrics),
		middleware.Timeout(opts.Timeout),
	)

	r.Get("/", wb.Main)
	r.Get("/search", wb.Search)

	r.Route("/my", func(r chi.Router) {
		r.Get("/", wb.MyOffers)
		r.Get("/comments", wb.MyComments)
	})

	r.Route("/offers", func(r chi.Router) {
		r.Get("/add", wb.NewOfferForm)
		r.Post("/add", wb.CreateOffer)
		r.Get("/edit/{id}", wb.EditOffer)
		r.Post("/edit/{id}", wb.UpdateOffer)
		r.Get("/category/{id}", wb.Category)
		r.Get("/{id}", wb.Offer)
	})

	return r
}
