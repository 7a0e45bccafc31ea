package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/buy-and-sell/internal/http/handlers"
	"github.com/pribylovaa/buy-and-sell/internal/http/middleware"
	"github.com/pribylovaa/buy-and-sell/internal/metrics"
	"github.com/pribylovaa/buy-and-sell/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),
		middleware.RequestID(),          // до логирования: id должен попасть в логгер
		middleware.Logging(opts.Logger), // request-scoped логгер в контексте
		middleware.Metrics(opts.Metrics),
		middleware.Timeout(opts.Timeout),
	)

	h := handlers.New(svc)

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// offers
	r.Get("/offers", h.ListOffers)
	r.Post("/offers", h.CreateOffer)
	r.Get("/offers/{offerId}", h.GetOffer)
	r.Put("/offers/{offerId}", h.UpdateOffer)
	r.Delete("/offers/{offerId}", h.DeleteOffer)

	// comments
	r.Get("/offers/{offerId}/comments", h.ListComments)
	r.Post("/offers/{offerId}/comments", h.CreateComment)
	r.Delete("/offers/{offerId}/comments/{commentId}", h.DeleteComment)

	// categories, search
	r.Get("/categories", h.ListCategories)
	r.Get("/search", h.Search)
}
