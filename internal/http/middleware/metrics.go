package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/buy-and-sell/internal/metrics"
)

// Metrics учитывает запрос в http_requests_total / http_request_duration_seconds.
// Метка route — шаблон маршрута chi (/api/offers/{offerId}), а не сырой путь,
// чтобы не раздувать кардинальность. Незамаршрутизированные запросы идут как "unmatched".
func Metrics(m *metrics.Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := wrap(w)
			start := time.Now()
			next.ServeHTTP(sw, r)

			m.ObserveRequest(r.Method, routePattern(r), sw.Status(), time.Since(start))
		})
	}
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return "unmatched"
	}
	if p := rctx.RoutePattern(); p != "" {
		return p
	}
	return "unmatched"
}
