// Package metrics — Prometheus-метрики сервиса объявлений.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics содержит HTTP- и доменные метрики.
// Все методы безопасны для nil-получателя: в тестах метрики можно не поднимать.
type Metrics struct {
	// HTTP
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Объявления и комментарии
	OffersCreatedTotal   prometheus.Counter
	OffersDeletedTotal   prometheus.Counter
	CommentsCreatedTotal prometheus.Counter
	CommentsDeletedTotal prometheus.Counter

	// Поиск: result = hit | miss
	SearchTotal *prometheus.CounterVec
}

// New регистрирует HTTP- и доменные метрики в reg (API-сервис).
// В main передаётся prometheus.DefaultRegisterer, в тестах — prometheus.NewRegistry().
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	m := newHTTP(f)
	m.OffersCreatedTotal = f.NewCounter(prometheus.CounterOpts{
		Name: "offers_created_total",
		Help: "Количество созданных объявлений",
	})
	m.OffersDeletedTotal = f.NewCounter(prometheus.CounterOpts{
		Name: "offers_deleted_total",
		Help: "Количество удалённых объявлений",
	})
	m.CommentsCreatedTotal = f.NewCounter(prometheus.CounterOpts{
		Name: "comments_created_total",
		Help: "Количество созданных комментариев",
	})
	m.CommentsDeletedTotal = f.NewCounter(prometheus.CounterOpts{
		Name: "comments_deleted_total",
		Help: "Количество удалённых комментариев",
	})
	m.SearchTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "offers_search_total",
			Help: "Поисковые запросы по заголовкам объявлений",
		},
		[]string{"result"},
	)

	return m
}

// NewHTTP регистрирует только HTTP-метрики (web-сервис: доменных операций в нём нет).
// Доменные методы такого Metrics ничего не делают.
func NewHTTP(reg prometheus.Registerer) *Metrics {
	return newHTTP(promauto.With(reg))
}

func newHTTP(f promauto.Factory) *Metrics {
	return &Metrics{
		RequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Количество HTTP-запросов",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Время обработки HTTP-запроса",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// ObserveRequest учитывает завершённый HTTP-запрос.
func (m *Metrics) ObserveRequest(method, route string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(dur.Seconds())
}

func (m *Metrics) OfferCreated() {
	if m != nil && m.OffersCreatedTotal != nil {
		m.OffersCreatedTotal.Inc()
	}
}

func (m *Metrics) OfferDeleted() {
	if m != nil && m.OffersDeletedTotal != nil {
		m.OffersDeletedTotal.Inc()
	}
}

func (m *Metrics) CommentCreated() {
	if m != nil && m.CommentsCreatedTotal != nil {
		m.CommentsCreatedTotal.Inc()
	}
}

func (m *Metrics) CommentDeleted() {
	if m != nil && m.CommentsDeletedTotal != nil {
		m.CommentsDeletedTotal.Inc()
	}
}

// Searched учитывает поиск с found совпадениями.
func (m *Metrics) Searched(found int) {
	if m == nil || m.SearchTotal == nil {
		return
	}
	result := "hit"
	if found == 0 {
		result = "miss"
	}
	m.SearchTotal.WithLabelValues(result).Inc()
}
