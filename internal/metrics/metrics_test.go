package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_DomainCounters(t *testing.T) {
	t.Parallel()
	m := New(prometheus.NewRegistry())

	m.OfferCreated()
	m.OfferCreated()
	m.OfferDeleted()
	m.CommentCreated()
	m.CommentDeleted()
	m.Searched(0)
	m.Searched(2)
	m.Searched(1)

	require.Equal(t, 2.0, testutil.ToFloat64(m.OffersCreatedTotal))
	require.Equal(t, 1.0, testutil.ToFloat64(m.OffersDeletedTotal))
	require.Equal(t, 1.0, testutil.ToFloat64(m.CommentsCreatedTotal))
	require.Equal(t, 1.0, testutil.ToFloat64(m.CommentsDeletedTotal))
	require.Equal(t, 1.0, testutil.ToFloat64(m.SearchTotal.WithLabelValues("miss")))
	require.Equal(t, 2.0, testutil.ToFloat64(m.SearchTotal.WithLabelValues("hit")))
}

func TestMetrics_ObserveRequest(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveRequest(http.MethodGet, "/api/offers", http.StatusOK, 10*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/offers", http.StatusOK, 20*time.Millisecond)

	require.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/offers", "200")))
	require.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))
}

func TestMetrics_NilSafe(t *testing.T) {
	t.Parallel()
	var m *Metrics

	require.NotPanics(t, func() {
		m.ObserveRequest("GET", "/", 200, time.Millisecond)
		m.OfferCreated()
		m.OfferDeleted()
		m.CommentCreated()
		m.CommentDeleted()
		m.Searched(0)
	})
}

func TestNew_SeparateRegistries(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		_ = New(prometheus.NewRegistry())
		_ = New(prometheus.NewRegistry())
	})
}

func TestNewHTTP_OnlyRequestCollectors(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	m := NewHTTP(reg)

	require.NotPanics(t, func() {
		m.OfferCreated()
		m.OfferDeleted()
		m.CommentCreated()
		m.CommentDeleted()
		m.Searched(1)
	})
	m.ObserveRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	require.ElementsMatch(t, []string{"http_requests_total", "http_request_duration_seconds"}, names)
}
