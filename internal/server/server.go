// Package server — HTTP-сервер с пробами /livez, /healthz, /metrics
// и корректной остановкой по сигналу.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ShutdownTimeout — сколько ждём завершения активных запросов при остановке.
const ShutdownTimeout = 10 * time.Second

// Server — обёртка над http.Server с флагом готовности.
type Server struct {
	log   *slog.Logger
	srv   *http.Server
	ready atomic.Bool
}

// New собирает корневой mux: служебные пробы и app на остальных путях.
// gatherer == nil — /metrics не регистрируется.
func New(log *slog.Logger, addr string, app http.Handler, gatherer prometheus.Gatherer) *Server {
	s := &Server{log: log}

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if s.ready.Load() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}
		http.Error(w, "not ready", http.StatusServiceUnavailable)
	})
	if gatherer != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	mux.Handle("/", app)

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// Handler — корневой обработчик (для тестов).
func (s *Server) Handler() http.Handler { return s.srv.Handler }

// Run слушает addr до отмены ctx или ошибки Serve, затем останавливает сервер.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.srv.Addr, err)
	}

	return s.Serve(ctx, ln)
}

// Serve — как Run, но на готовом listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.log.Info("http_listen_start", slog.String("addr", ln.Addr().String()))

	serveErrCh := make(chan error, 1)
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	s.ready.Store(true)
	s.log.Info("server_ready")

	var serveErr error
	select {
	case <-ctx.Done():
		s.log.Info("shutdown_requested")
	case serveErr = <-serveErrCh:
		if serveErr != nil {
			s.log.Error("http_serve_failed", slog.String("err", serveErr.Error()))
		}
	}

	s.ready.Store(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		s.log.Warn("http_shutdown_incomplete", slog.String("err", err.Error()))
	} else {
		s.log.Info("http_stopped")
	}

	return serveErr
}
