package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pribylovaa/buy-and-sell/internal/clients/api"
	"github.com/pribylovaa/buy-and-sell/internal/config"
	"github.com/pribylovaa/buy-and-sell/internal/metrics"
	"github.com/pribylovaa/buy-and-sell/internal/server"
	"github.com/pribylovaa/buy-and-sell/internal/web"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file (overrides CONFIG_PATH env)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file, using process environment")
	}

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting web-service", "env", cfg.Env, "api", cfg.API.BaseURL)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	client := api.New(api.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.Timeouts.Upstream,
	})

	pages, err := web.New(client)
	if err != nil {
		log.Error("templates_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	m := metrics.NewHTTP(prometheus.DefaultRegisterer)
	router := pages.Router(web.Options{
		Logger:  log,
		Metrics: m,
		Timeout: cfg.Timeouts.Service,
	})

	srv := server.New(log, cfg.Web.Addr(), router, prometheus.DefaultGatherer)
	if err := srv.Run(rootCtx); err != nil {
		log.Error("server_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	log.Info("service_stopped")
}

func setupLogger(env string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}

	switch env {
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case envLocal:
		fallthrough
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
}
