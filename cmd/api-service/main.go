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

	"github.com/pribylovaa/buy-and-sell/internal/config"
	apihttp "github.com/pribylovaa/buy-and-sell/internal/http"
	"github.com/pribylovaa/buy-and-sell/internal/idgen"
	"github.com/pribylovaa/buy-and-sell/internal/metrics"
	"github.com/pribylovaa/buy-and-sell/internal/server"
	"github.com/pribylovaa/buy-and-sell/internal/service"
	"github.com/pribylovaa/buy-and-sell/internal/storage/memory"
	"github.com/pribylovaa/buy-and-sell/internal/validation"
)

// Константы для определения окружения.
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
	log.Info("starting api-service", "env", cfg.Env)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	ids, err := idgen.New()
	if err != nil {
		log.Error("idgen_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	store := memory.New(ids, memory.LoadSeed(log, cfg.Seed.Path))
	m := metrics.New(prometheus.DefaultRegisterer)
	svc := service.New(store, validation.New(), m)
	log.Info("service_initialized")

	router := apihttp.NewRouter(svc, apihttp.Options{
		Logger:   log,
		Metrics:  m,
		Timeout:  cfg.Timeouts.Service,
		BasePath: cfg.HTTP.BasePath,
	})

	srv := server.New(log, cfg.HTTP.Addr(), router, prometheus.DefaultGatherer)
	if err := srv.Run(rootCtx); err != nil {
		log.Error("server_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	log.Info("service_stopped")
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
