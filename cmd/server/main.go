package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"formtypes/internal/formtypes/handler"
	formmetrics "formtypes/internal/formtypes/metrics"
	"formtypes/internal/formtypes/registry"
	"formtypes/internal/formtypes/seed"
	"formtypes/internal/platform/config"
	"formtypes/internal/platform/httpserver"
	"formtypes/internal/platform/logger"
	"formtypes/internal/platform/middleware"
)

// main wires the registry, its seed and the admin HTTP surface. The registry
// is built once here and handed to everything that needs it.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	reg := registry.New(
		registry.WithLogger(log),
		registry.WithMetrics(formmetrics.New(prometheus.DefaultRegisterer)),
	)

	if cfg.SeedFile != "" {
		if err := applySeed(reg, cfg.SeedFile, log); err != nil {
			log.Error("failed to apply seed file", "path", cfg.SeedFile, "error", err)
			os.Exit(1)
		}
	}

	r := chi.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(log))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())
	handler.New(reg, log, cfg.AdminToken).Register(r)

	srv := httpserver.New(cfg.Addr, r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting formtypes registry", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped", "entries", reg.Len())
}

func applySeed(reg *registry.Registry, path string, log *slog.Logger) error {
	f, err := seed.Load(path)
	if err != nil {
		return err
	}
	n, err := seed.Apply(reg, f)
	if err != nil {
		return err
	}
	log.Info("seed applied", "path", path, "declarations", n, "form_types", len(reg.FormTypes()))
	return nil
}
