package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"promissa/internal/intake/handler"
	intakemetrics "promissa/internal/intake/metrics"
	"promissa/internal/intake/service"
	"promissa/internal/intake/store/session"
	"promissa/internal/intake/token"
	"promissa/internal/platform/config"
	"promissa/internal/platform/health"
	"promissa/internal/platform/logger"
	"promissa/internal/sequence"
	"promissa/pkg/platform/middleware/device"
	"promissa/pkg/platform/middleware/request"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.Environment)

	log.Info("initializing promissa",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
	)

	catalog, err := sequence.Load()
	if err != nil {
		log.Error("failed to load questionnaire catalog", "error", err)
		os.Exit(1)
	}

	sessions := session.New()
	tokens := token.NewService(cfg.JWTSigningKey, cfg.ResumeTokenTTL)

	intake := service.NewService(sessions, catalog, tokens, log,
		service.WithLogger(log),
		service.WithMetrics(intakemetrics.New()),
	)

	router := chi.NewRouter()
	router.Use(request.Recovery(log))
	router.Use(request.RequestID)
	router.Use(request.Logger(log))
	router.Use(request.LatencyMiddleware(request.NewMetrics()))
	router.Use(device.Middleware)
	router.Use(request.ContentTypeJSON)

	healthHandler := health.New(cfg.Environment)
	healthHandler.RegisterCheck("session_store", func() error {
		_, err := sessions.Count(context.Background())
		return err
	})
	healthHandler.Register(router)

	router.Handle("/metrics", promhttp.Handler())
	handler.New(intake, log).Register(router)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
