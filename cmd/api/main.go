package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	apphttp "phonedesk/internal/http"
	"phonedesk/internal/http/router"
	"phonedesk/internal/phone"
	"phonedesk/internal/phone/region"
	"phonedesk/platform/config"
	"phonedesk/platform/logger"
	"phonedesk/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The region registry is the only startup-time state: the closed set of
	// country-scoped parsing variants the library ships.
	registry := region.NewRegistry()
	log.Info("region registry loaded", "regions", registry.Count())

	// Shared validator instance for dependency injection
	val := validator.New()

	phoneModule := phone.NewModule(registry, val, cfg, log)

	app := &apphttp.App{
		Config:    cfg,
		Logger:    log,
		Readiness: registry,
		Modules: []apphttp.Module{
			phoneModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}
