package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/yourorg/property-insight-api/internal/config"
	"github.com/yourorg/property-insight-api/internal/logger"
	"github.com/yourorg/property-insight-api/internal/property"
	"github.com/yourorg/property-insight-api/internal/summary"
	"github.com/yourorg/property-insight-api/zillow"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	var lookup property.Lookup
	if cfg.Property.Fixture != "" {
		log.Warn("serving property lookups from fixture", zap.String("path", cfg.Property.Fixture))
		lookup = zillow.Fixture{Path: cfg.Property.Fixture}
	} else {
		lookup = zillow.NewClient(zillow.Config{
			Host:    cfg.Property.Host,
			Key:     cfg.Property.Key,
			BaseURL: cfg.Property.BaseURL,
			Timeout: cfg.Property.Timeout,
		}, log)
	}

	if cfg.OpenAI.APIKey == "" {
		log.Warn("OPENAI_API_KEY not set; summaries will return a fixed error message")
	}
	generator := summary.NewGenerator(summary.Config{
		APIKey:  cfg.OpenAI.APIKey,
		Model:   cfg.OpenAI.Model,
		BaseURL: cfg.OpenAI.BaseURL,
		Timeout: cfg.OpenAI.Timeout,
	}, log)

	router := BuildRouter(RouterDeps{
		Normalizer: property.NewNormalizer(lookup, log),
		Generator:  generator,
		Logger:     log,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("property-insight-api listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", zap.Error(err))
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", zap.Error(err))
		}
	}
}
