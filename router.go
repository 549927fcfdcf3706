package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	httpapi "github.com/yourorg/property-insight-api/http"
	"github.com/yourorg/property-insight-api/internal/logger"
	"github.com/yourorg/property-insight-api/internal/metrics"
)

type RouterDeps struct {
	Normalizer httpapi.Normalizer
	Generator  httpapi.SummaryGenerator
	Logger     *zap.Logger
}

func BuildRouter(d RouterDeps) http.Handler {
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logger.Middleware(log.Named("http")))
	r.Use(metrics.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]any{"ok": true})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	api := func(r chi.Router) {
		httpapi.RegisterProperty(r, httpapi.PropertyDeps{Normalizer: d.Normalizer, Logger: log})
		httpapi.RegisterSummary(r, httpapi.SummaryDeps{Generator: d.Generator, Logger: log})
	}
	api(r)
	// the browser client posts under /api
	r.Route("/api", api)

	return r
}
