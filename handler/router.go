// Package handler exposes the ScamAware Jersey HTTP API: scam-category and
// warning-sign content, the report-a-scam form, the dismissible emergency
// banner, and health probes.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/scamaware/jersey/banner"
	"github.com/scamaware/jersey/content"
	"github.com/scamaware/jersey/pkg/email"
	"github.com/scamaware/jersey/pkg/httpserver"
)

// Config carries the collaborators the router needs.
type Config struct {
	Logger  *slog.Logger
	Content *content.Store
	Banner  *banner.Service
	Mailer  email.Sender

	// ReportRecipient receives scam-report notifications.
	ReportRecipient string

	// ReadyChecks are probed by GET /health/ready.
	ReadyChecks []func(context.Context) error
}

// New builds the API router.
func New(cfg Config) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		respondData(w, http.StatusOK, map[string]string{
			"service": "scamaware-jersey",
			"status":  "ok",
		})
	})

	r.Get("/health", httpserver.HealthCheckHandler(log, cfg.ReadyChecks...))
	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, cfg.ReadyChecks...))

	r.Route("/api/v1", func(r chi.Router) {
		ch := contentHandler{store: cfg.Content}
		r.Get("/scams", ch.listCategories)
		r.Get("/scams/{slug}", ch.getCategory)
		r.Get("/warning-signs", ch.listWarningSigns)
		r.Get("/help", ch.listHelpResources)

		rh := reportHandler{
			log:       log,
			store:     cfg.Content,
			mailer:    cfg.Mailer,
			recipient: cfg.ReportRecipient,
		}
		r.Post("/report", rh.submit)

		bh := bannerHandler{service: cfg.Banner}
		r.Get("/banner", bh.status)
		r.Post("/banner/dismiss", bh.dismiss)
		r.Post("/banner/restore", bh.restore)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, "not_found", "Resource not found")
	})

	return r
}
