package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cvetrack/internal/handlers"
	"cvetrack/internal/handlers/api"
	"cvetrack/internal/store"
	"cvetrack/internal/tracker"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(repo store.Repository, meta *store.RefreshMeta, t *tracker.Tracker) {
	// Initialize handlers
	recordHandler := handlers.NewRecordHandler(repo, meta, s.Cfg)
	refreshHandler := handlers.NewRefreshHandler(t)
	probeHandler := handlers.NewProbeHandler(s.Cfg)
	apiRecordHandler := api.NewRecordHandler(repo, meta)

	// Listing and refresh
	s.App.Get("/", recordHandler.Index)
	s.App.Get("/refresh", refreshHandler.Refresh)

	// JSON API
	s.App.Get("/api/records", apiRecordHandler.List)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
