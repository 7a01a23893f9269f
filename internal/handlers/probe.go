package handlers

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v3"

	"cvetrack/internal/config"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	cfg *config.Config
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(cfg *config.Config) *ProbeHandler {
	return &ProbeHandler{cfg: cfg}
}

// Liveness handles the /healthz endpoint.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint.
// Returns 200 OK if the data directory backing the store is accessible.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	dir := filepath.Dir(h.cfg.StorePath)
	if _, err := os.Stat(dir); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "data directory unavailable",
		})
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
