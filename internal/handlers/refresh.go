package handlers

import (
	"github.com/gofiber/fiber/v3"

	"cvetrack/internal/tracker"
)

// RefreshHandler triggers a synchronous feed refresh.
type RefreshHandler struct {
	tracker *tracker.Tracker
}

// NewRefreshHandler creates a new refresh handler.
func NewRefreshHandler(t *tracker.Tracker) *RefreshHandler {
	return &RefreshHandler{tracker: t}
}

// Refresh runs the tracker, flashes its message, and redirects home.
// Success and failure both land on the listing; the message tells which.
func (h *RefreshHandler) Refresh(c fiber.Ctx) error {
	setFlash(c, h.tracker.Run(c.Context()))
	return c.Redirect().To("/")
}
