package handlers

import (
	"github.com/gofiber/fiber/v3"

	"bizlens/internal/models"
)

// ReadinessChecker reports whether a dependency can serve traffic.
type ReadinessChecker interface {
	Ready() error
}

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	checker ReadinessChecker
}

// NewProbeHandler creates a new probe handler. A nil checker means the
// service has no dependencies and is always ready.
func NewProbeHandler(checker ReadinessChecker) *ProbeHandler {
	return &ProbeHandler{checker: checker}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(models.ProbeResponse{Status: models.StatusOK})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 503 while the rate limit storage is unreachable.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if h.checker != nil {
		if err := h.checker.Ready(); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(models.ProbeResponse{
				Status: models.StatusError,
				Error:  "storage unavailable",
			})
		}
	}

	return c.JSON(models.ProbeResponse{Status: models.StatusOK})
}
