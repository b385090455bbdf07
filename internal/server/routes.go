package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/limiter"

	"bizlens/internal/handlers"
	"bizlens/internal/handlers/api"
	"bizlens/internal/middleware"
	"bizlens/internal/models"
)

// Analysis route paths. They are served at the root and under /api/v1.
const (
	RouteSummarize      = "/summarize"
	RouteExtractInvoice = "/extract-invoice"
	RouteLeadScore      = "/lead-score"
)

// RegisterRoutes registers all application routes. A nil checker makes
// the readiness probe always succeed.
func (s *Server) RegisterRoutes(ctx context.Context, checker handlers.ReadinessChecker) error {
	verifier := s.Verifier
	if verifier == nil && s.Cfg.AuthEnabled() {
		oidcVerifier, err := middleware.NewOIDCVerifier(ctx, s.Cfg)
		if err != nil {
			return err
		}
		verifier = oidcVerifier
	}
	if verifier == nil {
		log.Println("OIDC authentication is disabled. Set OIDC_ISSUER to enable.")
	}

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(verifier)

	// Initialize handlers
	analysisHandler := api.NewAnalysisHandler(s.Cfg, s.Metrics)
	probeHandler := handlers.NewProbeHandler(checker)

	// Probes and service info - never authenticated or rate limited
	s.App.Get("/", handlers.Root)
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)

	if s.Cfg.MetricsEnabled && s.Metrics != nil {
		s.App.Get("/metrics", adaptor.HTTPHandler(s.Metrics.Handler()))
	}

	analysis := []struct {
		path    string
		handler fiber.Handler
	}{
		{RouteSummarize, analysisHandler.Summarize},
		{RouteExtractInvoice, analysisHandler.ExtractInvoice},
		{RouteLeadScore, analysisHandler.LeadScore},
	}

	v1 := s.App.Group("/api/v1")
	for _, r := range analysis {
		limit := s.rateLimiter(r.path)
		s.App.Post(r.path, limit, authMiddleware.RequireAuth, r.handler)
		v1.Post(r.path, limit, authMiddleware.RequireAuth, r.handler)
	}

	return nil
}

// rateLimiter limits requests per client IP for one analysis route. Both
// mounts of a route share the budget.
func (s *Server) rateLimiter(route string) fiber.Handler {
	rl := s.Cfg.LimitFor(route)
	return limiter.New(limiter.Config{
		Max:        rl.Max,
		Expiration: rl.Window,
		KeyGenerator: func(c fiber.Ctx) string {
			return route + ":" + c.IP()
		},
		LimitReached: func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(models.ErrorResponse{
				Status: models.StatusError,
				Error:  "Rate limit exceeded. Please try again later.",
			})
		},
		Storage: s.Storage,
	})
}
