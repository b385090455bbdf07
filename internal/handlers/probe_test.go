package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"

	"bizlens/internal/models"
)

type stubChecker struct{ err error }

func (s stubChecker) Ready() error { return s.err }

func TestProbeHandler(t *testing.T) {
	tests := []struct {
		name       string
		checker    ReadinessChecker
		path       string
		wantStatus int
		wantBody   string
	}{
		{"liveness", nil, "/healthz", fiber.StatusOK, models.StatusOK},
		{"ready without dependencies", nil, "/readyz", fiber.StatusOK, models.StatusOK},
		{"ready with healthy storage", stubChecker{}, "/readyz", fiber.StatusOK, models.StatusOK},
		{"storage down", stubChecker{err: errors.New("dial tcp: refused")}, "/readyz", fiber.StatusServiceUnavailable, models.StatusError},
		{"liveness ignores storage", stubChecker{err: errors.New("down")}, "/healthz", fiber.StatusOK, models.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewProbeHandler(tt.checker)
			app := fiber.New()
			app.Get("/healthz", h.Liveness)
			app.Get("/readyz", h.Readiness)

			req, _ := http.NewRequest("GET", tt.path, nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			body, _ := io.ReadAll(resp.Body)
			var probe models.ProbeResponse
			if err := json.Unmarshal(body, &probe); err != nil {
				t.Fatalf("invalid body %q: %v", body, err)
			}
			if probe.Status != tt.wantBody {
				t.Errorf("status field = %q, want %q", probe.Status, tt.wantBody)
			}
		})
	}
}

func TestRoot(t *testing.T) {
	app := fiber.New()
	app.Get("/", Root)

	req, _ := http.NewRequest("GET", "/", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var msg models.MessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if msg.Message != RootMessage {
		t.Errorf("message = %q, want %q", msg.Message, RootMessage)
	}
}
