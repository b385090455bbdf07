// Package testutil provides test utilities and helpers.
package testutil

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"

	"bizlens/internal/config"
)

// Config returns a configuration suitable for handler tests: small limits,
// generous rate limits, metrics on, auth off.
func Config() *config.Config {
	return &config.Config{
		Env:                 "test",
		CORSOrigins:         "*",
		MaxTextBytes:        1024,
		MaxSummarySentences: 10,
		RateLimitMax:        100,
		RateLimitWindow:     time.Minute,
		MetricsEnabled:      true,
	}
}

// Do sends a request to app and returns the response with its body read.
// A non-empty body is sent as JSON.
func Do(t *testing.T, app *fiber.App, method, path, body string, header http.Header) (*http.Response, []byte) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, path, r)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return resp, raw
}
