package api

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"bizlens/internal/metrics"
	"bizlens/internal/testutil"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := testutil.Config()
	cfg.MaxTextBytes = 256
	cfg.MaxSummarySentences = 5
	h := NewAnalysisHandler(cfg, metrics.New())

	app := fiber.New()
	app.Post("/summarize", h.Summarize)
	app.Post("/extract-invoice", h.ExtractInvoice)
	app.Post("/lead-score", h.LeadScore)
	return app
}

func post(t *testing.T, app *fiber.App, path, body string) (int, map[string]any) {
	t.Helper()
	resp, raw := testutil.Do(t, app, "POST", path, body, nil)
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("response is not JSON: %q", raw)
	}
	return resp.StatusCode, out
}

func TestSummarize(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantKey    string
		wantValue  any
	}{
		{"default length", `{"text":"Birds sing. Cats purr. Dogs bark loudly at cats. Fish swim."}`, 200, "summary", "Cats purr. Dogs bark loudly at cats. Fish swim."},
		{"explicit length", `{"text":"Birds sing. Cats purr. Dogs bark loudly at cats.","max_sentences":1}`, 200, "summary", "Cats purr."},
		{"zero length", `{"text":"Birds sing.","max_sentences":0}`, 200, "summary", ""},
		{"empty text", `{"text":""}`, 200, "summary", ""},
		{"too many sentences", `{"text":"a","max_sentences":6}`, 400, "error", "max_sentences must be at most 5"},
		{"text too large", `{"text":"` + strings.Repeat("x", 257) + `"}`, 413, "error", "text exceeds maximum size of 256 bytes"},
		{"malformed json", `{"text":`, 400, "error", "invalid request body"},
		{"wrong type", `{"text":42}`, 400, "error", "invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, out := post(t, app, "/summarize", tt.body)
			if status != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%v)", status, tt.wantStatus, out)
			}
			if out[tt.wantKey] != tt.wantValue {
				t.Errorf("%s = %v, want %v", tt.wantKey, out[tt.wantKey], tt.wantValue)
			}
		})
	}
}

func TestExtractInvoice(t *testing.T) {
	app := newTestApp(t)

	status, out := post(t, app, "/extract-invoice",
		`{"text":"Invoice #INV-2024-001 dated 2024-03-15. Total: $1,234.56. From: Acme Corp."}`)
	if status != 200 {
		t.Fatalf("status = %d, want 200", status)
	}
	want := map[string]any{
		"invoice_number": "INV-2024-001",
		"date":           "2024-03-15",
		"total":          1234.56,
		"vendor":         "Acme Corp.",
	}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("response = %v, want %v", out, want)
	}

	status, out = post(t, app, "/extract-invoice", `{"text":"nothing to see here"}`)
	if status != 200 {
		t.Fatalf("status = %d, want 200", status)
	}
	for _, key := range []string{"invoice_number", "date", "total", "vendor"} {
		v, ok := out[key]
		if !ok {
			t.Errorf("key %q missing, want explicit null", key)
		}
		if v != nil {
			t.Errorf("%s = %v, want null", key, v)
		}
	}
}

func TestLeadScore(t *testing.T) {
	app := newTestApp(t)

	status, out := post(t, app, "/lead-score",
		`{"company":"Acme","notes":"We have an approved budget and a pilot planned, but there's no budget for Q3"}`)
	if status != 200 {
		t.Fatalf("status = %d, want 200", status)
	}
	if out["score"] != float64(16) {
		t.Errorf("score = %v, want 16", out["score"])
	}
	reasons, _ := out["reasons"].([]any)
	if len(reasons) != 4 {
		t.Errorf("len(reasons) = %d, want 4", len(reasons))
	}

	status, out = post(t, app, "/lead-score", `{"company":"","notes":""}`)
	if status != 200 {
		t.Fatalf("status = %d, want 200", status)
	}
	if out["score"] != float64(0) {
		t.Errorf("score = %v, want 0", out["score"])
	}
	if reasons, ok := out["reasons"].([]any); !ok || len(reasons) != 0 {
		t.Errorf("reasons = %v, want []", out["reasons"])
	}

	status, out = post(t, app, "/lead-score", `{"company":"Acme Holdings\nEMEA","notes":"pilot"}`)
	if status != 200 {
		t.Fatalf("multi-line company status = %d, want 200", status)
	}
	if out["score"] != float64(12) {
		t.Errorf("multi-line company score = %v, want 12", out["score"])
	}

	status, _ = post(t, app, "/lead-score", `{"company":"`+strings.Repeat("a", 201)+`","notes":""}`)
	if status != 200 {
		t.Errorf("201-byte company status = %d, want 200", status)
	}

	status, out = post(t, app, "/lead-score", `{"company":"`+strings.Repeat("a", 257)+`","notes":""}`)
	if status != 413 {
		t.Errorf("oversized company status = %d, want 413", status)
	}
	if out["error"] != "company exceeds maximum size of 256 bytes" {
		t.Errorf("oversized company error = %v", out["error"])
	}
}

func TestMissingRequiredFields(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name    string
		path    string
		body    string
		wantMsg string
	}{
		{"summarize without text", "/summarize", `{"max_sentences":2}`, "text is required"},
		{"summarize null text", "/summarize", `{"text":null}`, "text is required"},
		{"extract without text", "/extract-invoice", `{}`, "text is required"},
		{"lead without company", "/lead-score", `{"notes":"pilot"}`, "company is required"},
		{"lead without notes", "/lead-score", `{"company":"Acme"}`, "notes is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, out := post(t, app, tt.path, tt.body)
			if status != 400 {
				t.Errorf("status = %d, want 400", status)
			}
			if out["error"] != tt.wantMsg {
				t.Errorf("error = %v, want %q", out["error"], tt.wantMsg)
			}
		})
	}
}
