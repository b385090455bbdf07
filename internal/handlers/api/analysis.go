package api

import (
	"encoding/json"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	"bizlens/internal/config"
	"bizlens/internal/extractor"
	"bizlens/internal/leadscore"
	"bizlens/internal/metrics"
	"bizlens/internal/models"
	"bizlens/internal/summarizer"
	"bizlens/internal/validation"
)

// AnalysisHandler serves the text analysis operations via JSON API.
type AnalysisHandler struct {
	cfg     *config.Config
	metrics *metrics.Metrics
}

// NewAnalysisHandler creates a new API analysis handler.
func NewAnalysisHandler(cfg *config.Config, m *metrics.Metrics) *AnalysisHandler {
	return &AnalysisHandler{cfg: cfg, metrics: m}
}

// Summarize returns an extractive summary of the request text.
func (h *AnalysisHandler) Summarize(c fiber.Ctx) error {
	var body models.SummarizeRequest
	if err := h.decode(c, &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if valid, msg := validation.ValidateRequired(c.Body(), "text"); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	if valid, msg := validation.ValidateText("text", body.Text, h.cfg.MaxTextBytes); !valid {
		return jsonError(c, fiber.StatusRequestEntityTooLarge, msg)
	}
	limit := body.SentenceLimit()
	if valid, msg := validation.ValidateMaxSentences(limit, h.cfg.MaxSummarySentences); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	result := summarizer.Summarize(body.Text, limit)
	h.metrics.RecordAnalysis(metrics.OpSummarize, len(body.Text))

	return jsonResult(c, result)
}

// ExtractInvoice returns the invoice fields found in the request text.
func (h *AnalysisHandler) ExtractInvoice(c fiber.Ctx) error {
	var body models.InvoiceRequest
	if err := h.decode(c, &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if valid, msg := validation.ValidateRequired(c.Body(), "text"); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	if valid, msg := validation.ValidateText("text", body.Text, h.cfg.MaxTextBytes); !valid {
		return jsonError(c, fiber.StatusRequestEntityTooLarge, msg)
	}

	result := extractor.ExtractInvoiceFields(body.Text)
	h.metrics.RecordAnalysis(metrics.OpExtract, len(body.Text))
	h.metrics.RecordExtractedFields(result.Found())

	return jsonResult(c, result)
}

// LeadScore scores the request's sales notes.
func (h *AnalysisHandler) LeadScore(c fiber.Ctx) error {
	var body models.LeadScoreRequest
	if err := h.decode(c, &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if valid, msg := validation.ValidateRequired(c.Body(), "company", "notes"); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	if valid, msg := validation.ValidateText("notes", body.Notes, h.cfg.MaxTextBytes); !valid {
		return jsonError(c, fiber.StatusRequestEntityTooLarge, msg)
	}
	if valid, msg := validation.ValidateText("company", body.Company, h.cfg.MaxTextBytes); !valid {
		return jsonError(c, fiber.StatusRequestEntityTooLarge, msg)
	}

	result := leadscore.Score(body.Company, body.Notes)
	h.metrics.RecordAnalysis(metrics.OpLeadScore, len(body.Notes))
	h.metrics.RecordLeadScore(result.Score)

	return jsonResult(c, result)
}

func (h *AnalysisHandler) decode(c fiber.Ctx, v any) error {
	if err := json.Unmarshal(c.Body(), v); err != nil {
		slog.Debug("rejected request body",
			"path", c.Path(),
			"request_id", requestid.FromContext(c),
			"error", err,
		)
		return err
	}
	return nil
}
