package models

import "bizlens/internal/summarizer"

// SummarizeRequest is the body of POST /summarize.
type SummarizeRequest struct {
	Text         string `json:"text"`
	MaxSentences *int   `json:"max_sentences,omitempty"` // nil means the default
}

// SentenceLimit returns the requested summary length, applying the default
// when the field was omitted.
func (r SummarizeRequest) SentenceLimit() int {
	if r.MaxSentences == nil {
		return summarizer.DefaultMaxSentences
	}
	return *r.MaxSentences
}

// InvoiceRequest is the body of POST /extract-invoice.
type InvoiceRequest struct {
	Text string `json:"text"`
}

// LeadScoreRequest is the body of POST /lead-score.
type LeadScoreRequest struct {
	Company string `json:"company"`
	Notes   string `json:"notes"`
}
