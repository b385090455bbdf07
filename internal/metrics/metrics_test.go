package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_RecordAnalysis(t *testing.T) {
	m := New()
	m.RecordAnalysis(OpSummarize, 120)
	m.RecordAnalysis(OpSummarize, 80)
	m.RecordAnalysis(OpLeadScore, 10)

	if got := testutil.ToFloat64(m.analyses.WithLabelValues(OpSummarize)); got != 2 {
		t.Errorf("summarize count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.analyses.WithLabelValues(OpLeadScore)); got != 1 {
		t.Errorf("lead_score count = %v, want 1", got)
	}
}

func TestMetrics_RecordExtractedFields(t *testing.T) {
	m := New()
	m.RecordExtractedFields([]string{"invoice_number", "total"})
	m.RecordExtractedFields([]string{"total"})

	if got := testutil.ToFloat64(m.fields.WithLabelValues("total")); got != 2 {
		t.Errorf("total count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.fields.WithLabelValues("vendor")); got != 0 {
		t.Errorf("vendor count = %v, want 0", got)
	}
}

func TestMetrics_SetStorageUp(t *testing.T) {
	m := New()
	m.SetStorageUp(true)
	if got := testutil.ToFloat64(m.storageUp); got != 1 {
		t.Errorf("storage_up = %v, want 1", got)
	}
	m.SetStorageUp(false)
	if got := testutil.ToFloat64(m.storageUp); got != 0 {
		t.Errorf("storage_up = %v, want 0", got)
	}
}

func TestCatalogCollector(t *testing.T) {
	if got := testutil.CollectAndCount(CatalogCollector{}); got != 2 {
		t.Errorf("CatalogCollector emitted %d metrics, want 2", got)
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.RecordAnalysis(OpExtract, 1)
	m.RecordExtractedFields([]string{"date"})
	m.RecordLeadScore(5)
	m.SetStorageUp(true)
}
