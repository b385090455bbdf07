package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bizlens/internal/leadscore"
)

// Operation labels.
const (
	OpSummarize = "summarize"
	OpExtract   = "extract_invoice"
	OpLeadScore = "lead_score"
)

var signalCatalogDesc = prometheus.NewDesc(
	"bizlens_signal_catalog_entries",
	"Number of lead scoring phrases by polarity",
	[]string{"polarity"},
	nil,
)

// CatalogCollector reports the size of the lead scoring catalogs on each scrape.
type CatalogCollector struct{}

// Describe sends the metric descriptor to the channel.
func (CatalogCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- signalCatalogDesc
}

// Collect emits one gauge per catalog.
func (CatalogCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(signalCatalogDesc, prometheus.GaugeValue,
		float64(len(leadscore.PositiveSignals())), "positive")
	ch <- prometheus.MustNewConstMetric(signalCatalogDesc, prometheus.GaugeValue,
		float64(len(leadscore.NegativeSignals())), "negative")
}

// Metrics records analysis activity. A nil *Metrics discards everything.
type Metrics struct {
	registry   *prometheus.Registry
	analyses   *prometheus.CounterVec
	inputBytes *prometheus.HistogramVec
	fields     *prometheus.CounterVec
	leadScore  prometheus.Histogram
	storageUp  prometheus.Gauge
}

// New creates the collectors and registers them on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bizlens_analyses_total",
			Help: "Total analyses served by operation",
		}, []string{"operation"}),
		inputBytes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bizlens_input_bytes",
			Help:    "Size of analysed text in bytes",
			Buckets: prometheus.ExponentialBuckets(64, 4, 7),
		}, []string{"operation"}),
		fields: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bizlens_extracted_fields_total",
			Help: "Invoice fields found by extraction",
		}, []string{"field"}),
		leadScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bizlens_lead_score",
			Help:    "Distribution of lead scores",
			Buckets: prometheus.LinearBuckets(-30, 10, 10),
		}),
		storageUp: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bizlens_storage_up",
			Help: "Whether the rate limit storage answered its last ping",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		CatalogCollector{},
		m.analyses,
		m.inputBytes,
		m.fields,
		m.leadScore,
		m.storageUp,
	)
	return m
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordAnalysis counts one analysis of inputBytes bytes.
func (m *Metrics) RecordAnalysis(operation string, inputBytes int) {
	if m == nil {
		return
	}
	m.analyses.WithLabelValues(operation).Inc()
	m.inputBytes.WithLabelValues(operation).Observe(float64(inputBytes))
}

// RecordExtractedFields counts each field an extraction found.
func (m *Metrics) RecordExtractedFields(fields []string) {
	if m == nil {
		return
	}
	for _, f := range fields {
		m.fields.WithLabelValues(f).Inc()
	}
}

// RecordLeadScore observes a computed lead score.
func (m *Metrics) RecordLeadScore(score int) {
	if m == nil {
		return
	}
	m.leadScore.Observe(float64(score))
}

// SetStorageUp records the result of a storage health check.
func (m *Metrics) SetStorageUp(up bool) {
	if m == nil {
		return
	}
	if up {
		m.storageUp.Set(1)
	} else {
		m.storageUp.Set(0)
	}
}
