package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the prometheus collectors for the ingestion pipeline.
type Metrics struct {
	ingested  prometheus.Counter
	rejected  *prometheus.CounterVec
	validated *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors on the given registerer.
// Pass prometheus.DefaultRegisterer for the standard /metrics endpoint.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ingested: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sieve_documents_ingested_total",
			Help: "Total number of documents accepted into the store",
		}),
		rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sieve_documents_rejected_total",
				Help: "Total number of documents rejected, by reason",
			},
			[]string{"reason"},
		),
		validated: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "sieve_validation_duration_seconds",
				Help: "Duration of document validation",
			},
			[]string{"outcome"},
		),
	}
	reg.MustRegister(m.ingested, m.rejected, m.validated)
	return m
}

// ObserveValidation records one validation call.
func (m *Metrics) ObserveValidation(valid bool, took time.Duration) {
	if m == nil {
		return
	}
	outcome := "valid"
	if !valid {
		outcome = "invalid"
	}
	m.validated.WithLabelValues(outcome).Observe(took.Seconds())
}

// DocumentIngested records one accepted document.
func (m *Metrics) DocumentIngested() {
	if m == nil {
		return
	}
	m.ingested.Inc()
}

// DocumentRejected records one rejected document with its reason
// ("schema_mismatch", "invalid_vector", "invalid_id", "store_error").
func (m *Metrics) DocumentRejected(reason string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(reason).Inc()
}
