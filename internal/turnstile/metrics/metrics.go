package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the turnstile module. All methods are
// nil-safe so tests can pass a nil *Metrics.
type Metrics struct {
	// Granted passages by category
	Passes *prometheus.CounterVec

	// Refused passages by category and denial kind
	Denials *prometheus.CounterVec

	// Cards issued by variant
	CardsIssued *prometheus.CounterVec

	// Latency of a full presentation event
	PresentLatency prometheus.Histogram
}

// New creates a Metrics instance with all turnstile metrics registered.
func New() *Metrics {
	return &Metrics{
		Passes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "faregate_passes_total",
			Help: "Total granted passages by card category",
		}, []string{"category"}),

		Denials: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "faregate_denials_total",
			Help: "Total refused passages by card category and denial kind",
		}, []string{"category", "kind"}),

		CardsIssued: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "faregate_cards_issued_total",
			Help: "Total cards issued by variant",
		}, []string{"variant"}),

		PresentLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "faregate_present_duration_seconds",
			Help:    "Duration of a full card presentation event",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
	}
}

// IncrementPass records a granted passage.
func (m *Metrics) IncrementPass(category string) {
	if m != nil {
		m.Passes.WithLabelValues(category).Inc()
	}
}

// IncrementDenial records a refused passage.
func (m *Metrics) IncrementDenial(category, kind string) {
	if m != nil {
		m.Denials.WithLabelValues(category, kind).Inc()
	}
}

// IncrementCardsIssued records a successful issuance.
func (m *Metrics) IncrementCardsIssued(variant string) {
	if m != nil {
		m.CardsIssued.WithLabelValues(variant).Inc()
	}
}

// ObservePresentLatency records the duration of a presentation event.
func (m *Metrics) ObservePresentLatency(d time.Duration) {
	if m != nil {
		m.PresentLatency.Observe(d.Seconds())
	}
}
