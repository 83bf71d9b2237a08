// Package metrics exposes Prometheus instrumentation for settlement runs.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "moneysplitter"

// Settlement kinds used as label values.
const (
	KindQuickSplit = "quick_split"
	KindLedger     = "ledger"
)

// Metrics records settlement activity. A nil *Metrics is valid and records
// nothing, so callers never need to check whether metrics are enabled.
type Metrics struct {
	settlements *prometheus.CounterVec
	unsettled   *prometheus.CounterVec
	payments    *prometheus.HistogramVec
	duration    *prometheus.HistogramVec
}

// New creates the settlement collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		settlements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlements_total",
			Help:      "Number of settlements computed.",
		}, []string{"kind"}),
		unsettled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlements_unsettled_total",
			Help:      "Settlements that left a non-zero residual balance.",
		}, []string{"kind"}),
		payments: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "settlement_payments",
			Help:      "Number of payments produced per settlement.",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32, 64},
		}, []string{"kind"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "settlement_duration_seconds",
			Help:      "Time spent computing a settlement.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"kind"}),
	}
	reg.MustRegister(m.settlements, m.unsettled, m.payments, m.duration)
	return m
}

// NewRegistry returns a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// ObserveSettlement records one settlement of the given kind.
func (m *Metrics) ObserveSettlement(kind string, payments int, unsettled bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.settlements.WithLabelValues(kind).Inc()
	m.payments.WithLabelValues(kind).Observe(float64(payments))
	m.duration.WithLabelValues(kind).Observe(elapsed.Seconds())
	if unsettled {
		m.unsettled.WithLabelValues(kind).Inc()
	}
}
