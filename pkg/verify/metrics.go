package verify

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes cache activity as Prometheus collectors. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	rebuilds      *prometheus.CounterVec
	revalidations prometheus.Counter
	failingCells  prometheus.Gauge
	patternErrors prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		rebuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sheetverify",
			Name:      "rebuilds_total",
			Help:      "Cache rebuilds by scope (sheet or column).",
		}, []string{"scope"}),
		revalidations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sheetverify",
			Name:      "revalidations_total",
			Help:      "Single cell revalidations.",
		}),
		failingCells: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sheetverify",
			Name:      "failing_cells",
			Help:      "Cells currently failing at least one rule.",
		}),
		patternErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sheetverify",
			Name:      "pattern_errors_total",
			Help:      "Distinct rule patterns that failed to compile or match.",
		}),
	}

	if reg != nil {
		var errs []error
		for _, c := range []prometheus.Collector{m.rebuilds, m.revalidations, m.failingCells, m.patternErrors} {
			if err := reg.Register(c); err != nil {
				errs = append(errs, err)
			}
		}
		if err := errors.Join(errs...); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) rebuilt(scope string, failing int) {
	if m == nil {
		return
	}
	m.rebuilds.WithLabelValues(scope).Inc()
	m.failingCells.Set(float64(failing))
}

func (m *Metrics) revalidated(failing int) {
	if m == nil {
		return
	}
	m.revalidations.Inc()
	m.failingCells.Set(float64(failing))
}

func (m *Metrics) pruned(failing int) {
	if m == nil {
		return
	}
	m.failingCells.Set(float64(failing))
}

func (m *Metrics) malformedPattern() {
	if m == nil {
		return
	}
	m.patternErrors.Inc()
}
