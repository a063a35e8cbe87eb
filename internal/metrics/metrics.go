// Package metrics exposes the Coordinator's Prometheus metrics
// (SPEC_FULL.md §4.8, a domain-stack addition not present in the
// distilled spec): one gauge for the published external state and
// counters for test results, cycles, and softerrors, all served by
// internal/uiserver at /metrics.
//
// Grounded on the examples pack's long-running-control-loop metrics style
// (muster's internal/aggregator/auth_metrics.go), adapted to the cell's
// own external-state set.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// States lists every externally-published Coordinator state, matching
// spec §4.5's state publication rules (testing.* collapsed to "testing").
var States = []string{
	"startup", "connecting", "initialized", "loading", "ready",
	"testing", "unloading", "error", "softerror",
}

// Metrics is the set of Prometheus collectors the coordinator updates as
// it runs. Register them with a prometheus.Registerer at startup.
type Metrics struct {
	MasterState        *prometheus.GaugeVec
	SiteTestresults     prometheus.Counter
	Cycles              prometheus.Counter
	Softerrors          prometheus.Counter
}

// New constructs a Metrics set with unregistered collectors.
func New() *Metrics {
	return &Metrics{
		MasterState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "cellmaster_master_state",
			Help: "1 for the currently published external state, 0 for all others.",
		}, []string{"state"}),
		SiteTestresults: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cellmaster_site_testresults_total",
			Help: "Total number of testapp_testresult messages processed.",
		}),
		Cycles: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cellmaster_cycles_total",
			Help: "Total number of test cycles completed (testing.completed -> ready).",
		}),
		Softerrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cellmaster_softerrors_total",
			Help: "Total number of transitions into the softerror state.",
		}),
	}
}

// Register adds every collector to reg.
func (m *Metrics) Register(reg prometheus.Registerer) {
	reg.MustRegister(m.MasterState, m.SiteTestresults, m.Cycles, m.Softerrors)
	for _, s := range States {
		m.MasterState.WithLabelValues(s).Set(0)
	}
}

// SetState marks state as the current one (1) and every other known state
// as inactive (0), matching the gauge semantics documented in
// SPEC_FULL.md §4.8.
func (m *Metrics) SetState(state string) {
	for _, s := range States {
		if s == state {
			m.MasterState.WithLabelValues(s).Set(1)
		} else {
			m.MasterState.WithLabelValues(s).Set(0)
		}
	}
}
