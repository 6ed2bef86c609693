package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	ContractsCreated    prometheus.Counter
	StatusTransitions   *prometheus.CounterVec
	TransitionConflicts prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		ContractsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "contractease_contracts_created_total",
			Help: "Total number of contracts created",
		}),
		StatusTransitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "contractease_contract_transitions_total",
			Help: "Total number of successful contract status transitions",
		}, []string{"from", "to"}),
		TransitionConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "contractease_contract_transition_conflicts_total",
			Help: "Conditional status updates that matched no document (lost race or stale state)",
		}),
	}
}

func (m *Metrics) IncrementContractsCreated() {
	m.ContractsCreated.Inc()
}

func (m *Metrics) IncrementTransition(from, to string) {
	m.StatusTransitions.WithLabelValues(from, to).Inc()
}

func (m *Metrics) IncrementTransitionConflict() {
	m.TransitionConflicts.Inc()
}
