package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	SignaturesRecorded prometheus.Counter
	SignRaceLosses     prometheus.Counter
	OrphanedSignings   prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		SignaturesRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "contractease_signatures_recorded_total",
			Help: "Total number of signatures recorded",
		}),
		SignRaceLosses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "contractease_sign_race_losses_total",
			Help: "Sign attempts that lost the conditional update race",
		}),
		OrphanedSignings: promauto.NewCounter(prometheus.CounterOpts{
			Name: "contractease_orphaned_signings_total",
			Help: "Contracts marked signed whose signature insert then failed",
		}),
	}
}

func (m *Metrics) IncrementSignaturesRecorded() {
	m.SignaturesRecorded.Inc()
}

func (m *Metrics) IncrementSignRaceLoss() {
	m.SignRaceLosses.Inc()
}

func (m *Metrics) IncrementOrphanedSigning() {
	m.OrphanedSignings.Inc()
}
