package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

type metrics struct {
	executed        *prometheus.CounterVec
	batchStatements prometheus.Histogram
}

func newMetrics(r prometheus.Registerer) *metrics {
	return &metrics{
		executed: promauto.With(r).NewCounterVec(prometheus.CounterOpts{
			Name: "astcql_statements_executed_total",
			Help: "Total number of statements executed, by statement kind and outcome.",
		}, []string{"kind", "outcome"}),
		batchStatements: promauto.With(r).NewHistogram(prometheus.HistogramOpts{
			Name:    "astcql_batch_statements",
			Help:    "Number of statements per executed batch.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 8),
		}),
	}
}

func (m *metrics) observe(req *Request, err error) {
	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeFailure
	}
	m.executed.WithLabelValues(req.Kind, outcome).Inc()
	if req.Kind == KindBatch {
		m.batchStatements.Observe(float64(req.Statements))
	}
}
