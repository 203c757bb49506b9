package normalizer

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "normalizer_requests_total",
			Help: "Inference calls attempted by the normalizer",
		},
	)
	failuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "normalizer_failures_total",
			Help: "Inference calls that produced no drafts, by reason",
		},
		[]string{"reason"},
	)
	draftsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "normalizer_drafts_total",
			Help: "Task drafts extracted from natural-language input",
		},
	)
)

func init() {
	prometheus.MustRegister(requestsTotal)
	prometheus.MustRegister(failuresTotal)
	prometheus.MustRegister(draftsTotal)
}
