package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricNamespace = "access"

type metricCollector struct {
	requestsCreated prometheus.Counter
	transitions     *prometheus.CounterVec
	logins          *prometheus.CounterVec
}

func newMetricCollector(reg prometheus.Registerer) (*metricCollector, error) {
	m := &metricCollector{
		requestsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "requests_created_total",
			Help:      "Number of access requests created.",
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "request_transitions_total",
			Help:      "Review attempts by action and result.",
		}, []string{"action", "result"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "login_attempts_total",
			Help:      "Login attempts by result.",
		}, []string{"result"}),
	}
	for _, c := range []prometheus.Collector{m.requestsCreated, m.transitions, m.logins} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

const (
	resultApplied           = "applied"
	resultInvalidTransition = "invalid_transition"
	resultNotFound          = "not_found"
	resultError             = "error"

	loginSuccess = "success"
	loginFailure = "failure"
)
