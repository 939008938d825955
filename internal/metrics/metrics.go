// Package metrics exposes counters for logins and content mutations.
package metrics

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	LoginAttempts    *prometheus.CounterVec
	ContentMutations *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		LoginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "story_service_login_attempts_total",
			Help: "Login attempts by variant and result.",
		}, []string{"variant", "result"}),
		ContentMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "story_service_content_mutations_total",
			Help: "Persisted content mutations by variant and operation.",
		}, []string{"variant", "op"}),
	}

	if reg != nil {
		reg.MustRegister(m.LoginAttempts, m.ContentMutations)
	}

	return m
}

// Login is safe to call on a nil *Metrics.
func (m *Metrics) Login(variant string, ok bool) {
	if m == nil {
		return
	}
	result := "failure"
	if ok {
		result = "success"
	}
	m.LoginAttempts.WithLabelValues(variant, result).Inc()
}

func (m *Metrics) Mutation(variant string, op string) {
	if m == nil {
		return
	}
	m.ContentMutations.WithLabelValues(variant, op).Inc()
}
