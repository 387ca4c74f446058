package metrics

import "time"

// SessionCollector feeds session store timings into Metrics.
type SessionCollector struct {
	m *Metrics
}

func NewSessionCollector(m *Metrics) *SessionCollector {
	return &SessionCollector{m: m}
}

func (p *SessionCollector) ObserveLatency(op string, d time.Duration) {
	p.m.SessionOpDuration.WithLabelValues(op).Observe(d.Seconds())
}

func (p *SessionCollector) IncrementCounter(op, result string) {
	p.m.SessionOpsTotal.WithLabelValues(op, result).Inc()
}
