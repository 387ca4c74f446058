package session

import (
	"context"
	"errors"
	"time"

	"github.com/onja-org/w2-scss-lab/internal/models"
)

type metricsCollector interface {
	ObserveLatency(operation string, duration time.Duration)
	IncrementCounter(operation, result string)
}

type MetricsDecorator struct {
	next      Store
	collector metricsCollector
}

func NewMetricsDecorator(next Store, collector metricsCollector) *MetricsDecorator {
	return &MetricsDecorator{next: next, collector: collector}
}

func (m *MetricsDecorator) Save(ctx context.Context, id string, state models.WidgetState) error {
	start := time.Now()
	err := m.next.Save(ctx, id, state)
	m.observe("session_save", start, err)
	return err
}

func (m *MetricsDecorator) Load(ctx context.Context, id string) (models.WidgetState, error) {
	start := time.Now()
	state, err := m.next.Load(ctx, id)
	m.observe("session_load", start, err)
	return state, err
}

func (m *MetricsDecorator) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := m.next.Delete(ctx, id)
	m.observe("session_delete", start, err)
	return err
}

func (m *MetricsDecorator) observe(op string, start time.Time, err error) {
	m.collector.ObserveLatency(op, time.Since(start))
	switch {
	case err == nil:
		m.collector.IncrementCounter(op, "success")
	case errors.Is(err, ErrSessionNotFound):
		m.collector.IncrementCounter(op, "miss")
	default:
		m.collector.IncrementCounter(op, "error")
	}
}
