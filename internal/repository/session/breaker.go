package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"github.com/onja-org/w2-scss-lab/internal/models"
)

type BreakerConfig struct {
	TimeInterval time.Duration
	TimeTimeOut  time.Duration
	RepeatNumber uint32
}

// BreakerStore stops calling a failing backend until the breaker half-opens.
// A missing session is a normal answer and does not count as a failure.
type BreakerStore struct {
	name    string
	cb      *gobreaker.CircuitBreaker
	wrapped Store
}

func NewBreakerStore(name string, cfg BreakerConfig, wrapped Store) *BreakerStore {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    cfg.TimeInterval,
		Timeout:     cfg.TimeTimeOut,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.RepeatNumber
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrSessionNotFound)
		},
	}
	return &BreakerStore{
		name:    name,
		cb:      gobreaker.NewCircuitBreaker(settings),
		wrapped: wrapped,
	}
}

func (b *BreakerStore) Save(ctx context.Context, id string, state models.WidgetState) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.wrapped.Save(ctx, id, state)
	})
	return b.wrap(err)
}

func (b *BreakerStore) Load(ctx context.Context, id string) (models.WidgetState, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.wrapped.Load(ctx, id)
	})
	if err != nil {
		return models.WidgetState{}, b.wrap(err)
	}
	state, ok := result.(models.WidgetState)
	if !ok {
		return models.WidgetState{}, fmt.Errorf("%s returned unexpected result", b.name)
	}
	return state, nil
}

func (b *BreakerStore) Delete(ctx context.Context, id string) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.wrapped.Delete(ctx, id)
	})
	return b.wrap(err)
}

func (b *BreakerStore) wrap(err error) error {
	if err == nil || errors.Is(err, ErrSessionNotFound) {
		return err
	}
	return fmt.Errorf("%s unavailable: %w", b.name, err)
}
