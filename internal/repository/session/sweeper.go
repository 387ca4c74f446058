package session

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

type sweepable interface {
	Sweep(maxIdle time.Duration) int
}

// Sweeper periodically drops idle in-memory sessions.
type Sweeper struct {
	store   sweepable
	maxIdle time.Duration
	spec    string
	cron    *cron.Cron
	logger  zerolog.Logger
}

func NewSweeper(store sweepable, spec string, maxIdle time.Duration, logger zerolog.Logger) *Sweeper {
	logger = logger.With().Str("component", "SessionSweeper").Logger()
	return &Sweeper{
		store:   store,
		maxIdle: maxIdle,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger,
	}
}

func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.RunOnce); err != nil {
		s.logger.Error().Err(err).Str("spec", s.spec).Msg("failed to schedule session sweep")
		return err
	}
	s.cron.Start()
	s.logger.Info().Str("spec", s.spec).Msg("session sweeper started")
	return nil
}

func (s *Sweeper) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.logger.Info().Msg("session sweeper stopped")
}

// RunOnce sweeps idle sessions immediately.
func (s *Sweeper) RunOnce() {
	removed := s.store.Sweep(s.maxIdle)
	s.logger.Debug().Int("removed", removed).Msg("idle sessions swept")
}
