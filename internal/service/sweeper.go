package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type IdleEvicter interface {
	EvictIdle(ttl time.Duration) int
}

// SessionSweeper drops play sessions that have been idle for too long.
// Progress is kept in the database, so an evicted player resumes with /play.
type SessionSweeper struct {
	sessions IdleEvicter
	ttl      time.Duration
	schedule string
	logger   *zap.Logger
}

// NewSessionSweeper creates a sweeper running on a cron schedule such as
// "@every 10m".
func NewSessionSweeper(sessions IdleEvicter, ttl time.Duration, schedule string, logger *zap.Logger) *SessionSweeper {
	return &SessionSweeper{
		sessions: sessions,
		ttl:      ttl,
		schedule: schedule,
		logger:   logger,
	}
}

// Sweep evicts idle sessions once.
func (s *SessionSweeper) Sweep() int {
	n := s.sessions.EvictIdle(s.ttl)
	if n > 0 {
		s.logger.Info("idle sessions evicted", zap.Int("count", n))
	}
	return n
}

// Start runs the sweep on schedule until ctx is done.
func (s *SessionSweeper) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(time.UTC))

	if _, err := c.AddFunc(s.schedule, func() { s.Sweep() }); err != nil {
		return fmt.Errorf("add sweep job: %w", err)
	}

	c.Start()
	s.logger.Info("session sweeper started", zap.String("schedule", s.schedule), zap.Duration("ttl", s.ttl))

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("session sweeper stopped")
	return nil
}
