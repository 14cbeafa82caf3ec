package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEvicter struct {
	ttl   time.Duration
	calls int
}

func (f *fakeEvicter) EvictIdle(ttl time.Duration) int {
	f.ttl = ttl
	f.calls++
	return 2
}

func TestSessionSweeperSweep(t *testing.T) {
	e := &fakeEvicter{}
	s := NewSessionSweeper(e, time.Hour, "@every 10m", zap.NewNop())

	assert.Equal(t, 2, s.Sweep())
	assert.Equal(t, time.Hour, e.ttl)
	assert.Equal(t, 1, e.calls)
}

func TestSessionSweeperBadSchedule(t *testing.T) {
	s := NewSessionSweeper(&fakeEvicter{}, time.Hour, "every now and then", zap.NewNop())
	require.Error(t, s.Start(context.Background()))
}

func TestSessionSweeperStopsWithContext(t *testing.T) {
	s := NewSessionSweeper(&fakeEvicter{}, time.Hour, "@every 1h", zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("sweeper did not stop")
	}
}
