package worker_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/navigation-microservice/internal/domain"
	"github.com/navigation-microservice/internal/worker"
)

// stubRouteCache counts DeleteExpired calls.
type stubRouteCache struct {
	sweeps atomic.Int32
}

func (s *stubRouteCache) GenerateRouteID() int64                    { return 1 }
func (s *stubRouteCache) Save(entry *domain.RouteCacheEntry)        {}
func (s *stubRouteCache) Get(int64) (*domain.RouteCacheEntry, bool) { return nil, false }
func (s *stubRouteCache) GetCheckpoint(int64, int) (*domain.Checkpoint, bool) {
	return nil, false
}

func (s *stubRouteCache) DeleteExpired() int {
	s.sweeps.Add(1)
	return 1
}

func (s *stubRouteCache) Stats() domain.RouteCacheStats {
	return domain.RouteCacheStats{}
}

func TestRouteCacheSweeper_SweepsPeriodically(t *testing.T) {
	cache := &stubRouteCache{}
	sweeper := worker.NewRouteCacheSweeper(cache, 10*time.Millisecond, zap.NewNop())

	assert.Equal(t, "route-cache-sweeper", sweeper.Name())

	done := make(chan error, 1)
	go func() {
		done <- sweeper.Start(context.Background())
	}()

	assert.Eventually(t, func() bool {
		return cache.sweeps.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	assert.NoError(t, sweeper.Stop())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestRouteCacheSweeper_StopsOnContextCancel(t *testing.T) {
	cache := &stubRouteCache{}
	sweeper := worker.NewRouteCacheSweeper(cache, time.Hour, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- sweeper.Start(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not exit on context cancel")
	}
}
