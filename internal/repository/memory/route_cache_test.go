package memory_test

import (
	"testing"
	"time"

	"github.com/navigation-microservice/internal/domain"
	"github.com/navigation-microservice/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestEntry(routeID int64) *domain.RouteCacheEntry {
	return &domain.RouteCacheEntry{
		RouteID:      routeID,
		StartStation: "강남",
		EndStation:   "잠실",
		Line:         "2호선",
		Direction:    "내선",
		Checkpoints: []domain.Checkpoint{
			{ID: 0, Type: domain.CheckpointOrigin, Location: "출발 위치", Radius: domain.DefaultCheckpointRadius,
				Payload: domain.OriginPayload{StationName: "강남", ExitNumber: "3", Line: "2호선", Direction: "내선"}},
			{ID: 1, Type: domain.CheckpointStartExit, Location: "강남역 3번 출구", Radius: domain.DefaultCheckpointRadius,
				Payload: domain.StartExitPayload{StationName: "강남", ExitNumber: "3", Line: "2호선", Direction: "내선"}},
		},
	}
}

func TestRouteCache_SaveAndGet(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	cache := memory.NewRouteCache(24*time.Hour, clock, zap.NewNop())

	entry := newTestEntry(123456789001)
	cache.Save(entry)

	got, ok := cache.Get(123456789001)
	assert.True(t, ok)
	assert.Equal(t, "강남", got.StartStation)
	assert.Equal(t, clock.now.Add(24*time.Hour), got.ExpiresAt)

	_, ok = cache.Get(999)
	assert.False(t, ok)
}

func TestRouteCache_TTLBoundary(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	cache := memory.NewRouteCache(24*time.Hour, clock, zap.NewNop())

	cache.Save(newTestEntry(42))

	t.Run("hit just before expiry", func(t *testing.T) {
		clock.Advance(23*time.Hour + 59*time.Minute)
		_, ok := cache.Get(42)
		assert.True(t, ok)
	})

	t.Run("miss after expiry", func(t *testing.T) {
		clock.Advance(2 * time.Minute)
		_, ok := cache.Get(42)
		assert.False(t, ok)
	})
}

func TestRouteCache_GetCheckpoint(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	cache := memory.NewRouteCache(24*time.Hour, clock, zap.NewNop())

	cache.Save(newTestEntry(42))

	cp, ok := cache.GetCheckpoint(42, 1)
	assert.True(t, ok)
	assert.Equal(t, domain.CheckpointStartExit, cp.Type)

	payload, ok := cp.Payload.(domain.StartExitPayload)
	assert.True(t, ok)
	assert.Equal(t, "3", payload.ExitNumber)

	_, ok = cache.GetCheckpoint(42, 99)
	assert.False(t, ok)
}

func TestRouteCache_DeleteExpired(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	cache := memory.NewRouteCache(1*time.Hour, clock, zap.NewNop())

	cache.Save(newTestEntry(1))
	clock.Advance(30 * time.Minute)
	cache.Save(newTestEntry(2))

	clock.Advance(45 * time.Minute) // entry 1 expired, entry 2 alive
	removed := cache.DeleteExpired()
	assert.Equal(t, 1, removed)

	stats := cache.Stats()
	assert.Equal(t, 1, stats.TotalRoutes)
	assert.Equal(t, 1, stats.ActiveRoutes)
	assert.Equal(t, 0, stats.ExpiredRoutes)
}

func TestRouteCache_GenerateRouteID(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	cache := memory.NewRouteCache(24*time.Hour, clock, zap.NewNop())

	seen := make(map[int64]bool)
	for i := 0; i < 50; i++ {
		id := cache.GenerateRouteID()
		assert.Greater(t, id, int64(0))
		seen[id] = true
	}
	// Random suffix keeps IDs from the same millisecond distinct most of
	// the time; 50 draws should not all collapse to one value.
	assert.Greater(t, len(seen), 1)
}
