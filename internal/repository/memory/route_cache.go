package memory

import (
	"math/rand"
	"sync"
	"time"

	"github.com/navigation-microservice/internal/domain"
	"github.com/navigation-microservice/internal/domain/repository"
	"go.uber.org/zap"
)

// Clock abstracts time so expiry behavior is testable.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall clock.
func SystemClock() Clock { return systemClock{} }

// routeCache holds planned routes in process memory. Routes are short-lived
// session state bound to a single navigation run, so no persistence is
// needed; a restart invalidates them and clients re-search.
type routeCache struct {
	mu     sync.RWMutex
	routes map[int64]*domain.RouteCacheEntry
	ttl    time.Duration
	clock  Clock
	rand   *rand.Rand
	logger *zap.Logger
}

func NewRouteCache(ttl time.Duration, clock Clock, logger *zap.Logger) repository.RouteCacheRepository {
	if clock == nil {
		clock = SystemClock()
	}
	return &routeCache{
		routes: make(map[int64]*domain.RouteCacheEntry),
		ttl:    ttl,
		clock:  clock,
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: logger,
	}
}

// GenerateRouteID builds an ID from the millisecond timestamp plus a random
// 3-digit suffix, truncated to stay comfortably inside int ranges of typical
// clients.
func (c *routeCache) GenerateRouteID() int64 {
	c.mu.Lock()
	suffix := int64(c.rand.Intn(900) + 100)
	c.mu.Unlock()

	ms := c.clock.Now().UnixMilli() % 1_000_000_000
	return ms*1000 + suffix
}

func (c *routeCache) Save(entry *domain.RouteCacheEntry) {
	now := c.clock.Now()
	entry.CreatedAt = now
	entry.ExpiresAt = now.Add(c.ttl)

	c.mu.Lock()
	c.routes[entry.RouteID] = entry
	c.mu.Unlock()

	c.logger.Debug("Route cached",
		zap.Int64("route_id", entry.RouteID),
		zap.Int("checkpoints", len(entry.Checkpoints)),
		zap.Time("expires_at", entry.ExpiresAt),
	)
}

func (c *routeCache) Get(routeID int64) (*domain.RouteCacheEntry, bool) {
	c.mu.RLock()
	entry, ok := c.routes[routeID]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	// Lazy expiry: an expired entry is as good as absent.
	if c.clock.Now().After(entry.ExpiresAt) {
		c.mu.Lock()
		delete(c.routes, routeID)
		c.mu.Unlock()
		return nil, false
	}

	return entry, true
}

func (c *routeCache) GetCheckpoint(routeID int64, checkpointID int) (*domain.Checkpoint, bool) {
	entry, ok := c.Get(routeID)
	if !ok {
		return nil, false
	}

	cp := entry.FindCheckpoint(checkpointID)
	if cp == nil {
		return nil, false
	}
	return cp, true
}

func (c *routeCache) DeleteExpired() int {
	now := c.clock.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for id, entry := range c.routes {
		if now.After(entry.ExpiresAt) {
			delete(c.routes, id)
			removed++
		}
	}

	if removed > 0 {
		c.logger.Info("Expired routes removed", zap.Int("count", removed))
	}
	return removed
}

func (c *routeCache) Stats() domain.RouteCacheStats {
	now := c.clock.Now()

	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := domain.RouteCacheStats{
		TotalRoutes: len(c.routes),
		TTLHours:    c.ttl.Hours(),
	}
	for _, entry := range c.routes {
		if now.After(entry.ExpiresAt) {
			stats.ExpiredRoutes++
		} else {
			stats.ActiveRoutes++
		}
	}
	return stats
}
