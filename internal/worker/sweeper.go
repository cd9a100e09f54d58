package worker

import (
	"context"
	"time"

	"github.com/navigation-microservice/internal/domain/repository"
	"go.uber.org/zap"
)

// RouteCacheSweeper periodically removes expired routes from the route cache.
// Expired entries are also dropped lazily on read; the sweeper keeps memory
// bounded for routes that are never touched again.
type RouteCacheSweeper struct {
	*BaseWorker
	routes   repository.RouteCacheRepository
	interval time.Duration
}

// NewRouteCacheSweeper creates a new RouteCacheSweeper.
func NewRouteCacheSweeper(
	routes repository.RouteCacheRepository,
	interval time.Duration,
	logger *zap.Logger,
) *RouteCacheSweeper {
	return &RouteCacheSweeper{
		BaseWorker: NewBaseWorker("route-cache-sweeper", logger),
		routes:     routes,
		interval:   interval,
	}
}

// Start runs the sweep loop until the worker is stopped.
func (w *RouteCacheSweeper) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting RouteCacheSweeper", zap.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case <-ticker.C:
			removed := w.routes.DeleteExpired()
			if removed > 0 {
				stats := w.routes.Stats()
				logger.Info("Swept expired routes",
					zap.Int("removed", removed),
					zap.Int("active", stats.ActiveRoutes))
			}
		}
	}
}
