package repository

import "github.com/navigation-microservice/internal/domain"

// RouteCacheRepository stores planned routes for the navigation session
// lifetime. Routes expire after a fixed TTL; Get never returns an expired
// entry.
type RouteCacheRepository interface {
	// GenerateRouteID produces a fresh collision-resistant route ID.
	GenerateRouteID() int64

	// Save stores a route snapshot under its RouteID, stamping
	// CreatedAt/ExpiresAt.
	Save(entry *domain.RouteCacheEntry)

	// Get returns the live entry for a route ID, or false when absent or
	// expired.
	Get(routeID int64) (*domain.RouteCacheEntry, bool)

	// GetCheckpoint returns one checkpoint of a live route.
	GetCheckpoint(routeID int64, checkpointID int) (*domain.Checkpoint, bool)

	// DeleteExpired removes expired entries and returns how many were
	// dropped.
	DeleteExpired() int

	// Stats reports cache occupancy.
	Stats() domain.RouteCacheStats
}
