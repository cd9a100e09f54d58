package repository

import (
	"context"

	"github.com/navigation-microservice/internal/domain"
)

// StationRepository reads subway reference data. Lookups return (nil, nil)
// on a clean miss; errors are reserved for store failures.
type StationRepository interface {
	// FindByName matches a station by exact name first, then by partial
	// match. The search term may omit the "역" suffix.
	FindByName(ctx context.Context, name string) (*domain.Station, error)

	// ListStations returns all stations ordered by line, then name.
	ListStations(ctx context.Context) ([]*domain.Station, error)

	// ListExits returns every exit of a station.
	ListExits(ctx context.Context, stationID int64) ([]*domain.Exit, error)

	// FindExit returns a single exit by its number within a station.
	FindExit(ctx context.Context, stationID int64, exitNumber string) (*domain.Exit, error)

	// ListPlatformEdges returns all surveyed platform edge rows for a
	// station, across directions.
	ListPlatformEdges(ctx context.Context, stationID int64) ([]*domain.PlatformEdge, error)

	// ListChargingStations returns in-station wheelchair chargers.
	ListChargingStations(ctx context.Context, stationID int64) ([]*domain.ChargingStation, error)

	// FindElevatorExitMapping returns the disembark guidance row linking
	// the platform elevator to the given exit.
	FindElevatorExitMapping(ctx context.Context, stationID int64, connectedExit string) (*domain.ElevatorExitMapping, error)

	// ListElevatorExitMappings returns all disembark guidance rows for a
	// station.
	ListElevatorExitMappings(ctx context.Context, stationID int64) ([]*domain.ElevatorExitMapping, error)
}
