package repository

import (
	"context"

	"github.com/navigation-microservice/internal/domain"
)

// FacilityRepository exposes live city facility data. Implementations
// degrade to empty results on upstream failure rather than erroring, so
// route planning never hard-fails on a flaky feed.
type FacilityRepository interface {
	// ElevatorStatus returns live elevator state for a station.
	ElevatorStatus(ctx context.Context, stationName string) (*domain.ElevatorStatus, error)

	// ExitClosure returns the closure notice for one exit of a station,
	// with Closed=false when no notice exists.
	ExitClosure(ctx context.Context, stationName, exitNumber string) (*domain.ExitClosure, error)

	// WheelchairChargers returns charger rows for a station.
	WheelchairChargers(ctx context.Context, stationName string) ([]domain.ChargerInfo, error)

	// StationArrivals returns realtime train arrivals for a station.
	StationArrivals(ctx context.Context, stationName string) ([]domain.TrainArrival, error)
}
