package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/navigation-microservice/internal/domain"
)

type MockStationRepository struct {
	mock.Mock
}

func (m *MockStationRepository) FindByName(ctx context.Context, name string) (*domain.Station, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Station), args.Error(1)
}

func (m *MockStationRepository) ListStations(ctx context.Context) ([]*domain.Station, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Station), args.Error(1)
}

func (m *MockStationRepository) ListExits(ctx context.Context, stationID int64) ([]*domain.Exit, error) {
	args := m.Called(ctx, stationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Exit), args.Error(1)
}

func (m *MockStationRepository) FindExit(ctx context.Context, stationID int64, exitNumber string) (*domain.Exit, error) {
	args := m.Called(ctx, stationID, exitNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Exit), args.Error(1)
}

func (m *MockStationRepository) ListPlatformEdges(ctx context.Context, stationID int64) ([]*domain.PlatformEdge, error) {
	args := m.Called(ctx, stationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PlatformEdge), args.Error(1)
}

func (m *MockStationRepository) ListChargingStations(ctx context.Context, stationID int64) ([]*domain.ChargingStation, error) {
	args := m.Called(ctx, stationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ChargingStation), args.Error(1)
}

func (m *MockStationRepository) FindElevatorExitMapping(ctx context.Context, stationID int64, connectedExit string) (*domain.ElevatorExitMapping, error) {
	args := m.Called(ctx, stationID, connectedExit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ElevatorExitMapping), args.Error(1)
}

func (m *MockStationRepository) ListElevatorExitMappings(ctx context.Context, stationID int64) ([]*domain.ElevatorExitMapping, error) {
	args := m.Called(ctx, stationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ElevatorExitMapping), args.Error(1)
}

type MockFacilityRepository struct {
	mock.Mock
}

func (m *MockFacilityRepository) ElevatorStatus(ctx context.Context, stationName string) (*domain.ElevatorStatus, error) {
	args := m.Called(ctx, stationName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ElevatorStatus), args.Error(1)
}

func (m *MockFacilityRepository) ExitClosure(ctx context.Context, stationName, exitNumber string) (*domain.ExitClosure, error) {
	args := m.Called(ctx, stationName, exitNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExitClosure), args.Error(1)
}

func (m *MockFacilityRepository) WheelchairChargers(ctx context.Context, stationName string) ([]domain.ChargerInfo, error) {
	args := m.Called(ctx, stationName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChargerInfo), args.Error(1)
}

func (m *MockFacilityRepository) StationArrivals(ctx context.Context, stationName string) ([]domain.TrainArrival, error) {
	args := m.Called(ctx, stationName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrainArrival), args.Error(1)
}

type MockRouteCacheRepository struct {
	mock.Mock
}

func (m *MockRouteCacheRepository) GenerateRouteID() int64 {
	args := m.Called()
	return args.Get(0).(int64)
}

func (m *MockRouteCacheRepository) Save(entry *domain.RouteCacheEntry) {
	m.Called(entry)
}

func (m *MockRouteCacheRepository) Get(routeID int64) (*domain.RouteCacheEntry, bool) {
	args := m.Called(routeID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.RouteCacheEntry), args.Bool(1)
}

func (m *MockRouteCacheRepository) GetCheckpoint(routeID int64, checkpointID int) (*domain.Checkpoint, bool) {
	args := m.Called(routeID, checkpointID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.Checkpoint), args.Bool(1)
}

func (m *MockRouteCacheRepository) DeleteExpired() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockRouteCacheRepository) Stats() domain.RouteCacheStats {
	args := m.Called()
	return args.Get(0).(domain.RouteCacheStats)
}

type MockGuideTextRepository struct {
	mock.Mock
}

func (m *MockGuideTextRepository) Render(ctx context.Context, question string, gc domain.GuideContext) (string, error) {
	args := m.Called(ctx, question, gc)
	return args.String(0), args.Error(1)
}
