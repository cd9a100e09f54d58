package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/navigation-microservice/internal/domain"
	"github.com/navigation-microservice/internal/pkg/errors"
	"github.com/navigation-microservice/internal/usecase"
	"github.com/navigation-microservice/internal/usecase/dto"
)

func float64Ptr(v float64) *float64 { return &v }

func gangnamStation() *domain.Station {
	return &domain.Station{ID: 1, Name: "강남", Line: "2호선", Lat: 37.4979, Lon: 127.0276}
}

func jamsilStation() *domain.Station {
	return &domain.Station{ID: 2, Name: "잠실", Line: "2호선", Lat: 37.5133, Lon: 127.1001}
}

func gangnamExits() []*domain.Exit {
	return []*domain.Exit{
		{ExitNumber: "3", HasElevator: true, Lat: float64Ptr(37.4981), Lon: float64Ptr(127.0278)},
		{ExitNumber: "5", HasElevator: false, Lat: float64Ptr(37.4975), Lon: float64Ptr(127.0270)},
	}
}

func jamsilExits() []*domain.Exit {
	return []*domain.Exit{
		{ExitNumber: "4", HasElevator: true, Lat: float64Ptr(37.5135), Lon: float64Ptr(127.1003)},
		{ExitNumber: "8", HasElevator: false, Lat: float64Ptr(37.5130), Lon: float64Ptr(127.0998)},
	}
}

func TestRouteUseCase_SearchRoute(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	req := &dto.RouteSearchRequest{
		StartStation: "강남",
		EndStation:   "잠실",
		UserLocation: dto.Coordinate{Lat: 37.4976, Lon: 127.0273},
		UserTags:     domain.UserProfile{MobilityLevel: "wheelchair", NeedElevator: true},
	}

	t.Run("plans route end to end", func(t *testing.T) {
		stations := &MockStationRepository{}
		facilities := &MockFacilityRepository{}
		routes := &MockRouteCacheRepository{}

		stations.On("FindByName", ctx, "강남").Return(gangnamStation(), nil)
		stations.On("FindByName", ctx, "잠실").Return(jamsilStation(), nil)
		stations.On("ListExits", ctx, int64(1)).Return(gangnamExits(), nil)
		stations.On("ListExits", ctx, int64(2)).Return(jamsilExits(), nil)
		stations.On("ListPlatformEdges", ctx, int64(2)).Return([]*domain.PlatformEdge{}, nil)
		stations.On("FindElevatorExitMapping", ctx, int64(2), "4").Return(nil, nil)

		facilities.On("ElevatorStatus", ctx, "강남").Return(&domain.ElevatorStatus{AllWorking: true}, nil)
		facilities.On("ElevatorStatus", ctx, "잠실").Return(&domain.ElevatorStatus{AllWorking: true}, nil)
		facilities.On("ExitClosure", ctx, "강남", "").Return(&domain.ExitClosure{Closed: false}, nil)
		facilities.On("StationArrivals", ctx, "강남").Return([]domain.TrainArrival{
			{ETASeconds: 240, TerminalName: "성수", TrainLineName: "성수행 - 잠실방면", TrainClass: "일반"},
		}, nil)

		routes.On("GenerateRouteID").Return(int64(123456789123))
		routes.On("Save", mock.AnythingOfType("*domain.RouteCacheEntry")).Return()

		uc := usecase.NewRouteUseCase(stations, facilities, routes, logger)
		resp, err := uc.SearchRoute(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, int64(123456789123), resp.RouteID)
		assert.Equal(t, "2호선", resp.Line)
		assert.Equal(t, "잠실 방면", resp.Direction)

		// Gangnam to Jamsil is roughly 6.6km along the great circle
		assert.Greater(t, resp.DistanceMeters, 6000)
		assert.Less(t, resp.DistanceMeters, 7500)
		assert.GreaterOrEqual(t, resp.EstimatedTimeMinutes, 5)

		// Elevator exits win on both ends; no survey data means the
		// elevator fallback cars 7-8
		assert.Len(t, resp.Checkpoints, 7)
		assert.Equal(t, 7, resp.Boarding.CarStart)
		assert.Equal(t, 8, resp.Boarding.CarEnd)

		startExit, ok := resp.Checkpoints[1].Payload.(domain.StartExitPayload)
		assert.True(t, ok)
		assert.Equal(t, "3", startExit.ExitNumber)

		assert.NotNil(t, resp.WalkingGuide)
		assert.NotNil(t, resp.ArrivalGuide)
		assert.Equal(t, "4", resp.ArrivalGuide.ExitNumber)

		assert.NotNil(t, resp.RealtimeTrain)
		assert.Equal(t, 4, resp.RealtimeTrain.ArrivalMinutes)

		assert.Empty(t, resp.Warnings)
		assert.Equal(t, domain.StatusNormal, resp.Status)

		routes.AssertExpectations(t)
		stations.AssertExpectations(t)
	})

	t.Run("elevator outage downgrades status", func(t *testing.T) {
		stations := &MockStationRepository{}
		facilities := &MockFacilityRepository{}
		routes := &MockRouteCacheRepository{}

		stations.On("FindByName", ctx, "강남").Return(gangnamStation(), nil)
		stations.On("FindByName", ctx, "잠실").Return(jamsilStation(), nil)
		stations.On("ListExits", ctx, mock.Anything).Return(gangnamExits(), nil)
		stations.On("ListPlatformEdges", ctx, int64(2)).Return([]*domain.PlatformEdge{}, nil)
		stations.On("FindElevatorExitMapping", ctx, int64(2), "3").Return(nil, nil)

		facilities.On("ElevatorStatus", ctx, "강남").Return(&domain.ElevatorStatus{
			Records:    []domain.ElevatorRecord{{Location: "3번 출입구", Working: false}},
			AllWorking: false,
		}, nil)
		facilities.On("ElevatorStatus", ctx, "잠실").Return(&domain.ElevatorStatus{AllWorking: true}, nil)
		facilities.On("ExitClosure", ctx, "강남", "").Return(&domain.ExitClosure{Closed: false}, nil)
		facilities.On("StationArrivals", ctx, "강남").Return(nil, nil)

		routes.On("GenerateRouteID").Return(int64(1))
		routes.On("Save", mock.Anything).Return()

		uc := usecase.NewRouteUseCase(stations, facilities, routes, logger)
		resp, err := uc.SearchRoute(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusCaution, resp.Status)
		assert.NotEmpty(t, resp.Warnings)
		assert.Nil(t, resp.RealtimeTrain)
	})

	t.Run("cross-line search requires transfer", func(t *testing.T) {
		stations := &MockStationRepository{}
		line8 := jamsilStation()
		line8.Line = "8호선"

		stations.On("FindByName", ctx, "강남").Return(gangnamStation(), nil)
		stations.On("FindByName", ctx, "잠실").Return(line8, nil)

		uc := usecase.NewRouteUseCase(stations, &MockFacilityRepository{}, &MockRouteCacheRepository{}, logger)
		_, err := uc.SearchRoute(ctx, req)

		assert.Equal(t, errors.ErrTransferRequired, err)
	})

	t.Run("unknown station", func(t *testing.T) {
		stations := &MockStationRepository{}
		stations.On("FindByName", ctx, "강남").Return(gangnamStation(), nil)
		stations.On("FindByName", ctx, "잠실").Return(nil, nil)

		uc := usecase.NewRouteUseCase(stations, &MockFacilityRepository{}, &MockRouteCacheRepository{}, logger)
		_, err := uc.SearchRoute(ctx, req)

		assert.Equal(t, errors.ErrStationNotFound, err)
	})

	t.Run("invalid coordinates rejected", func(t *testing.T) {
		uc := usecase.NewRouteUseCase(&MockStationRepository{}, &MockFacilityRepository{}, &MockRouteCacheRepository{}, logger)

		bad := *req
		bad.UserLocation = dto.Coordinate{Lat: 95.0, Lon: 127.0}
		_, err := uc.SearchRoute(ctx, &bad)

		assert.Equal(t, errors.ErrInvalidCoordinates, err)
	})
}

func TestRouteUseCase_ListStations(t *testing.T) {
	ctx := context.Background()
	stations := &MockStationRepository{}
	stations.On("ListStations", ctx).Return([]*domain.Station{gangnamStation(), jamsilStation()}, nil)

	uc := usecase.NewRouteUseCase(stations, &MockFacilityRepository{}, &MockRouteCacheRepository{}, zap.NewNop())
	resp, err := uc.ListStations(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "강남", resp.Stations[0].Name)
}
