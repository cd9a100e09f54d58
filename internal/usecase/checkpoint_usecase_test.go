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

func TestCheckpointUseCase_Guide_ExitCheckpoint(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	req := &dto.CheckpointGuideRequest{
		CheckpointID: 1,
		StationName:  "강남",
		ExitNumber:   "3",
		Line:         "2호선",
		Direction:    "잠실 방면",
		NeedElevator: true,
	}

	t.Run("healthy exit", func(t *testing.T) {
		stations := &MockStationRepository{}
		facilities := &MockFacilityRepository{}
		guides := &MockGuideTextRepository{}

		stations.On("FindByName", ctx, "강남").Return(gangnamStation(), nil)
		stations.On("FindExit", ctx, int64(1), "3").Return(gangnamExits()[0], nil)
		facilities.On("ElevatorStatus", ctx, "강남").Return(&domain.ElevatorStatus{AllWorking: true}, nil)
		facilities.On("ExitClosure", ctx, "강남", "3").Return(&domain.ExitClosure{Closed: false}, nil)
		guides.On("Render", ctx, mock.Anything, mock.Anything).Return("3번 출구 안내", nil)

		uc := usecase.NewCheckpointUseCase(stations, facilities, guides, logger)
		resp, err := uc.Guide(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, domain.CheckpointStartExit, resp.CheckpointType)
		assert.Equal(t, domain.StatusNormal, resp.Status)
		assert.Equal(t, "3번 출구 안내", resp.GuideText)
		assert.Nil(t, resp.AlternativeRoute)
	})

	t.Run("closed exit escalates to warning", func(t *testing.T) {
		stations := &MockStationRepository{}
		facilities := &MockFacilityRepository{}
		guides := &MockGuideTextRepository{}

		stations.On("FindByName", ctx, "강남").Return(gangnamStation(), nil)
		stations.On("FindExit", ctx, int64(1), "3").Return(gangnamExits()[0], nil)
		facilities.On("ElevatorStatus", ctx, "강남").Return(&domain.ElevatorStatus{AllWorking: true}, nil)
		facilities.On("ExitClosure", ctx, "강남", "3").Return(&domain.ExitClosure{
			Closed:      true,
			Reason:      "보수공사",
			Alternative: "5번 출구 이용",
			EndDate:     "2025-06-30",
		}, nil)
		guides.On("Render", ctx, mock.Anything, mock.Anything).Return("폐쇄 안내", nil)

		uc := usecase.NewCheckpointUseCase(stations, facilities, guides, logger)
		resp, err := uc.Guide(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusWarning, resp.Status)
		assert.NotNil(t, resp.AlternativeRoute)
		assert.Equal(t, "보수공사", resp.AlternativeRoute.Reason)
		assert.Equal(t, "2025-06-30", resp.AlternativeRoute.EndDate)
	})

	t.Run("broken elevator suggests working alternative", func(t *testing.T) {
		stations := &MockStationRepository{}
		facilities := &MockFacilityRepository{}
		guides := &MockGuideTextRepository{}

		stations.On("FindByName", ctx, "강남").Return(gangnamStation(), nil)
		stations.On("FindExit", ctx, int64(1), "3").Return(gangnamExits()[0], nil)
		stations.On("FindExit", ctx, int64(1), "5").Return(gangnamExits()[1], nil)
		facilities.On("ElevatorStatus", ctx, "강남").Return(&domain.ElevatorStatus{
			Records: []domain.ElevatorRecord{
				{Location: "3번 출입구", Working: false},
				{Location: "5번 출입구", Working: true},
			},
			AllWorking: false,
		}, nil)
		facilities.On("ExitClosure", ctx, "강남", "3").Return(&domain.ExitClosure{Closed: false}, nil)
		guides.On("Render", ctx, mock.Anything, mock.Anything).Return("대체 경로 안내", nil)

		uc := usecase.NewCheckpointUseCase(stations, facilities, guides, logger)
		resp, err := uc.Guide(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusCaution, resp.Status)
		assert.NotNil(t, resp.AlternativeRoute)
		assert.Equal(t, "5번 출구", resp.AlternativeRoute.Alternative)
		assert.NotNil(t, resp.AlternativeRoute.GPS)
	})

	t.Run("unknown station", func(t *testing.T) {
		stations := &MockStationRepository{}
		stations.On("FindByName", ctx, "강남").Return(nil, nil)

		uc := usecase.NewCheckpointUseCase(stations, &MockFacilityRepository{}, &MockGuideTextRepository{}, logger)
		_, err := uc.Guide(ctx, req)

		assert.Equal(t, errors.ErrStationNotFound, err)
	})
}

func TestCheckpointUseCase_Guide_ChargingCheckpoint(t *testing.T) {
	ctx := context.Background()
	stations := &MockStationRepository{}
	facilities := &MockFacilityRepository{}
	guides := &MockGuideTextRepository{}

	stations.On("FindByName", ctx, "잠실").Return(jamsilStation(), nil)
	stations.On("ListChargingStations", ctx, int64(2)).Return([]*domain.ChargingStation{
		{StationID: 2, Location: "대합실 고객센터 옆", ChargerCount: 2, Available: true},
	}, nil)
	facilities.On("WheelchairChargers", ctx, "잠실").Return([]domain.ChargerInfo{
		{StationName: "잠실역", Location: "대합실", ChargerCount: 2, UsageFee: "무료"},
	}, nil)
	guides.On("Render", ctx, mock.Anything, mock.Anything).Return("충전소 안내", nil)

	uc := usecase.NewCheckpointUseCase(stations, facilities, guides, zap.NewNop())
	resp, err := uc.Guide(ctx, &dto.CheckpointGuideRequest{
		CheckpointID: 7,
		StationName:  "잠실",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.CheckpointCharging, resp.CheckpointType)
	assert.NotNil(t, resp.RealtimeInfo)
	assert.Len(t, resp.RealtimeInfo.Chargers, 1)
}

func TestCheckpointUseCase_RealtimeStation(t *testing.T) {
	ctx := context.Background()
	facilities := &MockFacilityRepository{}
	facilities.On("ElevatorStatus", ctx, "강남").Return(&domain.ElevatorStatus{AllWorking: true}, nil)
	facilities.On("StationArrivals", ctx, "강남").Return([]domain.TrainArrival{{ETASeconds: 120}}, nil)
	facilities.On("WheelchairChargers", ctx, "강남").Return(nil, nil)

	uc := usecase.NewCheckpointUseCase(&MockStationRepository{}, facilities, &MockGuideTextRepository{}, zap.NewNop())
	resp, err := uc.RealtimeStation(ctx, "강남")

	assert.NoError(t, err)
	assert.Equal(t, "강남", resp.StationName)
	assert.True(t, resp.ElevatorStatus.AllWorking)
	assert.Len(t, resp.TrainArrivals, 1)
}
