package usecase

import (
	"context"
	"fmt"

	"github.com/navigation-microservice/internal/domain"
	"github.com/navigation-microservice/internal/domain/repository"
	"github.com/navigation-microservice/internal/pkg/errors"
	"github.com/navigation-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// checkpointTypeByID maps the generator's fixed checkpoint positions to
// their types, for clients that send a bare checkpoint ID.
var checkpointTypeByID = map[int]domain.CheckpointType{
	0: domain.CheckpointOrigin,
	1: domain.CheckpointStartExit,
	2: domain.CheckpointStartPlatform,
	3: domain.CheckpointWaiting,
	4: domain.CheckpointRiding,
	5: domain.CheckpointEndPlatform,
	6: domain.CheckpointEndExit,
	7: domain.CheckpointCharging,
}

type CheckpointUseCase struct {
	stations   repository.StationRepository
	facilities repository.FacilityRepository
	guides     repository.GuideTextRepository
	logger     *zap.Logger
}

func NewCheckpointUseCase(
	stations repository.StationRepository,
	facilities repository.FacilityRepository,
	guides repository.GuideTextRepository,
	logger *zap.Logger,
) *CheckpointUseCase {
	return &CheckpointUseCase{
		stations:   stations,
		facilities: facilities,
		guides:     guides,
		logger:     logger,
	}
}

// Guide generates on-arrival guidance for one checkpoint by layering live
// facility state over the reference store and rendering the result.
func (uc *CheckpointUseCase) Guide(ctx context.Context, req *dto.CheckpointGuideRequest) (*dto.CheckpointGuideResponse, error) {
	station, err := uc.stations.FindByName(ctx, req.StationName)
	if err != nil {
		return nil, err
	}
	if station == nil {
		return nil, errors.ErrStationNotFound
	}

	cpType, ok := checkpointTypeByID[req.CheckpointID]
	if !ok {
		return &dto.CheckpointGuideResponse{
			CheckpointID:   req.CheckpointID,
			CheckpointType: "unknown",
			GuideText:      "경로를 따라 이동하세요.",
			Status:         domain.StatusNormal,
		}, nil
	}

	gc := domain.GuideContext{
		StationName:    station.Name,
		CheckpointType: cpType,
		ExitNumber:     req.ExitNumber,
		Line:           req.Line,
		Direction:      req.Direction,
		NeedElevator:   req.NeedElevator,
	}
	if gc.Line == "" {
		gc.Line = station.Line
	}

	resp := &dto.CheckpointGuideResponse{
		CheckpointID:   req.CheckpointID,
		CheckpointType: cpType,
		Status:         domain.StatusNormal,
	}

	switch cpType {
	case domain.CheckpointOrigin:
		uc.fillExitContext(ctx, station, &gc)

	case domain.CheckpointStartExit, domain.CheckpointEndExit:
		uc.fillExitContext(ctx, station, &gc)
		uc.fillExitLiveState(ctx, station, &gc, resp)

	case domain.CheckpointStartPlatform, domain.CheckpointEndPlatform:
		gc.Elevator, _ = uc.facilities.ElevatorStatus(ctx, station.Name)
		gc.Arrivals, _ = uc.facilities.StationArrivals(ctx, station.Name)
		resp.RealtimeInfo = &dto.RealtimeInfo{
			ElevatorStatus: gc.Elevator,
			TrainArrivals:  gc.Arrivals,
		}

	case domain.CheckpointWaiting:
		gc.Arrivals, _ = uc.facilities.StationArrivals(ctx, station.Name)
		resp.RealtimeInfo = &dto.RealtimeInfo{TrainArrivals: gc.Arrivals}

	case domain.CheckpointRiding:
		// Requests name the destination station while riding.
		gc.EndStationName = station.Name
		gc.Arrivals, _ = uc.facilities.StationArrivals(ctx, station.Name)
		resp.RealtimeInfo = &dto.RealtimeInfo{TrainArrivals: gc.Arrivals}

	case domain.CheckpointCharging:
		chargers, err := uc.stations.ListChargingStations(ctx, station.ID)
		if err == nil && len(chargers) > 0 {
			gc.Charger = chargers[0]
		}
		gc.Chargers, _ = uc.facilities.WheelchairChargers(ctx, station.Name)
		resp.RealtimeInfo = &dto.RealtimeInfo{Chargers: gc.Chargers}
	}

	// Closure and elevator outage decide the response severity.
	if gc.Closure != nil && gc.Closure.Closed {
		resp.Status = domain.StatusWarning
		resp.AlternativeRoute = &dto.AlternativeRoute{
			Reason:      gc.Closure.Reason,
			Alternative: gc.Closure.Alternative,
			EndDate:     gc.Closure.EndDate,
		}
		if gc.AlternativeExit == "" {
			gc.AlternativeExit = gc.Closure.Alternative
		}
	} else if gc.Elevator != nil && !gc.Elevator.AllWorking && req.NeedElevator {
		resp.Status = domain.StatusCaution
		if alt := uc.findAlternativeExit(ctx, station, req.ExitNumber, gc.Elevator); alt != nil {
			gc.AlternativeExit = fmt.Sprintf("%s번 출구", alt.ExitNumber)
			altRoute := &dto.AlternativeRoute{
				Reason:      "엘리베이터 점검 중",
				Alternative: gc.AlternativeExit,
			}
			if alt.HasCoordinates() {
				altRoute.GPS = &dto.Coordinate{Lat: *alt.Lat, Lon: *alt.Lon}
			}
			resp.AlternativeRoute = altRoute
		}
	}

	question := fmt.Sprintf("%s %s 이용 안내", station.Name, cpType)
	guideText, err := uc.guides.Render(ctx, question, gc)
	if err != nil {
		uc.logger.Warn("Guide rendering failed", zap.Error(err))
		guideText = "경로를 따라 이동하세요."
	}
	resp.GuideText = guideText

	return resp, nil
}

// RealtimeStation aggregates every live feed for one station.
func (uc *CheckpointUseCase) RealtimeStation(ctx context.Context, stationName string) (*dto.RealtimeStationResponse, error) {
	elevator, _ := uc.facilities.ElevatorStatus(ctx, stationName)
	arrivals, _ := uc.facilities.StationArrivals(ctx, stationName)
	chargers, _ := uc.facilities.WheelchairChargers(ctx, stationName)

	return &dto.RealtimeStationResponse{
		StationName:    stationName,
		ElevatorStatus: elevator,
		TrainArrivals:  arrivals,
		Chargers:       chargers,
	}, nil
}

func (uc *CheckpointUseCase) fillExitContext(ctx context.Context, station *domain.Station, gc *domain.GuideContext) {
	if gc.ExitNumber == "" {
		return
	}
	exit, err := uc.stations.FindExit(ctx, station.ID, gc.ExitNumber)
	if err != nil {
		uc.logger.Warn("Exit lookup failed",
			zap.Int64("station_id", station.ID),
			zap.String("exit_number", gc.ExitNumber),
			zap.Error(err),
		)
		return
	}
	gc.Exit = exit
}

func (uc *CheckpointUseCase) fillExitLiveState(
	ctx context.Context,
	station *domain.Station,
	gc *domain.GuideContext,
	resp *dto.CheckpointGuideResponse,
) {
	gc.Elevator, _ = uc.facilities.ElevatorStatus(ctx, station.Name)
	gc.Closure, _ = uc.facilities.ExitClosure(ctx, station.Name, gc.ExitNumber)
	resp.RealtimeInfo = &dto.RealtimeInfo{
		ElevatorStatus: gc.Elevator,
		ExitClosure:    gc.Closure,
	}
}

// findAlternativeExit returns another exit of the station whose elevator
// the live feed reports as working.
func (uc *CheckpointUseCase) findAlternativeExit(
	ctx context.Context,
	station *domain.Station,
	currentExit string,
	elevator *domain.ElevatorStatus,
) *domain.Exit {
	working, _ := elevatorExitSets(elevator)
	for exitNum := range working {
		if exitNum == currentExit {
			continue
		}
		exit, err := uc.stations.FindExit(ctx, station.ID, exitNum)
		if err == nil && exit != nil {
			return exit
		}
	}
	return nil
}
