package usecase

import (
	"fmt"

	"github.com/navigation-microservice/internal/domain"
)

// buildCheckpoints assembles the ordered checkpoint list for a planned
// route. IDs are contiguous from zero; the charging stop is appended only
// for users who asked for charging info and is marked optional.
func buildCheckpoints(
	route *domain.RouteDescriptor,
	profile domain.UserProfile,
) []domain.Checkpoint {
	start := route.StartStation
	end := route.EndStation
	startExit := route.StartExit
	endExit := route.EndExit

	endPlatformPayload := domain.EndPlatformPayload{
		StationName: end.Name,
		ExitNumber:  endExit.ExitNumber,
		Line:        route.Line,
		Direction:   route.Direction,
		CarStart:    route.Boarding.CarStart,
		CarEnd:      route.Boarding.CarEnd,
	}
	if route.ArrivalGuide != nil {
		endPlatformPayload.DirectionFromTrain = route.ArrivalGuide.DirectionFromTrain
	}

	checkpoints := []domain.Checkpoint{
		{
			ID:       0,
			Type:     domain.CheckpointOrigin,
			Location: "현재 위치",
			Radius:   domain.DefaultCheckpointRadius,
			Payload: domain.OriginPayload{
				StationName: start.Name,
				ExitNumber:  startExit.ExitNumber,
				Line:        route.Line,
				Direction:   route.Direction,
			},
		},
		{
			ID:       1,
			Type:     domain.CheckpointStartExit,
			Location: fmt.Sprintf("%s %s번 출구", start.Name, startExit.ExitNumber),
			Lat:      startExit.Lat,
			Lon:      startExit.Lon,
			Radius:   domain.DefaultCheckpointRadius,
			Payload: domain.StartExitPayload{
				StationName:  start.Name,
				ExitNumber:   startExit.ExitNumber,
				Line:         route.Line,
				Direction:    route.Direction,
				HasElevator:  startExit.HasElevator,
				ElevatorType: startExit.ElevatorType,
			},
		},
		{
			ID:       2,
			Type:     domain.CheckpointStartPlatform,
			Location: fmt.Sprintf("%s %s %s", start.Name, route.Line, route.Direction),
			Radius:   domain.DefaultCheckpointRadius,
			Payload: domain.StartPlatformPayload{
				StationName: start.Name,
				Line:        route.Line,
				Direction:   route.Direction,
			},
		},
		{
			ID:       3,
			Type:     domain.CheckpointWaiting,
			Location: fmt.Sprintf("%s %s 승강장", start.Name, route.Line),
			Radius:   domain.DefaultCheckpointRadius,
			Payload: domain.WaitingPayload{
				StationName:    start.Name,
				Line:           route.Line,
				Direction:      route.Direction,
				CarStart:       route.Boarding.CarStart,
				CarEnd:         route.Boarding.CarEnd,
				BoardingReason: route.Boarding.Reason,
			},
		},
		{
			ID:       4,
			Type:     domain.CheckpointRiding,
			Location: "열차 내부",
			Radius:   domain.DefaultCheckpointRadius,
			Payload: domain.RidingPayload{
				StartStation: start.Name,
				EndStation:   end.Name,
				Line:         route.Line,
				Direction:    route.Direction,
			},
		},
		{
			ID:       5,
			Type:     domain.CheckpointEndPlatform,
			Location: fmt.Sprintf("%s %s 승강장", end.Name, route.Line),
			Radius:   domain.DefaultCheckpointRadius,
			Payload:  endPlatformPayload,
		},
		{
			ID:       6,
			Type:     domain.CheckpointEndExit,
			Location: fmt.Sprintf("%s %s번 출구", end.Name, endExit.ExitNumber),
			Lat:      endExit.Lat,
			Lon:      endExit.Lon,
			Radius:   domain.DefaultCheckpointRadius,
			Payload: domain.EndExitPayload{
				StationName:         end.Name,
				ExitNumber:          endExit.ExitNumber,
				Line:                route.Line,
				Direction:           route.Direction,
				HasElevator:         endExit.HasElevator,
				ElevatorButtonInfo:  endExit.ElevatorButtonInfo,
				ElevatorTimeSeconds: endExit.ElevatorTimeSeconds,
				GateDirection:       endExit.GateDirection,
			},
		},
	}

	if profile.NeedChargingInfo {
		checkpoints = append(checkpoints, domain.Checkpoint{
			ID:       7,
			Type:     domain.CheckpointCharging,
			Location: fmt.Sprintf("%s 충전소", end.Name),
			Radius:   domain.ChargingCheckpointRadius,
			Optional: true,
			Payload: domain.ChargingPayload{
				StationName: end.Name,
			},
		})
	}

	return checkpoints
}
