package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/navigation-microservice/internal/domain"
	"github.com/navigation-microservice/internal/domain/repository"
	"github.com/navigation-microservice/internal/pkg/errors"
	"github.com/navigation-microservice/internal/pkg/utils"
	"github.com/navigation-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

type NavigationUseCase struct {
	routes     repository.RouteCacheRepository
	stations   repository.StationRepository
	facilities repository.FacilityRepository
	logger     *zap.Logger
}

func NewNavigationUseCase(
	routes repository.RouteCacheRepository,
	stations repository.StationRepository,
	facilities repository.FacilityRepository,
	logger *zap.Logger,
) *NavigationUseCase {
	return &NavigationUseCase{
		routes:     routes,
		stations:   stations,
		facilities: facilities,
		logger:     logger,
	}
}

// Guide produces live guidance for the rider's current position along a
// cached route. Clients call this every few seconds; the response names the
// next checkpoint and flags arrival when the rider enters its radius.
func (uc *NavigationUseCase) Guide(ctx context.Context, req *dto.NavigationGuideRequest) (*dto.NavigationGuideResponse, error) {
	if !utils.ValidateCoordinates(req.CurrentLocation.Lat, req.CurrentLocation.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	entry, ok := uc.routes.Get(req.RouteID)
	if !ok {
		return nil, errors.ErrRouteNotFound
	}

	current := entry.FindCheckpoint(req.CurrentCheckpointID)
	if current == nil {
		return nil, errors.ErrCheckpointNotFound
	}

	resp := &dto.NavigationGuideResponse{
		CurrentCheckpointID:   current.ID,
		CurrentCheckpointType: current.Type,
		Status:                domain.StatusNormal,
	}

	switch current.Type {
	case domain.CheckpointOrigin:
		uc.guideToStartExit(ctx, entry, current, req, resp)
	case domain.CheckpointStartExit:
		uc.guideExitToPlatform(ctx, entry, current, resp)
	case domain.CheckpointStartPlatform:
		uc.guidePlatformWaiting(ctx, entry, resp)
	case domain.CheckpointWaiting:
		uc.guideTrainArrival(ctx, entry, resp)
	case domain.CheckpointRiding:
		uc.guideOnTrain(ctx, entry, resp)
	case domain.CheckpointEndPlatform:
		uc.guideArrivalPlatform(ctx, entry, resp)
	case domain.CheckpointEndExit:
		uc.guideFinalExit(ctx, entry, resp)
	case domain.CheckpointCharging:
		resp.GuideText = fmt.Sprintf("%s 주변 휠체어 충전소를 안내해드립니다.", entry.EndStation)
	default:
		resp.GuideText = "경로를 따라 이동하세요."
	}

	return resp, nil
}

func nextCheckpointInfo(entry *domain.RouteCacheEntry, id int) *dto.NextCheckpointInfo {
	cp := entry.FindCheckpoint(id)
	if cp == nil {
		return nil
	}
	return &dto.NextCheckpointInfo{ID: cp.ID, Type: cp.Type, Location: cp.Location}
}

// guideToStartExit walks the rider from their position to the start exit,
// with distance-banded phrasing and geometric arrival detection.
func (uc *NavigationUseCase) guideToStartExit(
	ctx context.Context,
	entry *domain.RouteCacheEntry,
	current *domain.Checkpoint,
	req *dto.NavigationGuideRequest,
	resp *dto.NavigationGuideResponse,
) {
	target := entry.FindCheckpoint(current.ID + 1)
	resp.NextCheckpoint = nextCheckpointInfo(entry, current.ID+1)

	if target == nil || !target.HasCoordinates() {
		resp.GuideText = "출구 정보를 찾을 수 없습니다."
		return
	}

	payload, _ := current.Payload.(domain.OriginPayload)
	stationName := entry.StartStation
	exitNumber := payload.ExitNumber

	distance := utils.HaversineDistance(
		req.CurrentLocation.Lat, req.CurrentLocation.Lon,
		*target.Lat, *target.Lon,
	)
	direction := utils.CompassBearing(
		req.CurrentLocation.Lat, req.CurrentLocation.Lon,
		*target.Lat, *target.Lon,
	).Korean()

	meters := int(distance)
	resp.DistanceToNext = &meters
	resp.Direction = direction

	reached := distance <= float64(target.Radius)

	var b strings.Builder
	if reached {
		resp.IsCheckpointReached = true
		reachedID := target.ID
		resp.ReachedCheckpointID = &reachedID

		fmt.Fprintf(&b, "%s %s번 출구에 도착하셨습니다.", stationName, exitNumber)
	} else {
		switch {
		case distance > 100:
			fmt.Fprintf(&b, "%s으로 약 %dm 이동하세요. %s %s번 출구로 향합니다.",
				direction, meters, stationName, exitNumber)
		case distance > 50:
			fmt.Fprintf(&b, "%s으로 약 %dm 남았습니다. 곧 %s %s번 출구가 보입니다.",
				direction, meters, stationName, exitNumber)
		default:
			fmt.Fprintf(&b, "거의 다 왔습니다! %dm 앞에 %s번 출구가 있습니다.", meters, exitNumber)
		}
	}

	if entry.NeedElevator {
		elevator, _ := uc.facilities.ElevatorStatus(ctx, stationName)
		if elevator != nil {
			resp.RealtimeInfo = &dto.RealtimeInfo{ElevatorStatus: elevator}
			working, _ := elevatorExitSets(elevator)
			if working[exitNumber] {
				b.WriteString(" 엘리베이터가 정상 운행 중입니다.")
			} else if len(elevator.Records) > 0 {
				b.WriteString(" 엘리베이터 상태를 확인해주세요.")
			}
		}
	}

	resp.GuideText = b.String()
}

func (uc *NavigationUseCase) guideExitToPlatform(
	ctx context.Context,
	entry *domain.RouteCacheEntry,
	current *domain.Checkpoint,
	resp *dto.NavigationGuideResponse,
) {
	payload, _ := current.Payload.(domain.StartExitPayload)
	resp.NextCheckpoint = nextCheckpointInfo(entry, current.ID+1)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s번 출구에서 %s %s 승강장으로 이동합니다.",
		entry.StartStation, payload.ExitNumber, entry.Line, entry.Direction)

	if entry.NeedElevator && payload.HasElevator {
		exit := uc.lookupExit(ctx, entry.StartStation, payload.ExitNumber)

		buttonInfo := "지하층 버튼을 누르세요"
		timeSeconds := 60
		if exit != nil {
			if exit.ElevatorButtonInfo != nil {
				buttonInfo = *exit.ElevatorButtonInfo
			}
			if exit.ElevatorTimeSeconds != nil {
				timeSeconds = *exit.ElevatorTimeSeconds
			}
		}

		fmt.Fprintf(&b, "\n\n엘리베이터를 이용하세요. %s 약 %d초 소요됩니다.", buttonInfo, timeSeconds)
		fmt.Fprintf(&b, "\n엘리베이터 하차 후 %s 안내 표지판을 따라가세요.", entry.Direction)
	} else {
		fmt.Fprintf(&b, "\n%s 안내 표지판을 따라 승강장으로 이동하세요.", entry.Direction)
	}

	if elevator, _ := uc.facilities.ElevatorStatus(ctx, entry.StartStation); elevator != nil {
		resp.RealtimeInfo = &dto.RealtimeInfo{ElevatorStatus: elevator}
	}

	resp.GuideText = b.String()
}

func (uc *NavigationUseCase) guidePlatformWaiting(
	ctx context.Context,
	entry *domain.RouteCacheEntry,
	resp *dto.NavigationGuideResponse,
) {
	resp.NextCheckpoint = nextCheckpointInfo(entry, 3)

	// The waiting checkpoint carries the boarding recommendation.
	carStart, carEnd := 0, 0
	if waiting := entry.FindCheckpoint(3); waiting != nil {
		if payload, ok := waiting.Payload.(domain.WaitingPayload); ok {
			carStart, carEnd = payload.CarStart, payload.CarEnd
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s 승강장입니다.", entry.StartStation, entry.Line, entry.Direction)
	if carStart > 0 {
		fmt.Fprintf(&b, "\n\n%d-%d번째 칸 앞에서 대기해주세요. 도착역 %s에서 엘리베이터와 가장 가까운 위치입니다.",
			carStart, carEnd, entry.EndStation)
	}

	arrivals, _ := uc.facilities.StationArrivals(ctx, entry.StartStation)
	if len(arrivals) > 0 {
		if minutes := arrivals[0].ETAMinutes(); minutes > 0 {
			fmt.Fprintf(&b, "\n\n다음 열차가 약 %d분 후 도착합니다.", minutes)
		}
		resp.RealtimeInfo = &dto.RealtimeInfo{TrainArrivals: arrivals}
	}

	resp.GuideText = b.String()
}

func (uc *NavigationUseCase) guideTrainArrival(
	ctx context.Context,
	entry *domain.RouteCacheEntry,
	resp *dto.NavigationGuideResponse,
) {
	resp.NextCheckpoint = nextCheckpointInfo(entry, 4)

	arrivals, _ := uc.facilities.StationArrivals(ctx, entry.StartStation)

	var b strings.Builder
	if len(arrivals) == 0 {
		b.WriteString("열차 도착 정보를 확인 중입니다. 잠시만 기다려주세요.")
	} else {
		first := arrivals[0]
		if first.ETAMinutes() <= 1 {
			b.WriteString("열차가 곧 도착합니다! 승차 준비를 해주세요.")
		} else {
			fmt.Fprintf(&b, "다음 열차가 약 %d분 후 도착합니다.", first.ETAMinutes())
		}
		if first.TerminalName != "" {
			fmt.Fprintf(&b, " 행선지: %s", first.TerminalName)
		}
		if first.IsLastTrain {
			b.WriteString(" 이 열차가 막차입니다!")
		}
		if first.StatusText != "" {
			fmt.Fprintf(&b, "\n현재 위치: %s", first.StatusText)
		}
		resp.RealtimeInfo = &dto.RealtimeInfo{TrainArrivals: arrivals}
	}

	resp.GuideText = b.String()
}

func (uc *NavigationUseCase) guideOnTrain(
	ctx context.Context,
	entry *domain.RouteCacheEntry,
	resp *dto.NavigationGuideResponse,
) {
	resp.NextCheckpoint = nextCheckpointInfo(entry, 5)

	var b strings.Builder
	fmt.Fprintf(&b, "열차에 탑승하셨습니다.\n\n%s에서 하차하세요. 하차 후 출구 방향 안내를 따라가세요.",
		entry.EndStation)

	// Pre-check the destination's elevators so a rider who needs one hears
	// about outages before arriving.
	if elevator, _ := uc.facilities.ElevatorStatus(ctx, entry.EndStation); elevator != nil {
		if !elevator.AllWorking {
			fmt.Fprintf(&b, "\n\n주의: %s 엘리베이터 일부가 점검 중입니다.", entry.EndStation)
			resp.Status = domain.StatusCaution
		}
		resp.RealtimeInfo = &dto.RealtimeInfo{ElevatorStatus: elevator}
	}

	resp.GuideText = b.String()
}

func (uc *NavigationUseCase) guideArrivalPlatform(
	ctx context.Context,
	entry *domain.RouteCacheEntry,
	resp *dto.NavigationGuideResponse,
) {
	resp.NextCheckpoint = nextCheckpointInfo(entry, 6)

	exitNumber := uc.endExitNumber(entry)

	var b strings.Builder
	fmt.Fprintf(&b, "%s에 도착하셨습니다!\n\n%s번 출구 방향으로 이동하세요.", entry.EndStation, exitNumber)

	if entry.NeedElevator {
		if exit := uc.lookupExit(ctx, entry.EndStation, exitNumber); exit != nil {
			if exit.ElevatorLocation != nil {
				fmt.Fprintf(&b, " 엘리베이터는 %s에 있습니다.", *exit.ElevatorLocation)
			}
			if exit.ElevatorButtonInfo != nil {
				fmt.Fprintf(&b, " %s", *exit.ElevatorButtonInfo)
			}
		}
	}

	if elevator, _ := uc.facilities.ElevatorStatus(ctx, entry.EndStation); elevator != nil {
		resp.RealtimeInfo = &dto.RealtimeInfo{ElevatorStatus: elevator}
	}

	resp.GuideText = b.String()
}

func (uc *NavigationUseCase) guideFinalExit(
	ctx context.Context,
	entry *domain.RouteCacheEntry,
	resp *dto.NavigationGuideResponse,
) {
	// The charging stop follows only when the route carries one.
	resp.NextCheckpoint = nextCheckpointInfo(entry, 7)

	exitNumber := uc.endExitNumber(entry)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s번 출구입니다.", entry.EndStation, exitNumber)

	if entry.NeedElevator {
		exit := uc.lookupExit(ctx, entry.EndStation, exitNumber)
		if exit != nil && exit.HasElevator {
			buttonInfo := "지상층 버튼을 누르세요"
			timeSeconds := 60
			if exit.ElevatorButtonInfo != nil {
				buttonInfo = *exit.ElevatorButtonInfo
			}
			if exit.ElevatorTimeSeconds != nil {
				timeSeconds = *exit.ElevatorTimeSeconds
			}
			fmt.Fprintf(&b, "\n\n엘리베이터를 이용하세요. %s 약 %d초 후 지상에 도착합니다.", buttonInfo, timeSeconds)
		}
	}

	b.WriteString("\n\n목적지에 도착하셨습니다! 안전한 이동이 되셨길 바랍니다.")
	resp.GuideText = b.String()
}

// endExitNumber reads the egress exit number off the end-exit checkpoint.
func (uc *NavigationUseCase) endExitNumber(entry *domain.RouteCacheEntry) string {
	if cp := entry.FindCheckpoint(6); cp != nil {
		if payload, ok := cp.Payload.(domain.EndExitPayload); ok && payload.ExitNumber != "" {
			return payload.ExitNumber
		}
	}
	return "1"
}

func (uc *NavigationUseCase) lookupExit(ctx context.Context, stationName, exitNumber string) *domain.Exit {
	station, err := uc.stations.FindByName(ctx, stationName)
	if err != nil || station == nil {
		return nil
	}
	exit, err := uc.stations.FindExit(ctx, station.ID, exitNumber)
	if err != nil {
		return nil
	}
	return exit
}
