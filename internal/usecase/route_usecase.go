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

// Average in-train speed used for the duration estimate, meters per hour.
const trainSpeedMetersPerHour = 40000

// Walking speed 4km/h expressed in meters per minute.
const walkingMetersPerMinute = 66.7

type RouteUseCase struct {
	stations   repository.StationRepository
	facilities repository.FacilityRepository
	routes     repository.RouteCacheRepository
	logger     *zap.Logger
}

func NewRouteUseCase(
	stations repository.StationRepository,
	facilities repository.FacilityRepository,
	routes repository.RouteCacheRepository,
	logger *zap.Logger,
) *RouteUseCase {
	return &RouteUseCase{
		stations:   stations,
		facilities: facilities,
		routes:     routes,
		logger:     logger,
	}
}

// SearchRoute plans a single-line accessible route between two stations:
// it scores exits against live elevator state, picks the boarding car range
// for the destination, generates the checkpoint sequence and caches the
// whole plan for the navigation session.
func (uc *RouteUseCase) SearchRoute(ctx context.Context, req *dto.RouteSearchRequest) (*dto.RouteSearchResponse, error) {
	if !utils.ValidateCoordinates(req.UserLocation.Lat, req.UserLocation.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	startStation, err := uc.stations.FindByName(ctx, req.StartStation)
	if err != nil {
		return nil, err
	}
	endStation, err := uc.stations.FindByName(ctx, req.EndStation)
	if err != nil {
		return nil, err
	}
	if startStation == nil || endStation == nil {
		return nil, errors.ErrStationNotFound
	}

	// Single-line routes only; transfers are a separate product phase.
	if startStation.Line != endStation.Line {
		return nil, errors.ErrTransferRequired
	}

	distance := int(utils.HaversineDistance(
		startStation.Lat, startStation.Lon,
		endStation.Lat, endStation.Lon,
	))
	estimatedMinutes := distance * 60 / trainSpeedMetersPerHour
	if estimatedMinutes < 5 {
		estimatedMinutes = 5
	}

	// Live facility state feeds exit scoring and warnings. The feeds
	// degrade to empty on failure, never blocking the search.
	startElevators, _ := uc.facilities.ElevatorStatus(ctx, startStation.Name)
	endElevators, _ := uc.facilities.ElevatorStatus(ctx, endStation.Name)
	closure, _ := uc.facilities.ExitClosure(ctx, startStation.Name, "")

	startExits, err := uc.stations.ListExits(ctx, startStation.ID)
	if err != nil {
		return nil, err
	}
	endExits, err := uc.stations.ListExits(ctx, endStation.ID)
	if err != nil {
		return nil, err
	}

	userLoc := &utils.Point{Lat: req.UserLocation.Lat, Lon: req.UserLocation.Lon}
	startExit := selectBestExit(startExits, userLoc, req.UserTags, startElevators)
	// Destination choice is independent of where the user stands now.
	endExit := selectBestExit(endExits, nil, req.UserTags, endElevators)

	if startExit == nil {
		return nil, errors.ErrNoSuitableExit.WithDetails(map[string]interface{}{
			"station": startStation.Name,
		})
	}
	if endExit == nil {
		return nil, errors.ErrNoSuitableExit.WithDetails(map[string]interface{}{
			"station": endStation.Name,
		})
	}

	edges, err := uc.stations.ListPlatformEdges(ctx, endStation.ID)
	if err != nil {
		return nil, err
	}
	boarding := calculateOptimalBoarding(edges, endExit)

	var warnings []string
	status := domain.StatusNormal
	if startElevators != nil && !startElevators.AllWorking {
		warnings = append(warnings, fmt.Sprintf("%s 엘리베이터 일부 점검 중", startStation.Name))
		status = domain.StatusCaution
	}
	if endElevators != nil && !endElevators.AllWorking {
		warnings = append(warnings, fmt.Sprintf("%s 엘리베이터 일부 점검 중", endStation.Name))
		status = domain.StatusCaution
	}
	if closure != nil && closure.Closed {
		warnings = append(warnings, fmt.Sprintf("출입구 폐쇄: %s", closure.Reason))
		status = domain.StatusCaution
	}

	route := &domain.RouteDescriptor{
		RouteID:              uc.routes.GenerateRouteID(),
		StartStation:         startStation,
		EndStation:           endStation,
		Line:                 startStation.Line,
		Direction:            fmt.Sprintf("%s 방면", endStation.Name),
		EstimatedTimeMinutes: estimatedMinutes,
		DistanceMeters:       distance,
		StartExit:            startExit,
		EndExit:              endExit,
		Boarding:             boarding,
		Warnings:             warnings,
		Status:               status,
	}

	route.WalkingGuide = buildWalkingGuide(userLoc, startExit, startStation.Name)
	route.ArrivalGuide = uc.buildArrivalGuide(ctx, endStation, endExit, boarding)

	checkpoints := buildCheckpoints(route, req.UserTags)

	uc.routes.Save(&domain.RouteCacheEntry{
		RouteID:      route.RouteID,
		StartStation: startStation.Name,
		EndStation:   endStation.Name,
		Line:         route.Line,
		Direction:    route.Direction,
		NeedElevator: req.UserTags.NeedElevator,
		Checkpoints:  checkpoints,
	})

	realtimeTrain := uc.nextTrainSnippet(ctx, startStation.Name, route.Direction)

	uc.logger.Info("Route planned",
		zap.Int64("route_id", route.RouteID),
		zap.String("start", startStation.Name),
		zap.String("end", endStation.Name),
		zap.String("start_exit", startExit.ExitNumber),
		zap.String("end_exit", endExit.ExitNumber),
		zap.Int("checkpoints", len(checkpoints)),
		zap.String("status", status),
	)

	return &dto.RouteSearchResponse{
		RouteID:              route.RouteID,
		StartStation:         startStation.Name,
		EndStation:           endStation.Name,
		Line:                 route.Line,
		Direction:            route.Direction,
		EstimatedTimeMinutes: estimatedMinutes,
		DistanceMeters:       distance,
		Checkpoints:          checkpoints,
		Boarding:             boarding,
		WalkingGuide:         route.WalkingGuide,
		ArrivalGuide:         route.ArrivalGuide,
		RealtimeTrain:        realtimeTrain,
		Warnings:             warnings,
		Status:               status,
	}, nil
}

// ListStations returns the full station catalogue.
func (uc *RouteUseCase) ListStations(ctx context.Context) (*dto.StationListResponse, error) {
	stations, err := uc.stations.ListStations(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.StationListResponse{
		Count:    len(stations),
		Stations: make([]dto.StationInfo, 0, len(stations)),
	}
	for _, s := range stations {
		resp.Stations = append(resp.Stations, dto.StationInfo{
			ID:   s.ID,
			Name: s.Name,
			Line: s.Line,
			Lat:  s.Lat,
			Lon:  s.Lon,
		})
	}
	return resp, nil
}

// buildWalkingGuide describes the walk from the user's position to the
// chosen entrance, at 4km/h.
func buildWalkingGuide(userLoc *utils.Point, exit *domain.Exit, stationName string) *domain.WalkingGuide {
	if userLoc == nil || !exit.HasCoordinates() {
		return nil
	}

	distance := utils.HaversineDistance(userLoc.Lat, userLoc.Lon, *exit.Lat, *exit.Lon)
	direction := utils.CompassBearing(userLoc.Lat, userLoc.Lon, *exit.Lat, *exit.Lon).Korean()

	minutes := int(distance / walkingMetersPerMinute)
	if minutes < 1 {
		minutes = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s으로 약 %dm 직진하시면 %s %s번 출구가 있습니다.",
		direction, int(distance), stationName, exit.ExitNumber)
	if exit.HasElevator {
		if exit.ElevatorLocation != nil {
			fmt.Fprintf(&b, " 엘리베이터는 %s에 있습니다.", *exit.ElevatorLocation)
		} else {
			b.WriteString(" 이 출구에 엘리베이터가 있습니다.")
		}
	}
	if exit.Landmark != nil {
		fmt.Fprintf(&b, " (%s 근처)", *exit.Landmark)
	}

	guide := &domain.WalkingGuide{
		DistanceMeters: int(distance),
		TimeMinutes:    minutes,
		Direction:      direction,
		GuideText:      b.String(),
		HasSlope:       exit.HasSlope,
		SlopeWarning:   exit.SlopeInfo,
	}
	if exit.Landmark != nil {
		guide.Landmarks = []string{*exit.Landmark}
	}
	return guide
}

// buildArrivalGuide describes the disembark walk from the recommended car
// to the egress exit, using the elevator-exit mapping survey when present.
func (uc *RouteUseCase) buildArrivalGuide(
	ctx context.Context,
	endStation *domain.Station,
	endExit *domain.Exit,
	boarding domain.BoardingRange,
) *domain.ArrivalGuide {
	mapping, err := uc.stations.FindElevatorExitMapping(ctx, endStation.ID, endExit.ExitNumber)
	if err != nil {
		uc.logger.Warn("Elevator-exit mapping lookup failed",
			zap.Int64("station_id", endStation.ID), zap.Error(err))
		mapping = nil
	}

	guide := &domain.ArrivalGuide{
		ExitNumber:            endExit.ExitNumber,
		CarPosition:           fmt.Sprintf("%d-%d번째 칸", boarding.CarStart, boarding.CarEnd),
		DirectionFromTrain:    "앞쪽",
		WalkingDistanceMeters: 50,
		WalkingTimeSeconds:    60,
		Features:              []string{"추천", "큰길우선", "계단회피"},
	}

	if mapping != nil {
		if mapping.DirectionFromTrain != nil {
			guide.DirectionFromTrain = *mapping.DirectionFromTrain
		}
		if mapping.WalkingDistanceMeters != nil {
			guide.WalkingDistanceMeters = *mapping.WalkingDistanceMeters
		}
		if mapping.WalkingTimeSeconds != nil {
			guide.WalkingTimeSeconds = *mapping.WalkingTimeSeconds
		}
		guide.ElevatorLocation = mapping.ElevatorLocation
	}

	if mapping != nil && mapping.WalkingDirection != nil {
		guide.GuideText = *mapping.WalkingDirection
	} else {
		guide.GuideText = fmt.Sprintf("%s에서 하차 후 %s으로 가세요.", guide.CarPosition, guide.DirectionFromTrain)
	}
	if endExit.HasElevator {
		guide.GuideText += fmt.Sprintf(" %s번 출구 엘리베이터를 이용하세요.", endExit.ExitNumber)
	}

	return guide
}

// nextTrainSnippet fetches the first arrival heading the route's way.
// Direction match falls back to the first row so the client always sees
// something when the feed has data.
func (uc *RouteUseCase) nextTrainSnippet(ctx context.Context, stationName, direction string) *dto.RealtimeTrainInfo {
	arrivals, _ := uc.facilities.StationArrivals(ctx, stationName)
	if len(arrivals) == 0 {
		return nil
	}

	directionKey := strings.TrimSuffix(direction, " 방면")
	chosen := arrivals[0]
	for _, a := range arrivals {
		if strings.Contains(a.TerminalName, directionKey) || strings.Contains(a.TrainLineName, directionKey) {
			chosen = a
			break
		}
	}

	return &dto.RealtimeTrainInfo{
		ArrivalMinutes:  chosen.ETAMinutes(),
		ArrivalSeconds:  chosen.ETASeconds,
		ArrivalMessage:  chosen.StatusText,
		TerminalStation: chosen.TerminalName,
		TrainClass:      chosen.TrainClass,
		IsLastTrain:     chosen.IsLastTrain,
		CurrentLocation: chosen.DetailText,
	}
}
