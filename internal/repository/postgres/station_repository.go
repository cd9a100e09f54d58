package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/navigation-microservice/internal/domain"
	"github.com/navigation-microservice/internal/domain/repository"
	"github.com/navigation-microservice/internal/pkg/errors"
	"go.uber.org/zap"
)

type stationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewStationRepository(db *DB) repository.StationRepository {
	return &stationRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *stationRepository) FindByName(ctx context.Context, name string) (*domain.Station, error) {
	// Exact match first so "서울역" never resolves to "서울숲역". The partial
	// fallback covers searches that drop the "역" suffix.
	name = strings.TrimSpace(name)

	query := `
		SELECT station_id, name, line, latitude, longitude, created_at
		FROM stations
		WHERE name = $1
		ORDER BY station_id
		LIMIT 1
	`

	var s domain.Station
	err := r.db.GetContext(ctx, &s, query, name)
	if err == nil {
		return &s, nil
	}
	if err != sql.ErrNoRows {
		r.logger.Error("Failed to find station by exact name", zap.String("name", name), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	query = `
		SELECT station_id, name, line, latitude, longitude, created_at
		FROM stations
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY length(name), station_id
		LIMIT 1
	`

	err = r.db.GetContext(ctx, &s, query, name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to find station by partial name", zap.String("name", name), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &s, nil
}

func (r *stationRepository) ListStations(ctx context.Context) ([]*domain.Station, error) {
	query := `
		SELECT station_id, name, line, latitude, longitude, created_at
		FROM stations
		ORDER BY line, name
	`

	var stations []*domain.Station
	if err := r.db.SelectContext(ctx, &stations, query); err != nil {
		r.logger.Error("Failed to list stations", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return stations, nil
}

func (r *stationRepository) ListExits(ctx context.Context, stationID int64) ([]*domain.Exit, error) {
	query := `
		SELECT exit_id, station_id, exit_number, has_elevator, elevator_type,
			latitude, longitude, floor_level, description,
			elevator_location, elevator_button_info, elevator_time_seconds,
			gate_direction, landmark, has_slope, slope_info
		FROM exits
		WHERE station_id = $1
		ORDER BY exit_number
	`

	var exits []*domain.Exit
	if err := r.db.SelectContext(ctx, &exits, query, stationID); err != nil {
		r.logger.Error("Failed to list exits", zap.Int64("station_id", stationID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return exits, nil
}

func (r *stationRepository) FindExit(ctx context.Context, stationID int64, exitNumber string) (*domain.Exit, error) {
	query := `
		SELECT exit_id, station_id, exit_number, has_elevator, elevator_type,
			latitude, longitude, floor_level, description,
			elevator_location, elevator_button_info, elevator_time_seconds,
			gate_direction, landmark, has_slope, slope_info
		FROM exits
		WHERE station_id = $1 AND exit_number = $2
	`

	var exit domain.Exit
	err := r.db.GetContext(ctx, &exit, query, stationID, exitNumber)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to find exit",
			zap.Int64("station_id", stationID),
			zap.String("exit_number", exitNumber),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}

	return &exit, nil
}

func (r *stationRepository) ListPlatformEdges(ctx context.Context, stationID int64) ([]*domain.PlatformEdge, error) {
	query := `
		SELECT edge_id, station_id, line, direction, car_position, car_number,
			door_number, gap_width, height_diff, platform_shape
		FROM platform_edges
		WHERE station_id = $1
		ORDER BY car_number NULLS LAST, door_number NULLS LAST
	`

	var edges []*domain.PlatformEdge
	if err := r.db.SelectContext(ctx, &edges, query, stationID); err != nil {
		r.logger.Error("Failed to list platform edges", zap.Int64("station_id", stationID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return edges, nil
}

func (r *stationRepository) ListChargingStations(ctx context.Context, stationID int64) ([]*domain.ChargingStation, error) {
	query := `
		SELECT charging_id, station_id, location, floor_level, charger_count,
			available, charging_time_minutes
		FROM charging_stations
		WHERE station_id = $1
		ORDER BY charging_id
	`

	var chargers []*domain.ChargingStation
	if err := r.db.SelectContext(ctx, &chargers, query, stationID); err != nil {
		r.logger.Error("Failed to list charging stations", zap.Int64("station_id", stationID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return chargers, nil
}

func (r *stationRepository) FindElevatorExitMapping(ctx context.Context, stationID int64, connectedExit string) (*domain.ElevatorExitMapping, error) {
	query := `
		SELECT mapping_id, station_id, connected_exit, elevator_location,
			direction_from_train, car_position_start, car_position_end,
			walking_distance_meters, walking_time_seconds, walking_direction
		FROM elevator_exit_mappings
		WHERE station_id = $1 AND connected_exit = $2
	`

	var m domain.ElevatorExitMapping
	err := r.db.GetContext(ctx, &m, query, stationID, connectedExit)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to find elevator-exit mapping",
			zap.Int64("station_id", stationID),
			zap.String("connected_exit", connectedExit),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}

	return &m, nil
}

func (r *stationRepository) ListElevatorExitMappings(ctx context.Context, stationID int64) ([]*domain.ElevatorExitMapping, error) {
	query := `
		SELECT mapping_id, station_id, connected_exit, elevator_location,
			direction_from_train, car_position_start, car_position_end,
			walking_distance_meters, walking_time_seconds, walking_direction
		FROM elevator_exit_mappings
		WHERE station_id = $1
		ORDER BY connected_exit
	`

	var mappings []*domain.ElevatorExitMapping
	if err := r.db.SelectContext(ctx, &mappings, query, stationID); err != nil {
		r.logger.Error("Failed to list elevator-exit mappings", zap.Int64("station_id", stationID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return mappings, nil
}
