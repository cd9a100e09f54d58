package domain

import "time"

// Station - reference record for a single subway station. Read-only for this
// service; the reference store owns the data.
type Station struct {
	ID        int64     `json:"id" db:"station_id"`
	Name      string    `json:"name" db:"name"`
	Line      string    `json:"line" db:"line"`
	Lat       float64   `json:"latitude" db:"latitude"`
	Lon       float64   `json:"longitude" db:"longitude"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Exit - a station entrance/egress point. Composite numbers like "2-1" are
// valid. Optional barrier-free columns stay nil when the survey data has no
// value; call sites must not probe defaults into them.
type Exit struct {
	ID                  int64    `json:"id" db:"exit_id"`
	StationID           int64    `json:"station_id" db:"station_id"`
	ExitNumber          string   `json:"exit_number" db:"exit_number"`
	HasElevator         bool     `json:"has_elevator" db:"has_elevator"`
	ElevatorType        *string  `json:"elevator_type,omitempty" db:"elevator_type"`
	Lat                 *float64 `json:"latitude,omitempty" db:"latitude"`
	Lon                 *float64 `json:"longitude,omitempty" db:"longitude"`
	FloorLevel          *string  `json:"floor_level,omitempty" db:"floor_level"`
	Description         *string  `json:"description,omitempty" db:"description"`
	ElevatorLocation    *string  `json:"elevator_location,omitempty" db:"elevator_location"`
	ElevatorButtonInfo  *string  `json:"elevator_button_info,omitempty" db:"elevator_button_info"`
	ElevatorTimeSeconds *int     `json:"elevator_time_seconds,omitempty" db:"elevator_time_seconds"`
	GateDirection       *string  `json:"gate_direction,omitempty" db:"gate_direction"`
	Landmark            *string  `json:"landmark,omitempty" db:"landmark"`
	HasSlope            bool     `json:"has_slope" db:"has_slope"`
	SlopeInfo           *string  `json:"slope_info,omitempty" db:"slope_info"`
}

// HasCoordinates reports whether the exit carries a GPS anchor. Exits without
// one are ineligible for distance scoring.
func (e *Exit) HasCoordinates() bool {
	return e != nil && e.Lat != nil && e.Lon != nil
}

// GapWidth - categorical platform-to-train gap width.
type GapWidth string

const (
	GapNarrow GapWidth = "narrow"
	GapNormal GapWidth = "normal"
	GapWide   GapWidth = "wide"
)

// HeightDiff - categorical platform-to-train height difference.
type HeightDiff string

const (
	HeightLow    HeightDiff = "low"
	HeightNormal HeightDiff = "normal"
	HeightHigh   HeightDiff = "high"
)

// PlatformShape - platform curvature at the edge.
type PlatformShape string

const (
	ShapeStraight PlatformShape = "straight"
	ShapeCurved   PlatformShape = "curved"
)

// PlatformEdge - per-car platform edge survey record. CarNumber may be
// missing for unsurveyed segments; such rows are excluded from boarding
// recommendations rather than default-scored.
type PlatformEdge struct {
	ID            int64         `json:"id" db:"edge_id"`
	StationID     int64         `json:"station_id" db:"station_id"`
	Line          string        `json:"line" db:"line"`
	Direction     string        `json:"direction" db:"direction"`
	CarPosition   *string       `json:"car_position,omitempty" db:"car_position"`
	CarNumber     *int          `json:"car_number,omitempty" db:"car_number"`
	DoorNumber    *int          `json:"door_number,omitempty" db:"door_number"`
	GapWidth      GapWidth      `json:"gap_width" db:"gap_width"`
	HeightDiff    HeightDiff    `json:"height_diff" db:"height_diff"`
	PlatformShape PlatformShape `json:"platform_shape" db:"platform_shape"`
}

// ChargingStation - wheelchair charger location inside a station.
type ChargingStation struct {
	ID                  int64   `json:"id" db:"charging_id"`
	StationID           int64   `json:"station_id" db:"station_id"`
	Location            string  `json:"location" db:"location"`
	FloorLevel          *string `json:"floor_level,omitempty" db:"floor_level"`
	ChargerCount        int     `json:"charger_count" db:"charger_count"`
	Available           bool    `json:"available" db:"available"`
	ChargingTimeMinutes *int    `json:"charging_time_minutes,omitempty" db:"charging_time_minutes"`
}

// ElevatorExitMapping - disembark guidance: which car range and walking path
// connect the platform elevator to a given exit.
type ElevatorExitMapping struct {
	ID                    int64   `json:"id" db:"mapping_id"`
	StationID             int64   `json:"station_id" db:"station_id"`
	ConnectedExit         string  `json:"connected_exit" db:"connected_exit"`
	ElevatorLocation      *string `json:"elevator_location,omitempty" db:"elevator_location"`
	DirectionFromTrain    *string `json:"direction_from_train,omitempty" db:"direction_from_train"`
	CarPositionStart      *int    `json:"car_position_start,omitempty" db:"car_position_start"`
	CarPositionEnd        *int    `json:"car_position_end,omitempty" db:"car_position_end"`
	WalkingDistanceMeters *int    `json:"walking_distance_meters,omitempty" db:"walking_distance_meters"`
	WalkingTimeSeconds    *int    `json:"walking_time_seconds,omitempty" db:"walking_time_seconds"`
	WalkingDirection      *string `json:"walking_direction,omitempty" db:"walking_direction"`
}
