package domain

// CheckpointType discriminates checkpoint payload variants.
type CheckpointType string

const (
	CheckpointOrigin        CheckpointType = "origin"
	CheckpointStartExit     CheckpointType = "start_exit"
	CheckpointStartPlatform CheckpointType = "start_platform"
	CheckpointWaiting       CheckpointType = "waiting"
	CheckpointRiding        CheckpointType = "riding"
	CheckpointEndPlatform   CheckpointType = "end_platform"
	CheckpointEndExit       CheckpointType = "end_exit"
	CheckpointCharging      CheckpointType = "charging"
)

// Arrival detection radii in meters.
const (
	DefaultCheckpointRadius  = 30
	ChargingCheckpointRadius = 50
)

// Checkpoint - one ordered stop along a route. IDs are contiguous from zero.
// Lat/Lon are nil for checkpoints that have no GPS anchor (platform, riding);
// arrival at those is driven by time or user confirmation, not geometry.
type Checkpoint struct {
	ID       int              `json:"id"`
	Type     CheckpointType   `json:"type"`
	Location string           `json:"location"`
	Lat      *float64         `json:"latitude,omitempty"`
	Lon      *float64         `json:"longitude,omitempty"`
	Radius   int              `json:"radius"`
	Optional bool             `json:"optional,omitempty"`
	Payload  CheckpointPayload `json:"data"`
}

// HasCoordinates reports whether geometric arrival detection applies.
func (c *Checkpoint) HasCoordinates() bool {
	return c != nil && c.Lat != nil && c.Lon != nil
}

// CheckpointPayload is the closed set of per-type checkpoint data variants.
// Each variant carries exactly the fields its checkpoint type needs.
type CheckpointPayload interface {
	CheckpointType() CheckpointType
}

// OriginPayload - the user's starting position.
type OriginPayload struct {
	StationName string `json:"station_name"`
	ExitNumber  string `json:"exit_number"`
	Line        string `json:"line"`
	Direction   string `json:"direction"`
}

func (OriginPayload) CheckpointType() CheckpointType { return CheckpointOrigin }

// StartExitPayload - the chosen entrance at the departure station.
type StartExitPayload struct {
	StationName  string  `json:"station_name"`
	ExitNumber   string  `json:"exit_number"`
	Line         string  `json:"line"`
	Direction    string  `json:"direction"`
	HasElevator  bool    `json:"has_elevator"`
	ElevatorType *string `json:"elevator_type,omitempty"`
}

func (StartExitPayload) CheckpointType() CheckpointType { return CheckpointStartExit }

// StartPlatformPayload - the departure platform.
type StartPlatformPayload struct {
	StationName string `json:"station_name"`
	Line        string `json:"line"`
	Direction   string `json:"direction"`
}

func (StartPlatformPayload) CheckpointType() CheckpointType { return CheckpointStartPlatform }

// WaitingPayload - boarding position while waiting for the train.
type WaitingPayload struct {
	StationName    string `json:"station_name"`
	Line           string `json:"line"`
	Direction      string `json:"direction"`
	CarStart       int    `json:"car_start"`
	CarEnd         int    `json:"car_end"`
	BoardingReason string `json:"boarding_reason"`
}

func (WaitingPayload) CheckpointType() CheckpointType { return CheckpointWaiting }

// RidingPayload - the in-train segment.
type RidingPayload struct {
	StartStation string `json:"start_station"`
	EndStation   string `json:"end_station"`
	Line         string `json:"line"`
	Direction    string `json:"direction"`
}

func (RidingPayload) CheckpointType() CheckpointType { return CheckpointRiding }

// EndPlatformPayload - arrival platform, including which car range puts the
// user closest to the platform elevator.
type EndPlatformPayload struct {
	StationName        string `json:"station_name"`
	ExitNumber         string `json:"exit_number"`
	Line               string `json:"line"`
	Direction          string `json:"direction"`
	CarStart           int    `json:"car_start,omitempty"`
	CarEnd             int    `json:"car_end,omitempty"`
	DirectionFromTrain string `json:"direction_from_train,omitempty"`
}

func (EndPlatformPayload) CheckpointType() CheckpointType { return CheckpointEndPlatform }

// EndExitPayload - egress exit at the destination station.
type EndExitPayload struct {
	StationName         string  `json:"station_name"`
	ExitNumber          string  `json:"exit_number"`
	Line                string  `json:"line"`
	Direction           string  `json:"direction"`
	HasElevator         bool    `json:"has_elevator"`
	ElevatorButtonInfo  *string `json:"elevator_button_info,omitempty"`
	ElevatorTimeSeconds *int    `json:"elevator_time_seconds,omitempty"`
	GateDirection       *string `json:"gate_direction,omitempty"`
}

func (EndExitPayload) CheckpointType() CheckpointType { return CheckpointEndExit }

// ChargingPayload - optional wheelchair charger stop at the destination.
type ChargingPayload struct {
	StationName string `json:"station_name"`
}

func (ChargingPayload) CheckpointType() CheckpointType { return CheckpointCharging }
