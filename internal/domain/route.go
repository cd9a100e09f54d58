package domain

import "time"

// Route health classification, ordered by severity.
const (
	StatusNormal  = "normal"
	StatusCaution = "caution"
	StatusWarning = "warning"
)

// UserProfile - accessibility needs attached to a route search.
type UserProfile struct {
	MobilityLevel    string `json:"mobility_level"`
	NeedElevator     bool   `json:"need_elevator"`
	PreferShort      bool   `json:"prefer_short"`
	NeedChargingInfo bool   `json:"need_charging_info"`
}

// BoardingRange - recommended car interval, inclusive on both ends.
type BoardingRange struct {
	CarStart int    `json:"car_start"`
	CarEnd   int    `json:"car_end"`
	Reason   string `json:"reason"`
}

// WalkingGuide - path from the user's position to the chosen start exit.
type WalkingGuide struct {
	DistanceMeters int      `json:"distance_meters"`
	TimeMinutes    int      `json:"time_minutes"`
	Direction      string   `json:"direction"`
	GuideText      string   `json:"guide_text"`
	HasSlope       bool     `json:"has_slope"`
	SlopeWarning   *string  `json:"slope_warning,omitempty"`
	Landmarks      []string `json:"landmarks,omitempty"`
}

// ArrivalGuide - disembark path from the recommended car to the egress exit.
type ArrivalGuide struct {
	ExitNumber            string   `json:"exit_number"`
	CarPosition           string   `json:"car_position"`
	DirectionFromTrain    string   `json:"direction_from_train"`
	WalkingDistanceMeters int      `json:"walking_distance_meters"`
	WalkingTimeSeconds    int      `json:"walking_time_seconds"`
	GuideText             string   `json:"guide_text"`
	ElevatorLocation      *string  `json:"elevator_location,omitempty"`
	Features              []string `json:"features,omitempty"`
}

// RouteDescriptor - the planned single-line route before response shaping.
type RouteDescriptor struct {
	RouteID              int64
	StartStation         *Station
	EndStation           *Station
	Line                 string
	Direction            string
	EstimatedTimeMinutes int
	DistanceMeters       int
	StartExit            *Exit
	EndExit              *Exit
	Boarding             BoardingRange
	WalkingGuide         *WalkingGuide
	ArrivalGuide         *ArrivalGuide
	Warnings             []string
	Status               string
}

// RouteCacheEntry - the navigable snapshot of a planned route. Checkpoints
// are indexed by their ID field, which is contiguous from zero.
type RouteCacheEntry struct {
	RouteID      int64        `json:"route_id"`
	StartStation string       `json:"start_station"`
	EndStation   string       `json:"end_station"`
	Line         string       `json:"line"`
	Direction    string       `json:"direction"`
	NeedElevator bool         `json:"need_elevator"`
	Checkpoints  []Checkpoint `json:"checkpoints"`
	CreatedAt    time.Time    `json:"created_at"`
	ExpiresAt    time.Time    `json:"expires_at"`
}

// FindCheckpoint returns the checkpoint with the given ID, or nil.
func (e *RouteCacheEntry) FindCheckpoint(checkpointID int) *Checkpoint {
	for i := range e.Checkpoints {
		if e.Checkpoints[i].ID == checkpointID {
			return &e.Checkpoints[i]
		}
	}
	return nil
}

// RouteCacheStats - cache observability snapshot.
type RouteCacheStats struct {
	TotalRoutes   int     `json:"total_routes"`
	ActiveRoutes  int     `json:"active_routes"`
	ExpiredRoutes int     `json:"expired_routes"`
	TTLHours      float64 `json:"ttl_hours"`
}
