package dto

import "github.com/navigation-microservice/internal/domain"

// RealtimeTrainInfo - next-train snippet embedded in route search responses.
type RealtimeTrainInfo struct {
	ArrivalMinutes  int    `json:"arrival_minutes"`
	ArrivalSeconds  int    `json:"arrival_seconds"`
	ArrivalMessage  string `json:"arrival_message,omitempty"`
	TerminalStation string `json:"terminal_station,omitempty"`
	TrainClass      string `json:"train_class"`
	IsLastTrain     bool   `json:"is_last_train"`
	CurrentLocation string `json:"current_location,omitempty"`
}

// RouteSearchResponse - planned route with checkpoints for client-side
// position tracking.
type RouteSearchResponse struct {
	RouteID              int64                `json:"route_id"`
	StartStation         string               `json:"start_station"`
	EndStation           string               `json:"end_station"`
	Line                 string               `json:"line"`
	Direction            string               `json:"direction"`
	EstimatedTimeMinutes int                  `json:"estimated_time_minutes"`
	DistanceMeters       int                  `json:"distance_meters"`
	Checkpoints          []domain.Checkpoint  `json:"checkpoints"`
	Boarding             domain.BoardingRange `json:"boarding"`
	WalkingGuide         *domain.WalkingGuide `json:"walking_guide,omitempty"`
	ArrivalGuide         *domain.ArrivalGuide `json:"arrival_guide,omitempty"`
	RealtimeTrain        *RealtimeTrainInfo   `json:"realtime_train,omitempty"`
	Warnings             []string             `json:"warnings"`
	Status               string               `json:"status"`
}

// NextCheckpointInfo - the target the user should head for next.
type NextCheckpointInfo struct {
	ID       int                   `json:"id"`
	Type     domain.CheckpointType `json:"type"`
	Location string                `json:"location,omitempty"`
}

// NavigationGuideResponse - live guidance for the current position.
type NavigationGuideResponse struct {
	GuideText             string                `json:"guide_text"`
	CurrentCheckpointID   int                   `json:"current_checkpoint_id"`
	CurrentCheckpointType domain.CheckpointType `json:"current_checkpoint_type"`
	NextCheckpoint        *NextCheckpointInfo   `json:"next_checkpoint,omitempty"`
	DistanceToNext        *int                  `json:"distance_to_next,omitempty"`
	Direction             string                `json:"direction,omitempty"`
	IsCheckpointReached   bool                  `json:"is_checkpoint_reached"`
	ReachedCheckpointID   *int                  `json:"reached_checkpoint_id,omitempty"`
	RealtimeInfo          *RealtimeInfo         `json:"realtime_info,omitempty"`
	Status                string                `json:"status"`
}

// RealtimeInfo - live feed context attached to guidance responses.
type RealtimeInfo struct {
	ElevatorStatus *domain.ElevatorStatus `json:"elevator_status,omitempty"`
	TrainArrivals  []domain.TrainArrival  `json:"train_arrivals,omitempty"`
	ExitClosure    *domain.ExitClosure    `json:"exit_closure,omitempty"`
	Chargers       []domain.ChargerInfo   `json:"chargers,omitempty"`
}

// AlternativeRoute - replacement path when the planned exit is unusable.
type AlternativeRoute struct {
	Reason      string      `json:"reason"`
	Alternative string      `json:"alternative"`
	EndDate     string      `json:"end_date,omitempty"`
	GPS         *Coordinate `json:"gps,omitempty"`
}

// CheckpointGuideResponse - on-arrival guidance for one checkpoint.
type CheckpointGuideResponse struct {
	CheckpointID     int                   `json:"checkpoint_id"`
	CheckpointType   domain.CheckpointType `json:"checkpoint_type"`
	GuideText        string                `json:"guide_text"`
	Status           string                `json:"status"`
	RealtimeInfo     *RealtimeInfo         `json:"realtime_info,omitempty"`
	AlternativeRoute *AlternativeRoute     `json:"alternative_route,omitempty"`
}

// StationInfo - one row in the station list.
type StationInfo struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Line string  `json:"line"`
	Lat  float64 `json:"latitude"`
	Lon  float64 `json:"longitude"`
}

// StationListResponse - all known stations.
type StationListResponse struct {
	Count    int           `json:"count"`
	Stations []StationInfo `json:"stations"`
}

// RealtimeStationResponse - every live feed for one station in one call.
type RealtimeStationResponse struct {
	StationName    string                 `json:"station_name"`
	ElevatorStatus *domain.ElevatorStatus `json:"elevator_status"`
	TrainArrivals  []domain.TrainArrival  `json:"train_arrivals"`
	Chargers       []domain.ChargerInfo   `json:"chargers"`
}
