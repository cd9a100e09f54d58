package dto

import "github.com/navigation-microservice/internal/domain"

// Coordinate - GPS point in request bodies.
type Coordinate struct {
	Lat float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lon float64 `json:"lon" validate:"required,min=-180,max=180"`
}

// RouteSearchRequest - accessible route search between two stations.
type RouteSearchRequest struct {
	StartStation string             `json:"start_station" validate:"required,min=1"`
	EndStation   string             `json:"end_station" validate:"required,min=1"`
	UserLocation Coordinate         `json:"user_location" validate:"required"`
	UserTags     domain.UserProfile `json:"user_tags"`
}

// NavigationGuideRequest - periodic position update during navigation.
// Clients send this every 5-10 seconds.
type NavigationGuideRequest struct {
	RouteID             int64      `json:"route_id" validate:"required"`
	CurrentLocation     Coordinate `json:"current_location" validate:"required"`
	CurrentCheckpointID int        `json:"current_checkpoint_id" validate:"min=0"`
}

// CheckpointGuideRequest - on-arrival guide generation for one checkpoint.
type CheckpointGuideRequest struct {
	CheckpointID int    `json:"checkpoint_id" validate:"min=0"`
	StationName  string `json:"station_name" validate:"required"`
	ExitNumber   string `json:"exit_number,omitempty"`
	Line         string `json:"line,omitempty"`
	Direction    string `json:"direction,omitempty"`
	NeedElevator bool   `json:"need_elevator"`
}
