package domain

// ElevatorRecord - one elevator row from the facility status feed.
type ElevatorRecord struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Floors      string `json:"floors"`
	StationName string `json:"station_name"`
	Working     bool   `json:"working"`
}

// ElevatorStatus - aggregated live elevator state for a station. AllWorking
// is vacuously true when Records is empty (the feed had no rows), so call
// sites must not treat an empty status as a verified healthy station.
type ElevatorStatus struct {
	Records    []ElevatorRecord `json:"records"`
	AllWorking bool             `json:"all_working"`
}

// WorkingCount returns the number of elevators currently in service.
func (s *ElevatorStatus) WorkingCount() int {
	n := 0
	for _, r := range s.Records {
		if r.Working {
			n++
		}
	}
	return n
}

// ExitClosure - live closure notice for a station exit.
type ExitClosure struct {
	Closed      bool   `json:"closed"`
	Line        string `json:"line,omitempty"`
	Station     string `json:"station,omitempty"`
	Location    string `json:"location,omitempty"`
	Reason      string `json:"reason,omitempty"`
	Alternative string `json:"alternative,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
}

// ChargerInfo - wheelchair charger row from the city facility feed.
type ChargerInfo struct {
	FacilityName  string `json:"facility_name"`
	LineName      string `json:"line_name"`
	StationName   string `json:"station_name"`
	Floor         string `json:"floor,omitempty"`
	Location      string `json:"location,omitempty"`
	ConnectorType string `json:"connector_type,omitempty"`
	ChargerCount  int    `json:"charger_count"`
	UsageFee      string `json:"usage_fee,omitempty"`
}

// TrainArrival - one realtime arrival row for a station.
type TrainArrival struct {
	SubwayID      string `json:"subway_id"`
	UpDownLine    string `json:"up_down_line"`
	TrainLineName string `json:"train_line_name"`
	StationName   string `json:"station_name"`
	TrainClass    string `json:"train_class"`
	ETASeconds    int    `json:"eta_seconds"`
	TrainNo       string `json:"train_no,omitempty"`
	TerminalName  string `json:"terminal_name,omitempty"`
	StatusText    string `json:"status_text,omitempty"`
	DetailText    string `json:"detail_text,omitempty"`
	ArrivalCode   string `json:"arrival_code,omitempty"`
	IsLastTrain   bool   `json:"is_last_train"`
}

// ETAMinutes rounds the arrival estimate down to whole minutes.
func (a *TrainArrival) ETAMinutes() int {
	if a.ETASeconds <= 0 {
		return 0
	}
	return a.ETASeconds / 60
}

// GuideContext - everything the guide text renderer may draw on for one
// checkpoint. Nil/empty fields mean the data was unavailable, and the
// renderer degrades to reference-only text.
type GuideContext struct {
	StationName    string
	CheckpointType CheckpointType
	ExitNumber     string
	Line           string
	Direction      string
	NeedElevator   bool
	CarStart       int
	CarEnd         int
	BoardingReason string

	// Reference store context
	Exit                 *Exit
	Charger              *ChargingStation
	EndStationName       string
	EstimatedTimeMinutes int

	// Live feed context
	Elevator *ElevatorStatus
	Closure  *ExitClosure
	Arrivals []TrainArrival
	Chargers []ChargerInfo

	// AlternativeExit names a replacement exit (e.g. "5번 출구") when the
	// planned one is closed or its elevator is down.
	AlternativeExit string
}
