package utils

import "math"

const earthRadiusMeters = 6371000.0

// Point is a GPS coordinate pair.
type Point struct {
	Lat float64
	Lon float64
}

// Bearing is an 8-point compass direction between two coordinates.
type Bearing string

const (
	BearingN  Bearing = "N"
	BearingNE Bearing = "NE"
	BearingE  Bearing = "E"
	BearingSE Bearing = "SE"
	BearingS  Bearing = "S"
	BearingSW Bearing = "SW"
	BearingW  Bearing = "W"
	BearingNW Bearing = "NW"
)

// koreanBearings - localized labels used in rider-facing guide text.
var koreanBearings = map[Bearing]string{
	BearingN:  "북쪽",
	BearingNE: "북동쪽",
	BearingE:  "동쪽",
	BearingSE: "남동쪽",
	BearingS:  "남쪽",
	BearingSW: "남서쪽",
	BearingW:  "서쪽",
	BearingNW: "북서쪽",
}

// Korean returns the localized label for the bearing.
func (b Bearing) Korean() string {
	if label, ok := koreanBearings[b]; ok {
		return label
	}
	return string(b)
}

// HaversineDistance computes the great-circle distance between two GPS
// coordinates in meters.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180.0
	phi2 := lat2 * math.Pi / 180.0
	dPhi := (lat2 - lat1) * math.Pi / 180.0
	dLambda := (lon2 - lon1) * math.Pi / 180.0

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// CompassBearing buckets the angle of (Δlon, Δlat) into 8 fixed 45° sectors.
// Sector boundaries (±22.5°, ±67.5°, ±112.5°, ±157.5°) resolve to the
// lower-indexed sector in N,NE,E,SE,S,SW,W,NW order, so exactly 22.5° is N.
func CompassBearing(lat1, lon1, lat2, lon2 float64) Bearing {
	angle := math.Atan2(lon2-lon1, lat2-lat1) * 180.0 / math.Pi

	switch {
	case angle >= -22.5 && angle <= 22.5:
		return BearingN
	case angle > 22.5 && angle <= 67.5:
		return BearingNE
	case angle > 67.5 && angle <= 112.5:
		return BearingE
	case angle > 112.5 && angle <= 157.5:
		return BearingSE
	case angle > 157.5 || angle <= -157.5:
		return BearingS
	case angle > -157.5 && angle <= -112.5:
		return BearingSW
	case angle > -112.5 && angle <= -67.5:
		return BearingW
	default:
		return BearingNW
	}
}

// ValidateCoordinates reports whether lat/lon form a well-formed coordinate.
func ValidateCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
