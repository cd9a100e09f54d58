package utils_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/navigation-microservice/internal/pkg/utils"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("zero distance for identical points", func(t *testing.T) {
		assert.Equal(t, 0.0, utils.HaversineDistance(37.4979, 127.0276, 37.4979, 127.0276))
	})

	t.Run("symmetric", func(t *testing.T) {
		d1 := utils.HaversineDistance(37.5663, 126.9779, 37.4979, 127.0276)
		d2 := utils.HaversineDistance(37.4979, 127.0276, 37.5663, 126.9779)
		assert.InDelta(t, d1, d2, 1e-9)
	})

	t.Run("Seoul City Hall to Gangnam", func(t *testing.T) {
		// Known pair roughly 8.5 km apart
		d := utils.HaversineDistance(37.5663, 126.9779, 37.4979, 127.0276)
		assert.Greater(t, d, 8000.0)
		assert.Less(t, d, 8500.0)
	})
}

func TestCompassBearing(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   utils.Bearing
	}{
		{"due north", 37.5, 127.0, 37.6, 127.0, utils.BearingN},
		{"due south", 37.5, 127.0, 37.4, 127.0, utils.BearingS},
		{"due east", 37.5, 127.0, 37.5, 127.1, utils.BearingE},
		{"due west", 37.5, 127.0, 37.5, 126.9, utils.BearingW},
		{"north-east diagonal", 37.5, 127.0, 37.6, 127.1, utils.BearingNE},
		{"south-west diagonal", 37.5, 127.0, 37.4, 126.9, utils.BearingSW},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.CompassBearing(tt.lat1, tt.lon1, tt.lat2, tt.lon2))
		})
	}

	t.Run("boundary angle resolves to lower sector", func(t *testing.T) {
		// Δlat and Δlon chosen so atan2 yields exactly 22.5°; the tie goes
		// to N, not NE.
		dLat := 1.0
		dLon := math.Tan(22.5 * math.Pi / 180.0)
		assert.Equal(t, utils.BearingN, utils.CompassBearing(0, 0, dLat, dLon))
	})
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, utils.ValidateCoordinates(37.5663, 126.9779))
	assert.False(t, utils.ValidateCoordinates(999.0, 127.0))
	assert.False(t, utils.ValidateCoordinates(37.5, 181.0))
	assert.False(t, utils.ValidateCoordinates(math.NaN(), 127.0))
}
