package usecase

import (
	"testing"

	"github.com/navigation-microservice/internal/domain"
	"github.com/stretchr/testify/assert"
)

func testRoute() *domain.RouteDescriptor {
	return &domain.RouteDescriptor{
		RouteID:      42,
		StartStation: &domain.Station{ID: 1, Name: "강남", Line: "2호선"},
		EndStation:   &domain.Station{ID: 2, Name: "잠실", Line: "2호선"},
		Line:         "2호선",
		Direction:    "잠실 방면",
		StartExit:    makeExit("3", 37.4979, 127.0276, true),
		EndExit:      makeExit("4", 37.5133, 127.1001, true),
		Boarding:     domain.BoardingRange{CarStart: 7, CarEnd: 8, Reason: "엘리베이터와 가까운 위치"},
	}
}

func TestBuildCheckpoints_WithoutCharging(t *testing.T) {
	cps := buildCheckpoints(testRoute(), domain.UserProfile{NeedElevator: true})

	assert.Len(t, cps, 7)
	for i, cp := range cps {
		assert.Equal(t, i, cp.ID)
		assert.Equal(t, cp.Type, cp.Payload.CheckpointType())
	}

	assert.Equal(t, domain.CheckpointOrigin, cps[0].Type)
	assert.Equal(t, domain.CheckpointEndExit, cps[6].Type)

	// Only GPS-anchored stops carry coordinates
	assert.False(t, cps[0].HasCoordinates())
	assert.True(t, cps[1].HasCoordinates())
	assert.False(t, cps[4].HasCoordinates())
	assert.True(t, cps[6].HasCoordinates())

	waiting, ok := cps[3].Payload.(domain.WaitingPayload)
	assert.True(t, ok)
	assert.Equal(t, 7, waiting.CarStart)
	assert.Equal(t, 8, waiting.CarEnd)

	endExit, ok := cps[6].Payload.(domain.EndExitPayload)
	assert.True(t, ok)
	assert.Equal(t, "4", endExit.ExitNumber)
}

func TestBuildCheckpoints_WithCharging(t *testing.T) {
	cps := buildCheckpoints(testRoute(), domain.UserProfile{NeedChargingInfo: true})

	assert.Len(t, cps, 8)

	charging := cps[7]
	assert.Equal(t, domain.CheckpointCharging, charging.Type)
	assert.Equal(t, domain.ChargingCheckpointRadius, charging.Radius)
	assert.True(t, charging.Optional)

	payload, ok := charging.Payload.(domain.ChargingPayload)
	assert.True(t, ok)
	assert.Equal(t, "잠실", payload.StationName)
}

func TestBuildCheckpoints_DefaultRadius(t *testing.T) {
	cps := buildCheckpoints(testRoute(), domain.UserProfile{})

	for _, cp := range cps {
		assert.Equal(t, domain.DefaultCheckpointRadius, cp.Radius)
	}
}
