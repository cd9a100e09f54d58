package usecase

import (
	"testing"

	"github.com/navigation-microservice/internal/domain"
	"github.com/navigation-microservice/internal/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func makeExit(number string, lat, lon float64, hasElevator bool) *domain.Exit {
	return &domain.Exit{
		ExitNumber:  number,
		HasElevator: hasElevator,
		Lat:         ptr(lat),
		Lon:         ptr(lon),
	}
}

func TestSelectBestExit_WorkingElevatorBeatsProximity(t *testing.T) {
	// Exit 1 is ~50m away but its elevator is down; exit 3 is ~400m away
	// with a working elevator. A rider who needs the elevator gets exit 3.
	userLoc := &utils.Point{Lat: 37.4979, Lon: 127.0276}
	exits := []*domain.Exit{
		makeExit("1", 37.49835, 127.0276, true), // ~50m north
		makeExit("3", 37.5015, 127.0276, true),  // ~400m north
	}
	elevator := &domain.ElevatorStatus{
		Records: []domain.ElevatorRecord{
			{Location: "1번 출입구 외부", Working: false},
			{Location: "3번 출입구 외부", Working: true},
		},
	}
	profile := domain.UserProfile{NeedElevator: true}

	best := selectBestExit(exits, userLoc, profile, elevator)

	assert.NotNil(t, best)
	assert.Equal(t, "3", best.ExitNumber)
}

func TestSelectBestExit_ProximityDecidesWhenElevatorsEqual(t *testing.T) {
	userLoc := &utils.Point{Lat: 37.4979, Lon: 127.0276}
	exits := []*domain.Exit{
		makeExit("1", 37.49835, 127.0276, true),
		makeExit("2", 37.5015, 127.0276, true),
	}
	profile := domain.UserProfile{NeedElevator: true}

	best := selectBestExit(exits, userLoc, profile, &domain.ElevatorStatus{AllWorking: true})

	assert.Equal(t, "1", best.ExitNumber)
}

func TestSelectBestExit_FallbackToNearestWithoutElevator(t *testing.T) {
	userLoc := &utils.Point{Lat: 37.4979, Lon: 127.0276}
	exits := []*domain.Exit{
		makeExit("1", 37.5015, 127.0276, false),
		makeExit("2", 37.49835, 127.0276, false),
	}
	profile := domain.UserProfile{NeedElevator: true}

	best := selectBestExit(exits, userLoc, profile, nil)

	assert.NotNil(t, best)
	assert.Equal(t, "2", best.ExitNumber)
}

func TestSelectBestExit_SkipsExitsWithoutCoordinates(t *testing.T) {
	exits := []*domain.Exit{
		{ExitNumber: "1", HasElevator: true}, // no GPS
		makeExit("2", 37.5, 127.0, false),
	}

	best := selectBestExit(exits, nil, domain.UserProfile{}, nil)
	assert.Equal(t, "2", best.ExitNumber)

	best = selectBestExit([]*domain.Exit{{ExitNumber: "1"}}, nil, domain.UserProfile{}, nil)
	assert.Nil(t, best)
}

func TestSelectBestExit_TieKeepsFirstExit(t *testing.T) {
	// Identical coordinates and elevator state: strict comparison keeps
	// the exit listed first.
	exits := []*domain.Exit{
		makeExit("2", 37.5, 127.0, true),
		makeExit("4", 37.5, 127.0, true),
	}

	best := selectBestExit(exits, nil, domain.UserProfile{}, nil)
	assert.Equal(t, "2", best.ExitNumber)
}

func TestElevatorExitSets(t *testing.T) {
	status := &domain.ElevatorStatus{
		Records: []domain.ElevatorRecord{
			{Location: "3번 출입구 엘리베이터", Working: true},
			{Location: "10번 출입구", Working: false},
			{Location: "대합실", Working: true}, // no exit label
		},
	}

	working, broken := elevatorExitSets(status)
	assert.True(t, working["3"])
	assert.True(t, broken["10"])
	assert.Len(t, working, 1)
	assert.Len(t, broken, 1)
}
