package usecase

import (
	"regexp"

	"github.com/navigation-microservice/internal/domain"
	"github.com/navigation-microservice/internal/pkg/utils"
)

// exitLabelRe pulls the exit number out of facility-feed location strings
// like "3번 출입구 외부" or "10번 출입구".
var exitLabelRe = regexp.MustCompile(`(\d+)번\s*출입구`)

// elevatorExitSets splits the live elevator records into exits with a
// working elevator and exits where every mentioned elevator is down.
func elevatorExitSets(status *domain.ElevatorStatus) (working, broken map[string]bool) {
	working = make(map[string]bool)
	broken = make(map[string]bool)
	if status == nil {
		return working, broken
	}
	for _, rec := range status.Records {
		m := exitLabelRe.FindStringSubmatch(rec.Location)
		if m == nil {
			continue
		}
		if rec.Working {
			working[m[1]] = true
		} else {
			broken[m[1]] = true
		}
	}
	return working, broken
}

// selectBestExit scores a station's exits against the user's position and
// accessibility needs and returns the winner, or nil when no exit has GPS
// coordinates.
//
// Scoring: base 100; a broken-only elevator exit loses 200; proximity adds
// up to 100 (minus distance/10, floored at 0); a working elevator adds 100,
// any other elevator evidence 30. Ties keep the earlier exit. When the user
// needs an elevator and no exit has one, the nearest exit is returned as a
// fallback so the route still completes.
func selectBestExit(
	exits []*domain.Exit,
	userLoc *utils.Point,
	profile domain.UserProfile,
	elevator *domain.ElevatorStatus,
) *domain.Exit {
	workingExits, brokenExits := elevatorExitSets(elevator)

	var best *domain.Exit
	bestScore := -1.0

	var fallback *domain.Exit
	fallbackDistance := 0.0

	for _, exit := range exits {
		if !exit.HasCoordinates() {
			continue
		}

		score := 100.0

		// Live feed beats the reference store on elevator presence.
		hasWorking := workingExits[exit.ExitNumber]
		hasBroken := brokenExits[exit.ExitNumber]
		hasAny := hasWorking || hasBroken || exit.HasElevator

		if profile.NeedElevator {
			if hasBroken && !hasWorking {
				score -= 200
			} else if !hasAny {
				if userLoc != nil {
					d := utils.HaversineDistance(userLoc.Lat, userLoc.Lon, *exit.Lat, *exit.Lon)
					if fallback == nil || d < fallbackDistance {
						fallback = exit
						fallbackDistance = d
					}
				} else if fallback == nil {
					fallback = exit
				}
				continue
			}
		}

		if userLoc != nil {
			d := utils.HaversineDistance(userLoc.Lat, userLoc.Lon, *exit.Lat, *exit.Lon)
			bonus := 100 - d/10
			if bonus > 0 {
				score += bonus
			}
		}

		if hasWorking {
			score += 100
		} else if hasAny {
			score += 30
		}

		if score > bestScore {
			bestScore = score
			best = exit
		}
	}

	if best == nil {
		return fallback
	}
	return best
}
