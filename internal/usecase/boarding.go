package usecase

import (
	"fmt"
	"sort"

	"github.com/navigation-microservice/internal/domain"
)

// calculateOptimalBoarding picks the car range to board based on the
// destination's platform edge survey: cars where the gap is wide and the
// height difference low are easiest for wheelchair users. Without survey
// data, cars 7-8 target the typical platform elevator position when the
// egress exit has one, otherwise the platform center (5-6).
func calculateOptimalBoarding(edges []*domain.PlatformEdge, endExit *domain.Exit) domain.BoardingRange {
	carSet := make(map[int]bool)
	for _, edge := range edges {
		if edge.CarNumber == nil {
			continue
		}
		if edge.GapWidth == domain.GapWide && edge.HeightDiff == domain.HeightLow {
			carSet[*edge.CarNumber] = true
		}
	}

	if len(carSet) > 0 {
		cars := make([]int, 0, len(carSet))
		for car := range carSet {
			cars = append(cars, car)
		}
		sort.Ints(cars)

		carStart := cars[0]
		carEnd := carStart
		if len(cars) > 1 {
			carEnd = cars[1]
		}

		return domain.BoardingRange{
			CarStart: carStart,
			CarEnd:   carEnd,
			Reason: fmt.Sprintf(
				"도착역 %s번 출구 엘리베이터와 가깝고, 승강장과 열차 간격이 좁아 승하차가 편한 위치",
				endExit.ExitNumber,
			),
		}
	}

	if endExit.HasElevator {
		return domain.BoardingRange{
			CarStart: 7,
			CarEnd:   8,
			Reason:   fmt.Sprintf("%s번 출구 엘리베이터와 가까운 위치", endExit.ExitNumber),
		}
	}

	return domain.BoardingRange{
		CarStart: 5,
		CarEnd:   6,
		Reason:   "승강장 중앙 위치",
	}
}
