package guidetext

import (
	"context"
	"fmt"
	"strings"

	"github.com/navigation-microservice/internal/domain"
	"github.com/navigation-microservice/internal/domain/repository"
	"go.uber.org/zap"
)

// renderer produces user-facing Korean guidance from checkpoint context.
// Text is assembled from fixed templates so output stays predictable enough
// for TTS playback on the client.
type renderer struct {
	logger *zap.Logger
}

func NewRenderer(logger *zap.Logger) repository.GuideTextRepository {
	return &renderer{logger: logger}
}

func (r *renderer) Render(ctx context.Context, question string, gc domain.GuideContext) (string, error) {
	r.logger.Debug("Rendering guide text",
		zap.String("question", question),
		zap.String("checkpoint_type", string(gc.CheckpointType)),
		zap.String("station", gc.StationName),
	)

	switch gc.CheckpointType {
	case domain.CheckpointOrigin:
		return r.renderOrigin(gc), nil
	case domain.CheckpointStartExit, domain.CheckpointEndExit:
		return r.renderExit(gc), nil
	case domain.CheckpointStartPlatform, domain.CheckpointEndPlatform:
		return r.renderPlatform(gc), nil
	case domain.CheckpointWaiting:
		return r.renderWaiting(gc), nil
	case domain.CheckpointRiding:
		return r.renderRiding(gc), nil
	case domain.CheckpointCharging:
		return r.renderCharging(gc), nil
	default:
		return "경로를 따라 이동하세요.", nil
	}
}

func (r *renderer) renderOrigin(gc domain.GuideContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🚶 %s역으로 이동합니다.", gc.StationName)

	if gc.ExitNumber != "" {
		fmt.Fprintf(&b, "\n📍 %s번 출구로 가세요.", gc.ExitNumber)
	}
	if e := gc.Exit; e != nil {
		if e.HasElevator {
			if e.ElevatorLocation != nil {
				fmt.Fprintf(&b, " 엘리베이터는 %s에 있습니다.", *e.ElevatorLocation)
			} else {
				b.WriteString(" 이 출구에 엘리베이터가 있습니다.")
			}
		}
		if e.Landmark != nil {
			fmt.Fprintf(&b, " (%s 근처)", *e.Landmark)
		}
		if e.HasSlope {
			warning := "경사로 주의"
			if e.SlopeInfo != nil {
				warning = *e.SlopeInfo
			}
			fmt.Fprintf(&b, "\n⚠️ %s", warning)
		}
	}
	return b.String()
}

func (r *renderer) renderExit(gc domain.GuideContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🚇 %s역 %s번 출구에 도착하셨습니다.", gc.StationName, gc.ExitNumber)

	// A closed exit overrides everything else.
	if gc.Closure != nil && gc.Closure.Closed {
		reason := gc.Closure.Reason
		if reason == "" {
			reason = "공사"
		}
		fmt.Fprintf(&b, "\n\n⚠️ 죄송합니다. 현재 이 출구는 %s로 인해 사용하실 수 없습니다.", reason)
		if gc.AlternativeExit != "" {
			fmt.Fprintf(&b, " 대신 %s를 이용해주세요.", gc.AlternativeExit)
		}
		if gc.Closure.EndDate != "" {
			fmt.Fprintf(&b, " (%s까지 폐쇄 예정)", gc.Closure.EndDate)
		}
		return b.String()
	}

	e := gc.Exit
	switch {
	case gc.NeedElevator && e != nil && e.HasElevator:
		elevatorWorking := gc.Elevator == nil || gc.Elevator.AllWorking
		if elevatorWorking {
			b.WriteString("\n\n🛗 엘리베이터 상태: 정상 운행")
		} else {
			b.WriteString("\n\n⚠️ 현재 엘리베이터가 점검 중입니다.")
			if gc.AlternativeExit != "" {
				fmt.Fprintf(&b, " %s 엘리베이터를 이용해주세요.", gc.AlternativeExit)
			}
		}
		if e.ElevatorLocation != nil {
			fmt.Fprintf(&b, "\n위치: %s", *e.ElevatorLocation)
		}
		if e.ElevatorButtonInfo != nil {
			fmt.Fprintf(&b, "\n%s", *e.ElevatorButtonInfo)
		} else if e.FloorLevel != nil && strings.Contains(*e.FloorLevel, "B") {
			fmt.Fprintf(&b, "\n지하 %s층 버튼을 누르세요.", strings.ReplaceAll(*e.FloorLevel, "B", ""))
		}
		if e.ElevatorTimeSeconds != nil {
			if minutes := *e.ElevatorTimeSeconds / 60; minutes >= 1 {
				fmt.Fprintf(&b, "\n약 %d분 정도 걸려요.", minutes)
			} else {
				fmt.Fprintf(&b, "\n약 %d초 정도 걸려요.", *e.ElevatorTimeSeconds)
			}
		}
		if e.GateDirection != nil {
			fmt.Fprintf(&b, "\n\n%s", *e.GateDirection)
		} else {
			b.WriteString("\n\n하차 후 승강장에 진입하세요.")
		}

	case gc.NeedElevator:
		b.WriteString("\n\n⚠️ 이 출구에는 엘리베이터가 없습니다.")
		if gc.AlternativeExit != "" {
			fmt.Fprintf(&b, " %s에 엘리베이터가 있으니 그쪽으로 이동해주세요.", gc.AlternativeExit)
		}
	}

	if e != nil && e.Description != nil {
		fmt.Fprintf(&b, "\n\n📍 %s", *e.Description)
	}
	return b.String()
}

func (r *renderer) renderPlatform(gc domain.GuideContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🚉 %s역 승강장입니다.", gc.StationName)
	if gc.Line != "" && gc.Direction != "" {
		fmt.Fprintf(&b, "\n%s %s 방면 승강장으로 이동하세요.", gc.Line, gc.Direction)
	}

	if gc.CheckpointType == domain.CheckpointEndPlatform && gc.ExitNumber != "" {
		fmt.Fprintf(&b, "\n📍 %s번 출구 방향으로 이동하세요.", gc.ExitNumber)
	}

	if first := firstArrival(gc); first != nil {
		if minutes := first.ETAMinutes(); minutes >= 1 {
			fmt.Fprintf(&b, "\n\n🚇 다음 열차: 약 %d분 후", minutes)
		} else {
			b.WriteString("\n\n🚇 곧 열차가 도착합니다.")
		}
	}

	b.WriteString("\n\n⚠️ 안전선 안쪽에서 기다려주세요.")
	return b.String()
}

func (r *renderer) renderWaiting(gc domain.GuideContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "⏱️ %s역 승강장에서 대기 중입니다.", gc.StationName)

	if gc.CarStart > 0 && gc.CarEnd > 0 {
		fmt.Fprintf(&b, "\n💡 %d~%d번째 칸에서 탑승하세요.", gc.CarStart, gc.CarEnd)
		if gc.BoardingReason != "" {
			fmt.Fprintf(&b, " (%s)", gc.BoardingReason)
		}
	}

	arrivals := filterArrivalsByDirection(gc.Arrivals, gc.Direction)
	if len(arrivals) == 0 {
		b.WriteString("\n\n🚇 곧 열차가 도착합니다.")
	} else {
		first := arrivals[0]
		switch {
		case first.StatusText == "도착" || first.StatusText == "진입":
			fmt.Fprintf(&b, "\n\n🚇 열차가 %s합니다! 탑승 준비를 해주세요.", first.StatusText)
		case first.ETASeconds <= 60:
			fmt.Fprintf(&b, "\n\n🚇 곧 열차가 도착합니다! (약 %d초)", first.ETASeconds)
		default:
			fmt.Fprintf(&b, "\n\n🚇 약 %d분 후 열차가 도착합니다.", first.ETAMinutes())
		}
		if first.TerminalName != "" {
			fmt.Fprintf(&b, "\n행선지: %s행", first.TerminalName)
		}
		if first.DetailText != "" && first.StatusText != "도착" && first.StatusText != "진입" {
			fmt.Fprintf(&b, "\n현재 위치: %s", first.DetailText)
		}
		if first.TrainClass == "급행" || first.TrainClass == "특급" {
			fmt.Fprintf(&b, "\n⚡ %s 열차입니다.", first.TrainClass)
		}
		if first.IsLastTrain {
			b.WriteString("\n⚠️ 막차입니다!")
		}
		if len(arrivals) > 1 && arrivals[1].ETAMinutes() > 0 {
			fmt.Fprintf(&b, "\n\n다음 열차: 약 %d분 후", arrivals[1].ETAMinutes())
		}
	}

	b.WriteString("\n\n⚠️ 안전선 안쪽에서 기다려주세요.")
	return b.String()
}

func (r *renderer) renderRiding(gc domain.GuideContext) string {
	var b strings.Builder
	b.WriteString("🚇 열차에 탑승하셨습니다.")
	fmt.Fprintf(&b, "\n\n📍 목적지: %s역", gc.EndStationName)
	if gc.EstimatedTimeMinutes > 0 {
		fmt.Fprintf(&b, "\n예상 소요 시간: 약 %d분", gc.EstimatedTimeMinutes)
	}

	// An arrival row at the destination within 3 minutes means our train is
	// closing in on it.
	var approaching *domain.TrainArrival
	for i := range gc.Arrivals {
		if gc.Arrivals[i].ETASeconds <= 180 {
			approaching = &gc.Arrivals[i]
			break
		}
	}

	switch {
	case approaching != nil && (approaching.StatusText == "도착" || approaching.StatusText == "진입"):
		fmt.Fprintf(&b, "\n\n🔔 곧 %s역에 도착합니다! 하차 준비를 해주세요.", gc.EndStationName)
	case approaching != nil && approaching.ETAMinutes() <= 2:
		fmt.Fprintf(&b, "\n\n🔔 약 %d분 후 %s역에 도착합니다. 하차 준비를 해주세요.", approaching.ETAMinutes(), gc.EndStationName)
	case approaching != nil:
		fmt.Fprintf(&b, "\n\n약 %d분 후 도착 예정입니다. 편안히 이동하세요.", approaching.ETAMinutes())
	default:
		b.WriteString("\n\n편안히 이동하세요. 도착역이 가까워지면 알려드리겠습니다.")
	}

	if gc.CarStart > 0 && gc.CarEnd > 0 {
		fmt.Fprintf(&b, "\n\n💡 하차 시 %d~%d번째 칸에서 내리세요.", gc.CarStart, gc.CarEnd)
	}
	return b.String()
}

func (r *renderer) renderCharging(gc domain.GuideContext) string {
	var b strings.Builder

	if gc.Charger == nil && len(gc.Chargers) == 0 {
		fmt.Fprintf(&b, "ℹ️ %s역 근처 충전소 정보를 확인 중입니다.", gc.StationName)
		return b.String()
	}

	fmt.Fprintf(&b, "🔋 %s역에 휠체어 충전소가 있습니다.", gc.StationName)
	if c := gc.Charger; c != nil {
		fmt.Fprintf(&b, "\n📍 위치: %s", c.Location)
		if c.FloorLevel != nil {
			fmt.Fprintf(&b, " (%s)", *c.FloorLevel)
		}
	}
	for i, c := range gc.Chargers {
		if i >= 2 {
			break
		}
		fmt.Fprintf(&b, "\n• %s (%s) 이용료: %s", c.Location, c.Floor, c.UsageFee)
	}
	return b.String()
}

func firstArrival(gc domain.GuideContext) *domain.TrainArrival {
	arrivals := filterArrivalsByDirection(gc.Arrivals, gc.Direction)
	if len(arrivals) == 0 {
		return nil
	}
	return &arrivals[0]
}

// filterArrivalsByDirection keeps trains heading the requested way, falling
// back to the full list when nothing matches the direction string.
func filterArrivalsByDirection(arrivals []domain.TrainArrival, direction string) []domain.TrainArrival {
	if direction == "" || len(arrivals) == 0 {
		return arrivals
	}
	var filtered []domain.TrainArrival
	for _, a := range arrivals {
		if strings.Contains(a.TrainLineName, direction) || strings.Contains(a.TerminalName, direction) {
			filtered = append(filtered, a)
		}
	}
	if len(filtered) == 0 {
		return arrivals
	}
	return filtered
}
