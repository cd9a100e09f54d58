package seoulmetro

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/navigation-microservice/internal/domain"
	"go.uber.org/zap"
)

type arrivalRow struct {
	SubwayID      string `json:"subwayId"`
	UpDownLine    string `json:"updnLine"`
	TrainLineName string `json:"trainLineNm"`
	StationName   string `json:"statnNm"`
	TrainClass    string `json:"btrainSttus"`
	ETASeconds    string `json:"barvlDt"`
	TrainNo       string `json:"btrainNo"`
	TerminalName  string `json:"bstatnNm"`
	StatusText    string `json:"arvlMsg2"`
	DetailText    string `json:"arvlMsg3"`
	ArrivalCode   string `json:"arvlCd"`
	LastTrainFlag string `json:"lstcarAt"`
}

// StationArrivals queries the realtime arrival feed. The feed expects the
// bare station name without the "역" suffix.
func (c *client) StationArrivals(ctx context.Context, stationName string) ([]domain.TrainArrival, error) {
	key := normalizeStationName(stationName)
	cacheKey := "seoulapi:arrivals:" + key

	var arrivals []domain.TrainArrival
	if c.cachedGet(ctx, cacheKey, &arrivals) {
		return arrivals, nil
	}

	url := fmt.Sprintf("%s/%s/json/realtimeStationArrival/0/%d/%s", c.realtimeBase, c.realtimeKey, realtimeRows, key)

	body, err := c.fetch(ctx, url)
	if err != nil {
		c.logger.Warn("Realtime arrival feed unavailable", zap.String("station", key), zap.Error(err))
		return nil, nil
	}

	var payload struct {
		Rows         []arrivalRow `json:"realtimeArrivalList"`
		ErrorMessage *struct {
			Status  int    `json:"status"`
			Message string `json:"message"`
		} `json:"errorMessage"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		c.logger.Warn("Failed to decode realtime arrivals", zap.Error(err))
		return nil, nil
	}

	for _, row := range payload.Rows {
		seconds, _ := strconv.Atoi(row.ETASeconds)
		trainClass := row.TrainClass
		if trainClass == "" {
			trainClass = "일반"
		}
		arrivals = append(arrivals, domain.TrainArrival{
			SubwayID:      row.SubwayID,
			UpDownLine:    row.UpDownLine,
			TrainLineName: row.TrainLineName,
			StationName:   row.StationName,
			TrainClass:    trainClass,
			ETASeconds:    seconds,
			TrainNo:       row.TrainNo,
			TerminalName:  row.TerminalName,
			StatusText:    row.StatusText,
			DetailText:    row.DetailText,
			ArrivalCode:   row.ArrivalCode,
			IsLastTrain:   row.LastTrainFlag == "1",
		})
	}

	c.cachedSet(ctx, cacheKey, arrivals, c.realtimeCacheTTL)
	return arrivals, nil
}
