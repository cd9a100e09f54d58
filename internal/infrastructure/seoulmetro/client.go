package seoulmetro

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/navigation-microservice/internal/config"
	"github.com/navigation-microservice/internal/domain"
	"github.com/navigation-microservice/internal/domain/repository"
	"go.uber.org/zap"
)

// Open API paging limits. SeoulMetroFaciInfo carries ~2800 rows city-wide.
const (
	pageSize        = 1000
	maxFacilityRows = 3000
	maxChargerRows  = 1000
	closureRows     = 100
	realtimeRows    = 10
)

var lineSuffixRe = regexp.MustCompile(`\(\d+\)`)

type client struct {
	httpClient       *http.Client
	openAPIBase      string
	openAPIKey       string
	realtimeBase     string
	realtimeKey      string
	cache            repository.CacheRepository
	apiCacheTTL      time.Duration
	realtimeCacheTTL time.Duration
	logger           *zap.Logger
}

// NewClient builds the Seoul open data client. cache may be nil, in which
// case every call goes upstream.
func NewClient(cfg *config.Config, cache repository.CacheRepository, logger *zap.Logger) repository.FacilityRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.SeoulAPI.RequestTimeout,
		},
		openAPIBase:      strings.TrimRight(cfg.SeoulAPI.OpenAPIBaseURL, "/"),
		openAPIKey:       cfg.SeoulAPI.OpenAPIKey,
		realtimeBase:     strings.TrimRight(cfg.SeoulAPI.RealtimeBaseURL, "/"),
		realtimeKey:      cfg.SeoulAPI.RealtimeAPIKey,
		cache:            cache,
		apiCacheTTL:      cfg.Cache.APICacheTTL,
		realtimeCacheTTL: cfg.Cache.RealtimeCacheTTL,
		logger:           logger,
	}
}

// normalizeStationName strips the "역" suffix and line markers like "(2)",
// so "잠실역" matches the feed's "잠실(2)" without matching "잠실나루".
func normalizeStationName(name string) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, "역", ""))
	return strings.TrimSpace(lineSuffixRe.ReplaceAllString(name, ""))
}

type elevatorRow struct {
	StationName string `json:"STN_NM"`
	Name        string `json:"ELVTR_NM"`
	Location    string `json:"INSTL_PSTN"`
	Floors      string `json:"OPR_SEC"`
	Kind        string `json:"ELVTR_SE"`
	UseYN       string `json:"USE_YN"`
}

type closureRow struct {
	Line        string `json:"LINE"`
	StationName string `json:"SBWY_STNS_NM"`
	Location    string `json:"CLSG_PLC"`
	Reason      string `json:"CLSG_RSN"`
	Alternative string `json:"RPLC_PATH"`
	StartDate   string `json:"BGNG_YMD"`
	EndDate     string `json:"END_YMD"`
}

type chargerRow struct {
	FacilityName  string `json:"fcltNm"`
	LineName      string `json:"lineNm"`
	StationName   string `json:"stnNm"`
	ConnectorType string `json:"cnnctrSe"`
	Floor         string `json:"stnFlr"`
	ChargerCount  string `json:"elctcFacCnt"`
	Location      string `json:"dtlPstn"`
	UsageFee      string `json:"utztnCrg"`
}

func (c *client) ElevatorStatus(ctx context.Context, stationName string) (*domain.ElevatorStatus, error) {
	cacheKey := "seoulapi:elevators:" + normalizeStationName(stationName)

	var status domain.ElevatorStatus
	if c.cachedGet(ctx, cacheKey, &status) {
		return &status, nil
	}

	rows, err := c.openAPIAllRows(ctx, "SeoulMetroFaciInfo", maxFacilityRows)
	if err != nil {
		c.logger.Warn("Elevator status feed unavailable", zap.Error(err))
		return &domain.ElevatorStatus{AllWorking: true}, nil
	}

	key := normalizeStationName(stationName)
	status.AllWorking = true
	for _, raw := range rows {
		var row elevatorRow
		if err := json.Unmarshal(raw, &row); err != nil {
			continue
		}
		// EV rows only; escalators (ES) are irrelevant to wheelchair routes.
		if row.Kind != "EV" {
			continue
		}
		if normalizeStationName(row.StationName) != key {
			continue
		}

		working := row.UseYN == "Y" || row.UseYN == "사용가능"
		status.Records = append(status.Records, domain.ElevatorRecord{
			Name:        row.Name,
			Location:    row.Location,
			Floors:      row.Floors,
			StationName: row.StationName,
			Working:     working,
		})
		if !working {
			status.AllWorking = false
		}
	}

	c.cachedSet(ctx, cacheKey, &status, c.apiCacheTTL)
	return &status, nil
}

func (c *client) ExitClosure(ctx context.Context, stationName, exitNumber string) (*domain.ExitClosure, error) {
	cacheKey := fmt.Sprintf("seoulapi:closure:%s:%s", normalizeStationName(stationName), exitNumber)

	var closure domain.ExitClosure
	if c.cachedGet(ctx, cacheKey, &closure) {
		return &closure, nil
	}

	page, err := c.openAPIPage(ctx, "TbSubwayLineDetail", 1, closureRows)
	if err != nil {
		c.logger.Warn("Exit closure feed unavailable", zap.Error(err))
		return &domain.ExitClosure{Closed: false}, nil
	}

	for _, raw := range page.rows {
		var row closureRow
		if err := json.Unmarshal(raw, &row); err != nil {
			continue
		}

		if stationName != "" && !strings.Contains(row.StationName, normalizeStationName(stationName)) {
			continue
		}
		if exitNumber != "" && !strings.Contains(row.Location, exitNumber+"번") {
			continue
		}

		closure = domain.ExitClosure{
			Closed:      true,
			Line:        row.Line,
			Station:     row.StationName,
			Location:    row.Location,
			Reason:      row.Reason,
			Alternative: row.Alternative,
			StartDate:   truncateDate(row.StartDate),
			EndDate:     truncateDate(row.EndDate),
		}
		break
	}

	c.cachedSet(ctx, cacheKey, &closure, c.apiCacheTTL)
	return &closure, nil
}

func (c *client) WheelchairChargers(ctx context.Context, stationName string) ([]domain.ChargerInfo, error) {
	cacheKey := "seoulapi:chargers:" + normalizeStationName(stationName)

	var chargers []domain.ChargerInfo
	if c.cachedGet(ctx, cacheKey, &chargers) {
		return chargers, nil
	}

	rows, err := c.openAPIAllRows(ctx, "getWksnWhclCharge", maxChargerRows)
	if err != nil {
		c.logger.Warn("Wheelchair charger feed unavailable", zap.Error(err))
		return nil, nil
	}

	key := normalizeStationName(stationName)
	for _, raw := range rows {
		var row chargerRow
		if err := json.Unmarshal(raw, &row); err != nil {
			continue
		}
		if key != "" && !strings.Contains(normalizeStationName(row.StationName), key) {
			continue
		}

		count, _ := strconv.Atoi(row.ChargerCount)
		fee := row.UsageFee
		if fee == "" {
			fee = "무료"
		}
		chargers = append(chargers, domain.ChargerInfo{
			FacilityName:  row.FacilityName,
			LineName:      row.LineName,
			StationName:   row.StationName,
			ConnectorType: row.ConnectorType,
			Floor:         row.Floor,
			ChargerCount:  count,
			Location:      row.Location,
			UsageFee:      fee,
		})
	}

	c.cachedSet(ctx, cacheKey, chargers, c.apiCacheTTL)
	return chargers, nil
}

// openAPIPage fetches one page of an open API service. The response nests
// rows under the service name; error responses carry only a RESULT block.
type apiPage struct {
	total int
	rows  []json.RawMessage
}

func (c *client) openAPIPage(ctx context.Context, service string, start, end int) (*apiPage, error) {
	url := fmt.Sprintf("%s/%s/json/%s/%d/%d/", c.openAPIBase, c.openAPIKey, service, start, end)

	body, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	raw, ok := envelope[service]
	if !ok {
		// INFO-200 and friends: no data for this range
		return &apiPage{}, nil
	}

	var payload struct {
		Total  int `json:"list_total_count"`
		Result struct {
			Code    string `json:"CODE"`
			Message string `json:"MESSAGE"`
		} `json:"RESULT"`
		Rows []json.RawMessage `json:"row"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode %s payload: %w", service, err)
	}

	return &apiPage{total: payload.Total, rows: payload.Rows}, nil
}

func (c *client) openAPIAllRows(ctx context.Context, service string, maxRows int) ([]json.RawMessage, error) {
	var all []json.RawMessage

	for start := 1; start <= maxRows; start += pageSize {
		end := start + pageSize - 1
		if end > maxRows {
			end = maxRows
		}

		page, err := c.openAPIPage(ctx, service, start, end)
		if err != nil {
			if len(all) > 0 {
				// Partial data beats none
				return all, nil
			}
			return nil, err
		}

		all = append(all, page.rows...)
		if len(page.rows) < pageSize || len(all) >= page.total {
			break
		}
	}

	return all, nil
}

func (c *client) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("seoul API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}

func (c *client) cachedGet(ctx context.Context, key string, out interface{}) bool {
	if c.cache == nil {
		return false
	}
	data, err := c.cache.Get(ctx, key)
	if err != nil || data == nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.logger.Warn("Corrupt cache entry dropped", zap.String("key", key), zap.Error(err))
		_ = c.cache.Delete(ctx, key)
		return false
	}
	return true
}

func (c *client) cachedSet(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if c.cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = c.cache.Set(ctx, key, data, ttl)
}

func truncateDate(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
