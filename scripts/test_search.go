//go:build ignore

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Manual smoke tool: plans a route against a running instance and then feeds
// a couple of GPS positions through the navigation endpoint.

type coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type routeSearchRequest struct {
	StartStation string     `json:"start_station"`
	EndStation   string     `json:"end_station"`
	UserLocation coordinate `json:"user_location"`
	UserTags     struct {
		MobilityLevel string `json:"mobility_level"`
		NeedElevator  bool   `json:"need_elevator"`
	} `json:"user_tags"`
}

type navigationGuideRequest struct {
	RouteID             int64      `json:"route_id"`
	CurrentLocation     coordinate `json:"current_location"`
	CurrentCheckpointID int        `json:"current_checkpoint_id"`
}

func main() {
	baseURL := flag.String("base", "http://localhost:8080", "service base URL")
	start := flag.String("start", "강남", "start station")
	end := flag.String("end", "잠실", "end station")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	searchReq := routeSearchRequest{
		StartStation: *start,
		EndStation:   *end,
		UserLocation: coordinate{Lat: 37.4976, Lon: 127.0273},
	}
	searchReq.UserTags.MobilityLevel = "wheelchair"
	searchReq.UserTags.NeedElevator = true

	body := post(client, *baseURL+"/api/v1/route/search", searchReq)
	fmt.Printf("route search:\n%s\n\n", body)

	var searchResp struct {
		Data struct {
			RouteID int64 `json:"route_id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &searchResp); err != nil {
		log.Fatalf("decode search response: %v", err)
	}

	guideReq := navigationGuideRequest{
		RouteID:             searchResp.Data.RouteID,
		CurrentLocation:     coordinate{Lat: 37.4976, Lon: 127.0273},
		CurrentCheckpointID: 0,
	}
	body = post(client, *baseURL+"/api/v1/navigation/guide", guideReq)
	fmt.Printf("navigation guide:\n%s\n", body)
}

func post(client *http.Client, url string, payload interface{}) []byte {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Fatalf("marshal request: %v", err)
	}

	resp, err := client.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		log.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("read response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("POST %s returned %d", url, resp.StatusCode)
	}

	return body
}
