// Package heatapi fetches per-city heat-index readings from the forecast
// service that publishes the hourly weather pipeline's output.
package heatapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/inetready/travel-advisor/internal/domain/traveladvisor"
)

const defaultBaseURL = "https://api.inet-ready.app/v1/heat-index"

// Client fetches heat-index readings over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an API client.
func NewClient(baseURL string) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// CityReading retrieves the latest reading for a city. An unknown city
// returns (nil, nil); the advisor treats that as an unknown heat level.
func (c *Client) CityReading(ctx context.Context, city string) (*traveladvisor.CityReading, error) {
	endpoint := fmt.Sprintf("%s/cities/%s/latest", c.baseURL, url.PathEscape(city))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build heat index request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("heat index request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("heat index request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read heat index response: %w", err)
	}

	var raw cityRecord
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode heat index response: %w", err)
	}

	return &traveladvisor.CityReading{
		City:        raw.City,
		HeatIndex:   raw.HeatIndex,
		Temperature: raw.Temperature,
		Humidity:    raw.Humidity,
		UpdatedAt:   parseTime(raw.UpdatedAt),
	}, nil
}

type cityRecord struct {
	City        string   `json:"city"`
	HeatIndex   *float64 `json:"heat_index"`
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	UpdatedAt   string   `json:"updated_at"`
}

func parseTime(value string) time.Time {
	if strings.TrimSpace(value) == "" {
		return time.Time{}
	}
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return ts
}
