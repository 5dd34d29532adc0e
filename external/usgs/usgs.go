package usgs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/beacon-app/beacon-api/schema"
)

const sourceTag = "usgs"

// Client reads the USGS earthquake GeoJSON summary feed. The feed has no
// radius parameter; callers get the whole window and filter themselves.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

type feedResponse struct {
	Features []feedFeature `json:"features"`
}

type feedFeature struct {
	ID         string         `json:"id"`
	Properties feedProperties `json:"properties"`
	Geometry   feedGeometry   `json:"geometry"`
}

type feedProperties struct {
	Mag   float64 `json:"mag"`
	Place string  `json:"place"`
	Time  int64   `json:"time"` // unix milliseconds
	Title string  `json:"title"`
	Type  string  `json:"type"`
}

type feedGeometry struct {
	Coordinates []float64 `json:"coordinates"` // [lon, lat, depth]
}

// Hazards fetches and maps the current feed window. It implements the
// overview aggregator's hazard source; the near/radius hint is unused
// because the feed cannot be scoped.
func (c *Client) Hazards(ctx context.Context, near schema.Location, radiusKm float64) ([]schema.HazardRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create usgs request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("usgs feed request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("usgs feed status %d", resp.StatusCode)
	}

	var data feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode usgs feed: %w", err)
	}

	hazards := make([]schema.HazardRecord, 0, len(data.Features))
	for _, f := range data.Features {
		if len(f.Geometry.Coordinates) < 2 {
			continue
		}

		hazardType := f.Properties.Type
		if hazardType == "" {
			hazardType = "earthquake"
		}

		hazards = append(hazards, schema.HazardRecord{
			ID:        sourceTag + "_" + f.ID,
			SourceID:  f.ID,
			Source:    sourceTag,
			Type:      hazardType,
			Title:     f.Properties.Title,
			Latitude:  f.Geometry.Coordinates[1],
			Longitude: f.Geometry.Coordinates[0],
			Attributes: schema.HazardAttributes{
				Magnitude: f.Properties.Mag,
				Place:     f.Properties.Place,
			},
			Time: time.UnixMilli(f.Properties.Time),
		})
	}

	return hazards, nil
}
