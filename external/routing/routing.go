package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"googlemaps.github.io/maps"

	"github.com/beacon-app/beacon-api/schema"
)

var ErrNoRouteFound = fmt.Errorf("no route found between the given points")

// Summary is the normalized shape of a provider route consumed by the
// client. Geometry is a stringified GeoJSON LineString in [lon, lat]
// order, matching the units conventions used everywhere else.
type Summary struct {
	DistanceM int    `json:"distance_m"`
	DurationS int    `json:"duration_s"`
	Geometry  string `json:"geometry"`
	Steps     []Step `json:"steps"`
}

type Step struct {
	Instruction string `json:"instruction"`
	DistanceM   int    `json:"distance_m"`
}

// Router - the external route provider boundary
type Router interface {
	Route(ctx context.Context, origin, destination schema.Location) (*Summary, error)
}

// MapsRouter normalizes Google Directions responses into Summary values.
type MapsRouter struct {
	client *maps.Client
}

func NewMapsRouter(client *maps.Client) *MapsRouter {
	return &MapsRouter{
		client: client,
	}
}

func (r *MapsRouter) Route(ctx context.Context, origin, destination schema.Location) (*Summary, error) {
	routes, _, err := r.client.Directions(ctx, &maps.DirectionsRequest{
		Origin:      fmt.Sprintf("%f,%f", origin.Latitude, origin.Longitude),
		Destination: fmt.Sprintf("%f,%f", destination.Latitude, destination.Longitude),
		Mode:        maps.TravelModeWalking,
	})
	if err != nil {
		return nil, fmt.Errorf("directions request: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, ErrNoRouteFound
	}

	route := routes[0]
	leg := route.Legs[0]

	points, err := route.OverviewPolyline.Decode()
	if err != nil {
		return nil, fmt.Errorf("decode polyline: %w", err)
	}

	geometry, err := lineStringJSON(points)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		DistanceM: leg.Distance.Meters,
		DurationS: int(leg.Duration.Seconds()),
		Geometry:  geometry,
		Steps:     make([]Step, 0, len(leg.Steps)),
	}

	for _, s := range leg.Steps {
		summary.Steps = append(summary.Steps, Step{
			Instruction: stripTags(s.HTMLInstructions),
			DistanceM:   s.Distance.Meters,
		})
	}

	return summary, nil
}

// lineStringJSON renders decoded polyline points as a stringified GeoJSON
// LineString.
func lineStringJSON(points []maps.LatLng) (string, error) {
	coordinates := make([][]float64, 0, len(points))
	for _, p := range points {
		coordinates = append(coordinates, []float64{p.Lng, p.Lat})
	}

	raw, err := json.Marshal(map[string]interface{}{
		"type":        "LineString",
		"coordinates": coordinates,
	})
	if err != nil {
		return "", fmt.Errorf("encode geometry: %w", err)
	}

	return string(raw), nil
}

var (
	tagPattern   = regexp.MustCompile(`<[^>]*>`)
	spacePattern = regexp.MustCompile(`\s+`)
)

// the directions API sends instructions as HTML fragments
func stripTags(instruction string) string {
	plain := tagPattern.ReplaceAllString(instruction, " ")
	return strings.TrimSpace(spacePattern.ReplaceAllString(plain, " "))
}
