package geojson

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/beacon-app/beacon-api/schema"
	"github.com/beacon-app/beacon-api/store"
)

type GeoFeature struct {
	Type       string         `json:"type"`
	Properties ShelterDetails `json:"properties"`
	Geometry   Geometry       `json:"geometry"`
}

type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // [lon, lat]
}

type ShelterDetails struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Capacity int    `json:"capacity"`
	Type     string `json:"type"`
	Status   string `json:"status"`
}

type GeoJSON struct {
	Name     string       `json:"name"`
	Features []GeoFeature `json:"features"`
}

// ImportShelters loads a GeoJSON FeatureCollection of shelters, medical
// facilities and supply points into the resource collection. Records are
// keyed by id, so re-running the import refreshes instead of duplicating.
func ImportShelters(ctx context.Context, s store.ShelterStore, geoJSONFile string) error {
	var result GeoJSON

	file, err := os.Open(geoJSONFile)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(&result); err != nil {
		return err
	}

	for _, f := range result.Features {
		if f.Properties.ID == "" || f.Properties.Name == "" {
			return fmt.Errorf("feature missing id or name, %+v", f.Properties)
		}
		if len(f.Geometry.Coordinates) < 2 {
			return fmt.Errorf("feature %s has no point geometry", f.Properties.ID)
		}

		status := schema.ResourceStatus(f.Properties.Status)
		if status == "" {
			status = schema.ResourceStatusUnknown
		}

		record := schema.ResourceRecord{
			ID:       f.Properties.ID,
			Name:     f.Properties.Name,
			Address:  f.Properties.Address,
			Phone:    f.Properties.Phone,
			Capacity: f.Properties.Capacity,
			RawType:  f.Properties.Type,
			Status:   status,
			Point: &schema.GeoJSON{
				Type:        "Point",
				Coordinates: f.Geometry.Coordinates,
			},
		}

		if err := s.UpsertShelter(ctx, record); err != nil {
			return err
		}
	}

	return nil
}
