package schema

import "time"

const HazardSnapshotCollection = "hazard_snapshot"

type HazardSeverity string

const (
	HazardSeverityLow      HazardSeverity = "low"
	HazardSeverityModerate HazardSeverity = "moderate"
	HazardSeverityHigh     HazardSeverity = "high"
	HazardSeverityCritical HazardSeverity = "critical"
)

// HazardAttributes carries the magnitude-like attributes a hazard feed
// reports. Score is a normalized 0-1 severity some feeds attach; it is zero
// when the feed does not provide one.
type HazardAttributes struct {
	Magnitude float64 `json:"mag" bson:"mag"`
	Place     string  `json:"place,omitempty" bson:"place"`
	Score     float64 `json:"score,omitempty" bson:"score"`
}

// HazardRecord is a single hazard event as served to clients. DistanceKm
// and Severity are derived against an observer and are always populated
// before a record leaves the overview aggregator.
type HazardRecord struct {
	ID         string           `json:"id" bson:"id"`
	SourceID   string           `json:"source_id" bson:"source_id"`
	Source     string           `json:"source" bson:"source"`
	Type       string           `json:"type" bson:"hazard_type"`
	Title      string           `json:"title" bson:"title"`
	Latitude   float64          `json:"lat" bson:"lat"`
	Longitude  float64          `json:"lon" bson:"lon"`
	Attributes HazardAttributes `json:"attributes" bson:"attributes"`
	Time       time.Time        `json:"time" bson:"time"`

	DistanceKm float64        `json:"dist_km" bson:"-"`
	Severity   HazardSeverity `json:"severity" bson:"-"`
}

func (h HazardRecord) Location() Location {
	return Location{
		Latitude:  h.Latitude,
		Longitude: h.Longitude,
	}
}

type SafetyLevel string

const (
	SafetyLevelSafe     SafetyLevel = "safe"
	SafetyLevelModerate SafetyLevel = "moderate"
	SafetyLevelCaution  SafetyLevel = "caution"
	SafetyLevelDanger   SafetyLevel = "danger"
)

// SafetyStatus is the single nearest-threat reduction of a hazard list for
// an observer. It is recomputed on every evaluation and never persisted.
type SafetyStatus struct {
	Level             SafetyLevel `json:"level"`
	NearestHazardID   string      `json:"nearest_hazard_id,omitempty"`
	NearestDistanceKm float64     `json:"nearest_distance_km"`
}

// Alert is a hazard-derived alert entry for the alerts feed.
type Alert struct {
	ID              string         `json:"id"`
	Message         string         `json:"message"`
	HazardSeverity  HazardSeverity `json:"hazard_severity"`
	HazardType      string         `json:"hazard_type"`
	HazardLatitude  float64        `json:"hazard_lat"`
	HazardLongitude float64        `json:"hazard_lon"`
	HazardTitle     string         `json:"hazard_title"`
	CreatedAt       time.Time      `json:"created_at"`
}
