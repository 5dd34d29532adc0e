package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beacon-app/beacon-api/schema"
)

var observer = schema.Location{Latitude: 37.7749, Longitude: -122.4194}

func hazardAt(id string, lat, lon, magnitude float64) schema.HazardRecord {
	return schema.HazardRecord{
		ID:        id,
		Latitude:  lat,
		Longitude: lon,
		Attributes: schema.HazardAttributes{
			Magnitude: magnitude,
		},
		Severity: ClassifySeverity(magnitude),
	}
}

func TestEvaluateSafetyEmpty(t *testing.T) {
	status := EvaluateSafety(nil, observer)
	assert.Equal(t, schema.SafetyLevelSafe, status.Level)
	assert.Empty(t, status.NearestHazardID)
}

func TestEvaluateSafetyFarHazardIsSafe(t *testing.T) {
	// a critical quake ~559 km away does not change the observer's level
	status := EvaluateSafety([]schema.HazardRecord{
		hazardAt("h1", 34.0522, -118.2437, 7.8),
	}, observer)

	assert.Equal(t, schema.SafetyLevelSafe, status.Level)
	assert.Equal(t, "h1", status.NearestHazardID)
	assert.True(t, status.NearestDistanceKm > 10)
}

func TestEvaluateSafetyCriticalNearby(t *testing.T) {
	status := EvaluateSafety([]schema.HazardRecord{
		hazardAt("h1", 37.7750, -122.4190, 6.2),
	}, observer)

	assert.Equal(t, schema.SafetyLevelDanger, status.Level)
	assert.Equal(t, "h1", status.NearestHazardID)
	assert.InDelta(t, 0.04, status.NearestDistanceKm, 0.01)
}

func TestEvaluateSafetyHighNearby(t *testing.T) {
	status := EvaluateSafety([]schema.HazardRecord{
		hazardAt("h1", 37.80, -122.42, 5.0),
	}, observer)

	assert.Equal(t, schema.SafetyLevelDanger, status.Level)
}

func TestEvaluateSafetyModerateNearby(t *testing.T) {
	status := EvaluateSafety([]schema.HazardRecord{
		hazardAt("h1", 37.80, -122.42, 3.0),
	}, observer)

	assert.Equal(t, schema.SafetyLevelCaution, status.Level)
}

func TestEvaluateSafetyScoreThresholds(t *testing.T) {
	low := schema.HazardRecord{
		ID:         "h1",
		Latitude:   37.80,
		Longitude:  -122.42,
		Severity:   schema.HazardSeverityLow,
		Attributes: schema.HazardAttributes{Score: 0.75},
	}
	status := EvaluateSafety([]schema.HazardRecord{low}, observer)
	assert.Equal(t, schema.SafetyLevelDanger, status.Level)

	low.Attributes.Score = 0.5
	status = EvaluateSafety([]schema.HazardRecord{low}, observer)
	assert.Equal(t, schema.SafetyLevelCaution, status.Level)

	low.Attributes.Score = 0.1
	status = EvaluateSafety([]schema.HazardRecord{low}, observer)
	assert.Equal(t, schema.SafetyLevelModerate, status.Level)
}

func TestEvaluateSafetyPicksNearest(t *testing.T) {
	status := EvaluateSafety([]schema.HazardRecord{
		hazardAt("far", 34.0522, -118.2437, 7.8),
		hazardAt("near", 37.7750, -122.4190, 3.0),
	}, observer)

	assert.Equal(t, "near", status.NearestHazardID)
	assert.Equal(t, schema.SafetyLevelCaution, status.Level)
}

func TestEvaluateSafetyTieKeepsFirst(t *testing.T) {
	status := EvaluateSafety([]schema.HazardRecord{
		hazardAt("first", 37.7750, -122.4190, 3.0),
		hazardAt("second", 37.7750, -122.4190, 6.5),
	}, observer)

	assert.Equal(t, "first", status.NearestHazardID)
}
