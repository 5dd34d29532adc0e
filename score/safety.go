package score

import (
	"github.com/beacon-app/beacon-api/geo"
	"github.com/beacon-app/beacon-api/schema"
)

const (
	// safeDistanceKm is the personal-risk cutoff: any hazard farther than
	// this does not affect the observer's safety level at all.
	safeDistanceKm = 10.0

	dangerScore  = 0.7
	cautionScore = 0.4
)

// EvaluateSafety reduces a hazard list to a single nearest-threat safety
// status for the given observer. An empty list is always safe. The hazard
// minimizing the distance to the observer wins; ties keep the earlier
// entry.
//
// Intrinsic severity ("how bad is this event") and the returned level ("how
// worried should this observer be") are deliberately separate scales: even
// a critical hazard reads as safe beyond safeDistanceKm.
func EvaluateSafety(hazards []schema.HazardRecord, observer schema.Location) schema.SafetyStatus {
	if len(hazards) == 0 {
		return schema.SafetyStatus{Level: schema.SafetyLevelSafe}
	}

	nearest := hazards[0]
	nearestDistance := geo.DistanceKm(observer, hazards[0].Location())
	for _, h := range hazards[1:] {
		if d := geo.DistanceKm(observer, h.Location()); d < nearestDistance {
			nearest = h
			nearestDistance = d
		}
	}

	status := schema.SafetyStatus{
		NearestHazardID:   nearest.ID,
		NearestDistanceKm: nearestDistance,
	}

	if nearestDistance > safeDistanceKm {
		status.Level = schema.SafetyLevelSafe
		return status
	}

	severity := nearest.Severity
	if severity == "" {
		severity = ClassifySeverity(nearest.Attributes.Magnitude)
	}

	switch {
	case severity == schema.HazardSeverityCritical,
		severity == schema.HazardSeverityHigh,
		nearest.Attributes.Score >= dangerScore:
		status.Level = schema.SafetyLevelDanger
	case severity == schema.HazardSeverityModerate,
		nearest.Attributes.Score >= cautionScore:
		status.Level = schema.SafetyLevelCaution
	default:
		status.Level = schema.SafetyLevelModerate
	}

	return status
}
