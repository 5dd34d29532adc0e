package score

import "github.com/beacon-app/beacon-api/schema"

const (
	criticalMagnitude = 6.0
	highMagnitude     = 4.5
)

// ClassifySeverity maps a hazard's magnitude-like scalar to its intrinsic
// severity tier. This is the tier stored on a hazard record and is
// independent of any observer. A missing magnitude is treated as 0.
func ClassifySeverity(magnitude float64) schema.HazardSeverity {
	switch {
	case magnitude >= criticalMagnitude:
		return schema.HazardSeverityCritical
	case magnitude >= highMagnitude:
		return schema.HazardSeverityHigh
	default:
		return schema.HazardSeverityModerate
	}
}
