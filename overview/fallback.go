package overview

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/beacon-app/beacon-api/schema"
)

// fallbackHazardSource serves the secondary source's records when the
// primary one fails. Used to fall back to the last cached feed snapshot
// while the live feed is down.
type fallbackHazardSource struct {
	primary   HazardSource
	secondary HazardSource
}

// WithFallback chains two hazard sources into one.
func WithFallback(primary, secondary HazardSource) HazardSource {
	return &fallbackHazardSource{
		primary:   primary,
		secondary: secondary,
	}
}

func (f *fallbackHazardSource) Hazards(ctx context.Context, near schema.Location, radiusKm float64) ([]schema.HazardRecord, error) {
	hazards, err := f.primary.Hazards(ctx, near, radiusKm)
	if err == nil {
		return hazards, nil
	}

	log.WithField("prefix", "overview").WithError(err).Warn("hazard source failed, falling back to snapshot")

	return f.secondary.Hazards(ctx, near, radiusKm)
}
