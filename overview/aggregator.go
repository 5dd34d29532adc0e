package overview

import (
	"context"
	"sort"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"

	"github.com/beacon-app/beacon-api/geo"
	"github.com/beacon-app/beacon-api/schema"
	"github.com/beacon-app/beacon-api/score"
)

// HazardSource supplies raw hazard records near a location. Sources may
// over-return; the aggregator recomputes distances and filters by radius
// itself.
type HazardSource interface {
	Hazards(ctx context.Context, near schema.Location, radiusKm float64) ([]schema.HazardRecord, error)
}

// ResourceSource supplies raw shelter/medical/supply records near a
// location, with the same over-return allowance as HazardSource.
type ResourceSource interface {
	Resources(ctx context.Context, near schema.Location, radiusKm float64) ([]schema.ResourceRecord, error)
}

// Aggregator assembles the combined radius-bounded overview out of the two
// sources. It holds no mutable state; a single instance serves concurrent
// observers.
type Aggregator struct {
	hazards   HazardSource
	resources ResourceSource
}

func NewAggregator(hazards HazardSource, resources ResourceSource) *Aggregator {
	return &Aggregator{
		hazards:   hazards,
		resources: resources,
	}
}

// GetOverview queries both sources, tags every surviving record with its
// distance and classification, and returns both lists sorted ascending by
// distance with ascending-id tie-break.
//
// A failing source degrades the result to the data the other one returned
// instead of failing the request; the dead section comes back empty and the
// failure is reported out of band.
func (a *Aggregator) GetOverview(ctx context.Context, observer schema.Location, radiusKm float64) *schema.OverviewResult {
	result := &schema.OverviewResult{
		Hazards:   []schema.HazardRecord{},
		Resources: schema.ResourceList{Items: []schema.ResourceRecord{}},
	}

	hazards, err := a.hazards.Hazards(ctx, observer, radiusKm)
	if err != nil {
		log.WithField("prefix", "overview").WithError(err).Error("hazard source unavailable")
		sentry.CaptureException(err)
	}
	for _, h := range hazards {
		h.DistanceKm = geo.DistanceKm(observer, h.Location())
		if h.DistanceKm > radiusKm {
			continue
		}
		h.Severity = score.ClassifySeverity(h.Attributes.Magnitude)
		result.Hazards = append(result.Hazards, h)
	}

	resources, err := a.resources.Resources(ctx, observer, radiusKm)
	if err != nil {
		log.WithField("prefix", "overview").WithError(err).Error("resource source unavailable")
		sentry.CaptureException(err)
	}
	for _, r := range resources {
		loc := r.Location()
		r.Latitude = loc.Latitude
		r.Longitude = loc.Longitude
		r.DistanceKm = geo.DistanceKm(observer, loc)
		if r.DistanceKm > radiusKm {
			continue
		}
		r.Category, r.Label = score.Categorize(r.RawType)
		if r.Status == "" {
			r.Status = schema.ResourceStatusUnknown
		}
		result.Resources.Items = append(result.Resources.Items, r)
	}

	sortHazards(result.Hazards)
	sortResources(result.Resources.Items)

	return result
}

// ordering is distance first, then id, so that repeated calls over the same
// data always produce the same payload for client-side diffing
func sortHazards(hazards []schema.HazardRecord) {
	sort.Slice(hazards, func(i, j int) bool {
		if hazards[i].DistanceKm != hazards[j].DistanceKm {
			return hazards[i].DistanceKm < hazards[j].DistanceKm
		}
		return hazards[i].ID < hazards[j].ID
	})
}

func sortResources(items []schema.ResourceRecord) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].DistanceKm != items[j].DistanceKm {
			return items[i].DistanceKm < items[j].DistanceKm
		}
		return items[i].ID < items[j].ID
	})
}
