package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/beacon-app/beacon-api/schema"
)

// HazardCache - last good copy of the upstream hazard feed
type HazardCache interface {
	ReplaceHazardSnapshot(ctx context.Context, hazards []schema.HazardRecord) error
	Hazards(ctx context.Context, near schema.Location, radiusKm float64) ([]schema.HazardRecord, error)
}

// ReplaceHazardSnapshot swaps the cached feed content for a fresh one. The
// snapshot is small (a single feed window) so a wholesale replace keeps the
// cache trivially consistent.
func (m *mongoDB) ReplaceHazardSnapshot(ctx context.Context, hazards []schema.HazardRecord) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HazardSnapshotCollection)

	if _, err := c.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear hazard snapshot with error: %s", err)
	}

	if len(hazards) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(hazards))
	for _, h := range hazards {
		docs = append(docs, h)
	}

	if _, err := c.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert hazard snapshot with error: %s", err)
	}

	log.WithFields(log.Fields{
		"prefix": mongoLogPrefix,
		"count":  len(hazards),
		"at":     time.Now().UTC(),
	}).Debug("replaced hazard snapshot")

	return nil
}

// Hazards serves the cached snapshot. It implements the overview
// aggregator's hazard source, used as the fallback when the live feed is
// unavailable. The near/radius hint is ignored; the aggregator filters.
func (m *mongoDB) Hazards(ctx context.Context, near schema.Location, radiusKm float64) ([]schema.HazardRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HazardSnapshotCollection)

	cur, err := c.Find(ctx, bson.M{})
	if nil != err {
		return nil, fmt.Errorf("hazard snapshot query with error: %s", err)
	}

	hazards := make([]schema.HazardRecord, 0)
	if err := cur.All(ctx, &hazards); nil != err {
		return nil, fmt.Errorf("hazard snapshot decode with error: %s", err)
	}

	return hazards, nil
}
