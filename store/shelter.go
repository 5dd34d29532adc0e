package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/beacon-app/beacon-api/schema"
)

// ShelterStore - geospatial queries over the shelter/resource collection
type ShelterStore interface {
	Resources(ctx context.Context, near schema.Location, radiusKm float64) ([]schema.ResourceRecord, error)
	UpsertShelter(ctx context.Context, record schema.ResourceRecord) error
}

// Resources returns resource records within radiusKm of a location,
// nearest first. It implements the overview aggregator's resource source.
func (m *mongoDB) Resources(ctx context.Context, near schema.Location, radiusKm float64) ([]schema.ResourceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ShelterCollection)

	query := distanceQuery(int(radiusKm*1000), near)
	cur, err := c.Find(ctx, query)
	if nil != err {
		log.WithField("prefix", mongoLogPrefix).Errorf("query shelter nearest distance with error: %s", err)
		return nil, fmt.Errorf("shelter nearest distance query with error: %s", err)
	}

	records := make([]schema.ResourceRecord, 0)
	for cur.Next(ctx) {
		var record schema.ResourceRecord
		if err := cur.Decode(&record); nil != err {
			log.WithField("prefix", mongoLogPrefix).Errorf("nearest distance query decode record with error: %s", err)
			return nil, fmt.Errorf("nearest distance query decode record with error: %s", err)
		}
		records = append(records, record)
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("shelter query gets %d records near long:%v lat:%v",
		len(records), near.Longitude, near.Latitude)

	return records, nil
}

// UpsertShelter writes or refreshes a single shelter record, keyed by id.
func (m *mongoDB) UpsertShelter(ctx context.Context, record schema.ResourceRecord) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ShelterCollection)

	query := bson.M{"id": record.ID}
	update := bson.M{"$set": record}

	if _, err := c.UpdateOne(ctx, query, update, options.Update().SetUpsert(true)); err != nil {
		log.WithFields(log.Fields{
			"prefix":  mongoLogPrefix,
			"shelter": record.ID,
			"error":   err,
		}).Error("upsert shelter")
		return err
	}

	return nil
}

// distanceQuery builds a $nearSphere query over the 2dsphere-indexed
// location field. maxDistance is in meters.
func distanceQuery(maxDistance int, cords schema.Location) bson.D {
	return bson.D{{
		Key: "location",
		Value: bson.D{{
			Key: "$nearSphere",
			Value: bson.D{{
				Key: "$geometry",
				Value: bson.D{{
					Key:   "type",
					Value: "Point",
				}, {
					Key:   "coordinates",
					Value: bson.A{cords.Longitude, cords.Latitude},
				}, {
					Key:   "$maxDistance",
					Value: maxDistance,
				}},
			}},
		}},
	}}
}
