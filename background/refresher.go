package background

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/beacon-app/beacon-api/observability"
	"github.com/beacon-app/beacon-api/overview"
	"github.com/beacon-app/beacon-api/schema"
	"github.com/beacon-app/beacon-api/store"
)

// HazardRefresher periodically copies the live hazard feed into the mongo
// snapshot cache so overview requests can fall back to the last good data
// while the feed is down. Client-side polling cadence is unrelated to this
// job; this only keeps the server-side fallback warm.
type HazardRefresher struct {
	cron    *cron.Cron
	source  overview.HazardSource
	cache   store.HazardCache
	metrics *observability.Metrics
	timeout time.Duration
}

func NewHazardRefresher(source overview.HazardSource, cache store.HazardCache, metrics *observability.Metrics) *HazardRefresher {
	return &HazardRefresher{
		cron:    cron.New(),
		source:  source,
		cache:   cache,
		metrics: metrics,
		timeout: 30 * time.Second,
	}
}

// Start schedules the refresh at the given interval and runs one refresh
// immediately so the cache is never empty after boot.
func (r *HazardRefresher) Start(interval time.Duration) error {
	if _, err := r.cron.AddFunc(fmt.Sprintf("@every %s", interval), r.refresh); err != nil {
		return err
	}

	go r.refresh()
	r.cron.Start()

	log.WithFields(log.Fields{
		"prefix":   "background",
		"interval": interval,
	}).Info("hazard snapshot refresher started")

	return nil
}

func (r *HazardRefresher) Stop() {
	<-r.cron.Stop().Done()
}

func (r *HazardRefresher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	logger := log.WithField("prefix", "background")

	hazards, err := r.source.Hazards(ctx, schema.Location{}, 0)
	if err != nil {
		logger.WithError(err).Error("refresh hazard snapshot: fetch feed")
		r.metrics.SnapshotRefreshes.WithLabelValues("error").Inc()
		return
	}

	if err := r.cache.ReplaceHazardSnapshot(ctx, hazards); err != nil {
		logger.WithError(err).Error("refresh hazard snapshot: write cache")
		r.metrics.SnapshotRefreshes.WithLabelValues("error").Inc()
		return
	}

	logger.WithField("count", len(hazards)).Debug("hazard snapshot refreshed")
	r.metrics.SnapshotRefreshes.WithLabelValues("success").Inc()
}
