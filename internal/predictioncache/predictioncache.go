// Package predictioncache wraps predictor.Predict with an optional
// Redis-backed read-through cache. This is a pure optimisation layered
// outside the synchronous, total scoring core (spec §5): the core itself
// has no suspension points, only this wrapper does I/O, and only for a
// cache that can never change the answer (spec §8's bit-identical-output
// property holds with or without the cache warm).
package predictioncache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/riversnfl/predictor/internal/cache"
	"github.com/riversnfl/predictor/internal/domain"
	"github.com/riversnfl/predictor/internal/predictor"
	"github.com/riversnfl/predictor/internal/riverslog"
	"github.com/riversnfl/predictor/internal/snapshot"
)

// DefaultTTL bounds how long a cached prediction is served before the next
// call recomputes it.
const DefaultTTL = 10 * time.Minute

// Predict returns snap's prediction for req, serving a cached result when
// the optional Redis client is configured and holds a fresh entry for
// (snapshot ID, request). Falls through to predictor.Predict directly when
// no Redis client has been connected (cache.GetClient() == nil).
func Predict(ctx context.Context, snap *snapshot.Snapshot, req predictor.PredictionRequest) (predictor.Prediction, error) {
	if cache.GetClient() == nil {
		return predictor.Predict(ctx, snap, req)
	}

	key := cacheKey(snap, req)

	if cached, ok := lookup(ctx, key); ok {
		riverslog.CacheHit(ctx, key)
		return cached, nil
	}
	riverslog.CacheMiss(ctx, key)

	result, err := predictor.Predict(ctx, snap, req)
	if err != nil {
		return predictor.Prediction{}, err
	}

	store(ctx, key, result)
	return result, nil
}

func lookup(ctx context.Context, key string) (predictor.Prediction, bool) {
	raw, err := cache.Get(ctx, key)
	if err != nil || raw == "" {
		return predictor.Prediction{}, false
	}

	var cached predictor.Prediction
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		riverslog.Warn(ctx, "predictioncache: discarding unreadable cache entry %s: %v", key, err)
		return predictor.Prediction{}, false
	}
	return cached, true
}

func store(ctx context.Context, key string, result predictor.Prediction) {
	raw, err := json.Marshal(result)
	if err != nil {
		riverslog.Warn(ctx, "predictioncache: failed to marshal prediction for %s: %v", key, err)
		return
	}
	if err := cache.Set(ctx, key, string(raw), DefaultTTL); err != nil {
		riverslog.Warn(ctx, "predictioncache: failed to store prediction for %s: %v", key, err)
	}
}

// cacheKey is deterministic in (snapshot ID, home, away, week, season,
// weather): two calls with identical inputs against the same snapshot
// must address the same entry.
func cacheKey(snap *snapshot.Snapshot, req predictor.PredictionRequest) string {
	return fmt.Sprintf("prediction:%s:%s:%s:%d:%d:%s",
		snap.ID, req.Home, req.Away, req.Week, req.Season, weatherFingerprint(req.Weather))
}

func weatherFingerprint(w *domain.WeatherContext) string {
	if w == nil {
		return "none"
	}
	return fmt.Sprintf("%.1f-%.1f-%s-%s", w.TemperatureF, w.WindMPH, w.Precipitation, w.Venue)
}
