package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the latest readiness snapshot of the portal's backing
// services, reported by the health endpoint. Braincore is deliberately not
// probed here: its availability surfaces per request as 502s.
type HealthStatus struct {
	Mongo        bool      `json:"mongo"`
	CacheRedis   bool      `json:"cacheRedis"`
	SessionRedis bool      `json:"sessionRedis"`
	CheckedAt    time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor probes Mongo and both Redis clients on the given
// interval. The first probe runs immediately so the health endpoint never
// serves a zero-value snapshot.
func StartHealthMonitor(cache, session *redis.Client, mongoClient *mongo.Client, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	check := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		snapshot := HealthStatus{
			Mongo:        mongoClient.Ping(ctx, nil) == nil,
			CacheRedis:   cache.Ping(ctx).Err() == nil,
			SessionRedis: session.Ping(ctx).Err() == nil,
			CheckedAt:    time.Now(),
		}

		healthMu.Lock()
		currentHealth = snapshot
		healthMu.Unlock()
	}

	go func() {
		check()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			check()
		}
	}()
}
