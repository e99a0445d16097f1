package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the latest probe result for the backing stores.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

func setHealthStatus(h HealthStatus) {
	healthMu.Lock()
	currentHealth = h
	healthMu.Unlock()
}

// StartHealthMonitor pings Mongo and the cache once a minute and keeps the
// snapshot the /health endpoint serves.
func StartHealthMonitor(cache *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()
		for range ticker.C {
			setHealthStatus(HealthStatus{
				Mongo:     mongoClient.Ping(ctx, nil) == nil,
				Redis:     cache.Ping(ctx).Err() == nil,
				CheckedAt: time.Now(),
			})
		}
	}()
}
