package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Second-Serve/backend/config"
	"github.com/Second-Serve/backend/dashboard-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

// Get returns the cached stats, nil on a miss, together with the current
// invalidation generation.
func (c *RedisCache) Get(ctx context.Context, restaurantID string) (*domain.DashboardStats, int64, error) {
	values, err := c.Client.MGet(ctx, config.DashboardKey(restaurantID), config.DashboardGenerationKey(restaurantID)).Result()
	if err != nil {
		return nil, 0, err
	}
	generation, err := parseGeneration(values[1])
	if err != nil {
		return nil, 0, err
	}

	payload, ok := values[0].(string)
	if !ok {
		return nil, generation, nil
	}
	var stats domain.DashboardStats
	if err := json.Unmarshal([]byte(payload), &stats); err != nil {
		return nil, generation, err
	}
	return &stats, generation, nil
}

// Set caches stats unless the dashboard was invalidated after generation was
// read. A lost race is not an error; the next read recomputes.
func (c *RedisCache) Set(ctx context.Context, restaurantID string, generation int64, stats *domain.DashboardStats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	genKey := config.DashboardGenerationKey(restaurantID)
	err = c.Client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, genKey).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if latest, err := parseGeneration(current); err != nil || latest != generation {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, config.DashboardKey(restaurantID), payload, c.TTL)
			return nil
		})
		return err
	}, genKey)
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	return err
}

func parseGeneration(value interface{}) (int64, error) {
	switch v := value.(type) {
	case nil:
		return 0, nil
	case string:
		if v == "" {
			return 0, nil
		}
		generation, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("dashboard generation %q: %w", v, err)
		}
		return generation, nil
	default:
		return 0, fmt.Errorf("dashboard generation has type %T", value)
	}
}
