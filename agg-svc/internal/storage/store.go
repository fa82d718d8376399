package storage

import (
	"context"

	"github.com/Second-Serve/backend/config"

	"github.com/redis/go-redis/v9"
)

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// InvalidateDashboards drops the cached dashboards so the next read is
// recomputed from the order items. Bumping the generation stops a read that
// aggregated before the order landed from caching its result afterwards.
func (s *Store) InvalidateDashboards(ctx context.Context, restaurantIDs ...string) error {
	if len(restaurantIDs) == 0 {
		return nil
	}
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range restaurantIDs {
			pipe.Incr(ctx, config.DashboardGenerationKey(id))
			pipe.Del(ctx, config.DashboardKey(id))
		}
		return nil
	})
	return err
}
