package service

import (
	"context"

	"github.com/Second-Serve/backend/dashboard-svc/internal/domain"
	"github.com/Second-Serve/backend/docstore"
)

type DashboardServiceInterface interface {
	Dashboard(ctx context.Context, callerID string) domain.DashboardResponse
}

type DashboardRepository interface {
	GetUser(ctx context.Context, id string) (*docstore.User, error)
	RestaurantsByOwner(ctx context.Context, ownerID string) ([]docstore.Restaurant, error)
	AggregateItems(ctx context.Context, filter docstore.ItemFilter) (docstore.ItemTotals, error)
}

// DashboardCache returns nil stats and no error on a miss. Every read also
// hands out the invalidation generation; Set stores stats only while that
// generation is still current.
type DashboardCache interface {
	Get(ctx context.Context, restaurantID string) (*domain.DashboardStats, int64, error)
	Set(ctx context.Context, restaurantID string, generation int64, stats *domain.DashboardStats) error
}

var (
	_ DashboardServiceInterface = (*DashboardService)(nil)
	_ DashboardRepository       = (*docstore.PostgresStore)(nil)
	_ DashboardRepository       = (*docstore.MemoryStore)(nil)
)
