package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Second-Serve/backend/dashboard-svc/internal/domain"
	"github.com/Second-Serve/backend/docstore"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const window = 24 * time.Hour

type DashboardService struct {
	repository DashboardRepository
	cache      DashboardCache
	now        func() time.Time
}

func NewDashboardService(repository DashboardRepository, cache DashboardCache) *DashboardService {
	return &DashboardService{
		repository: repository,
		cache:      cache,
		now:        time.Now,
	}
}

func (s *DashboardService) WithClock(now func() time.Time) *DashboardService {
	s.now = now
	return s
}

// Dashboard never fails: every rejection is reported through Reason.
func (s *DashboardService) Dashboard(ctx context.Context, callerID string) domain.DashboardResponse {
	if callerID == "" {
		return failure("User is not authenticated.")
	}

	user, err := s.repository.GetUser(ctx, callerID)
	if errors.Is(err, docstore.ErrNotFound) {
		return failure(fmt.Sprintf("User with id %s does not exist.", callerID))
	}
	if err != nil {
		return s.unavailable(callerID, err)
	}
	if user.AccountType != docstore.AccountBusiness {
		return failure(fmt.Sprintf("User with id %s is not a business account.", callerID))
	}

	restaurants, err := s.repository.RestaurantsByOwner(ctx, callerID)
	if err != nil {
		return s.unavailable(callerID, err)
	}
	if len(restaurants) == 0 {
		return failure(fmt.Sprintf("User with id %s has no associated restaurant.", callerID))
	}
	if len(restaurants) > 1 {
		log.WithFields(log.Fields{
			"user_id":     callerID,
			"restaurants": len(restaurants),
			"using":       restaurants[0].ID,
		}).Warn("user owns more than one restaurant")
	}
	restaurantID := restaurants[0].ID

	stats, generation := s.cached(ctx, restaurantID)
	if stats != nil {
		return domain.DashboardResponse{Success: true, DashboardStats: stats}
	}

	stats, err = s.aggregate(ctx, restaurantID)
	if err != nil {
		return s.unavailable(callerID, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, restaurantID, generation, stats); err != nil {
			log.WithField("restaurant_id", restaurantID).WithError(err).Warn("failed to cache dashboard")
		}
	}
	return domain.DashboardResponse{Success: true, DashboardStats: stats}
}

func (s *DashboardService) cached(ctx context.Context, restaurantID string) (*domain.DashboardStats, int64) {
	if s.cache == nil {
		return nil, 0
	}
	stats, generation, err := s.cache.Get(ctx, restaurantID)
	if err != nil {
		log.WithField("restaurant_id", restaurantID).WithError(err).Warn("dashboard cache read failed")
		return nil, 0
	}
	return stats, generation
}

// aggregate runs the all-time and last-24-hours queries concurrently.
func (s *DashboardService) aggregate(ctx context.Context, restaurantID string) (*domain.DashboardStats, error) {
	since := s.now().UTC().Add(-window)

	var allTime, lastDay docstore.ItemTotals
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		allTime, err = s.repository.AggregateItems(gctx, docstore.ItemFilter{RestaurantID: restaurantID})
		return err
	})
	g.Go(func() error {
		var err error
		lastDay, err = s.repository.AggregateItems(gctx, docstore.ItemFilter{RestaurantID: restaurantID, Since: &since})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.DashboardStats{
		OrdersLast24Hours:   lastDay.Count,
		EarningsLast24Hours: lastDay.Sum.InexactFloat64(),
		OrdersAllTime:       allTime.Count,
		EarningsAllTime:     allTime.Sum.InexactFloat64(),
	}, nil
}

func (s *DashboardService) unavailable(callerID string, err error) domain.DashboardResponse {
	log.WithField("user_id", callerID).WithError(err).Error("dashboard store failure")
	return failure(fmt.Sprintf("Dashboard for user with id %s is unavailable.", callerID))
}

func failure(reason string) domain.DashboardResponse {
	return domain.DashboardResponse{Success: false, Reason: reason}
}
