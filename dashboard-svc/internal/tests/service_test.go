package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Second-Serve/backend/dashboard-svc/internal/domain"
	"github.com/Second-Serve/backend/dashboard-svc/internal/mocks"
	"github.com/Second-Serve/backend/dashboard-svc/internal/service"
	"github.com/Second-Serve/backend/docstore"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

var (
	allTimeFilter = mock.MatchedBy(func(filter docstore.ItemFilter) bool {
		return filter.RestaurantID == "rest-1" && filter.Since == nil
	})
	lastDayFilter = mock.MatchedBy(func(filter docstore.ItemFilter) bool {
		return filter.RestaurantID == "rest-1" && filter.Since != nil && filter.Since.Equal(fixedNow.Add(-24*time.Hour))
	})
)

func businessUser(id string) *docstore.User {
	return &docstore.User{ID: id, AccountType: docstore.AccountBusiness}
}

func TestDashboardService_Dashboard(t *testing.T) {
	stats := &domain.DashboardStats{OrdersLast24Hours: 2, EarningsLast24Hours: 10, OrdersAllTime: 3, EarningsAllTime: 15}

	tests := []struct {
		name             string
		callerID         string
		prepareMocks     func(*mocks.DashboardRepository, *mocks.DashboardCache)
		expected         domain.DashboardResponse
		expectAggregates bool
	}{
		{
			name:         "unauthenticated",
			callerID:     "",
			prepareMocks: func(*mocks.DashboardRepository, *mocks.DashboardCache) {},
			expected:     domain.DashboardResponse{Reason: "User is not authenticated."},
		},
		{
			name:     "unknown user",
			callerID: "ghost",
			prepareMocks: func(repository *mocks.DashboardRepository, _ *mocks.DashboardCache) {
				repository.On("GetUser", mock.Anything, "ghost").Return(nil, docstore.ErrNotFound).Once()
			},
			expected: domain.DashboardResponse{Reason: "User with id ghost does not exist."},
		},
		{
			name:     "individual account",
			callerID: "student-1",
			prepareMocks: func(repository *mocks.DashboardRepository, _ *mocks.DashboardCache) {
				repository.On("GetUser", mock.Anything, "student-1").
					Return(&docstore.User{ID: "student-1", AccountType: docstore.AccountIndividual}, nil).Once()
			},
			expected: domain.DashboardResponse{Reason: "User with id student-1 is not a business account."},
		},
		{
			name:     "business without restaurant",
			callerID: "owner-1",
			prepareMocks: func(repository *mocks.DashboardRepository, _ *mocks.DashboardCache) {
				repository.On("GetUser", mock.Anything, "owner-1").Return(businessUser("owner-1"), nil).Once()
				repository.On("RestaurantsByOwner", mock.Anything, "owner-1").Return([]docstore.Restaurant{}, nil).Once()
			},
			expected: domain.DashboardResponse{Reason: "User with id owner-1 has no associated restaurant."},
		},
		{
			name:     "user lookup fails",
			callerID: "owner-1",
			prepareMocks: func(repository *mocks.DashboardRepository, _ *mocks.DashboardCache) {
				repository.On("GetUser", mock.Anything, "owner-1").Return(nil, errors.New("connection reset")).Once()
			},
			expected: domain.DashboardResponse{Reason: "Dashboard for user with id owner-1 is unavailable."},
		},
		{
			name:     "aggregate fails",
			callerID: "owner-1",
			prepareMocks: func(repository *mocks.DashboardRepository, cache *mocks.DashboardCache) {
				repository.On("GetUser", mock.Anything, "owner-1").Return(businessUser("owner-1"), nil).Once()
				repository.On("RestaurantsByOwner", mock.Anything, "owner-1").Return([]docstore.Restaurant{{ID: "rest-1"}}, nil).Once()
				cache.On("Get", mock.Anything, "rest-1").Return(nil, int64(0), nil).Once()
				repository.On("AggregateItems", mock.Anything, allTimeFilter).Return(docstore.ItemTotals{}, errors.New("timeout")).Maybe()
				repository.On("AggregateItems", mock.Anything, lastDayFilter).Return(docstore.ItemTotals{}, nil).Maybe()
			},
			expected: domain.DashboardResponse{Reason: "Dashboard for user with id owner-1 is unavailable."},
		},
		{
			name:     "cache miss computes and stores",
			callerID: "owner-1",
			prepareMocks: func(repository *mocks.DashboardRepository, cache *mocks.DashboardCache) {
				repository.On("GetUser", mock.Anything, "owner-1").Return(businessUser("owner-1"), nil).Once()
				repository.On("RestaurantsByOwner", mock.Anything, "owner-1").Return([]docstore.Restaurant{{ID: "rest-1"}}, nil).Once()
				cache.On("Get", mock.Anything, "rest-1").Return(nil, int64(0), nil).Once()
				repository.On("AggregateItems", mock.Anything, allTimeFilter).
					Return(docstore.ItemTotals{Count: 3, Sum: decimal.NewFromInt(15)}, nil).Once()
				repository.On("AggregateItems", mock.Anything, lastDayFilter).
					Return(docstore.ItemTotals{Count: 2, Sum: decimal.NewFromInt(10)}, nil).Once()
				cache.On("Set", mock.Anything, "rest-1", int64(0), stats).Return(nil).Once()
			},
			expected:         domain.DashboardResponse{Success: true, DashboardStats: stats},
			expectAggregates: true,
		},
		{
			name:     "cache write carries the generation read",
			callerID: "owner-1",
			prepareMocks: func(repository *mocks.DashboardRepository, cache *mocks.DashboardCache) {
				repository.On("GetUser", mock.Anything, "owner-1").Return(businessUser("owner-1"), nil).Once()
				repository.On("RestaurantsByOwner", mock.Anything, "owner-1").Return([]docstore.Restaurant{{ID: "rest-1"}}, nil).Once()
				cache.On("Get", mock.Anything, "rest-1").Return(nil, int64(7), nil).Once()
				repository.On("AggregateItems", mock.Anything, allTimeFilter).
					Return(docstore.ItemTotals{Count: 3, Sum: decimal.NewFromInt(15)}, nil).Once()
				repository.On("AggregateItems", mock.Anything, lastDayFilter).
					Return(docstore.ItemTotals{Count: 2, Sum: decimal.NewFromInt(10)}, nil).Once()
				cache.On("Set", mock.Anything, "rest-1", int64(7), stats).Return(nil).Once()
			},
			expected:         domain.DashboardResponse{Success: true, DashboardStats: stats},
			expectAggregates: true,
		},
		{
			name:     "cache hit skips the store",
			callerID: "owner-1",
			prepareMocks: func(repository *mocks.DashboardRepository, cache *mocks.DashboardCache) {
				repository.On("GetUser", mock.Anything, "owner-1").Return(businessUser("owner-1"), nil).Once()
				repository.On("RestaurantsByOwner", mock.Anything, "owner-1").Return([]docstore.Restaurant{{ID: "rest-1"}}, nil).Once()
				cache.On("Get", mock.Anything, "rest-1").Return(stats, int64(0), nil).Once()
			},
			expected: domain.DashboardResponse{Success: true, DashboardStats: stats},
		},
		{
			name:     "cache errors fall through to the store",
			callerID: "owner-1",
			prepareMocks: func(repository *mocks.DashboardRepository, cache *mocks.DashboardCache) {
				repository.On("GetUser", mock.Anything, "owner-1").Return(businessUser("owner-1"), nil).Once()
				repository.On("RestaurantsByOwner", mock.Anything, "owner-1").Return([]docstore.Restaurant{{ID: "rest-1"}}, nil).Once()
				cache.On("Get", mock.Anything, "rest-1").Return(nil, int64(0), errors.New("redis down")).Once()
				repository.On("AggregateItems", mock.Anything, allTimeFilter).
					Return(docstore.ItemTotals{Count: 3, Sum: decimal.NewFromInt(15)}, nil).Once()
				repository.On("AggregateItems", mock.Anything, lastDayFilter).
					Return(docstore.ItemTotals{Count: 2, Sum: decimal.NewFromInt(10)}, nil).Once()
				cache.On("Set", mock.Anything, "rest-1", int64(0), stats).Return(errors.New("redis down")).Once()
			},
			expected:         domain.DashboardResponse{Success: true, DashboardStats: stats},
			expectAggregates: true,
		},
		{
			name:     "first of several restaurants",
			callerID: "owner-1",
			prepareMocks: func(repository *mocks.DashboardRepository, cache *mocks.DashboardCache) {
				repository.On("GetUser", mock.Anything, "owner-1").Return(businessUser("owner-1"), nil).Once()
				repository.On("RestaurantsByOwner", mock.Anything, "owner-1").
					Return([]docstore.Restaurant{{ID: "rest-1"}, {ID: "rest-9"}}, nil).Once()
				cache.On("Get", mock.Anything, "rest-1").Return(stats, int64(0), nil).Once()
			},
			expected: domain.DashboardResponse{Success: true, DashboardStats: stats},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repository := mocks.NewDashboardRepository(t)
			cache := mocks.NewDashboardCache(t)
			testCase.prepareMocks(repository, cache)

			svc := service.NewDashboardService(repository, cache).WithClock(func() time.Time { return fixedNow })
			resp := svc.Dashboard(context.Background(), testCase.callerID)

			assert.Equal(t, testCase.expected, resp)
			if !testCase.expectAggregates && testCase.expected.Success {
				repository.AssertNotCalled(t, "AggregateItems", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestDashboardService_RejectedCallerIssuesNoAggregate(t *testing.T) {
	repository := mocks.NewDashboardRepository(t)
	repository.On("GetUser", mock.Anything, "student-1").
		Return(&docstore.User{ID: "student-1", AccountType: docstore.AccountIndividual}, nil).Once()

	resp := service.NewDashboardService(repository, nil).Dashboard(context.Background(), "student-1")

	assert.False(t, resp.Success)
	assert.Nil(t, resp.DashboardStats)
	assert.Contains(t, resp.Reason, "not a business account")
	repository.AssertNotCalled(t, "RestaurantsByOwner", mock.Anything, mock.Anything)
	repository.AssertNotCalled(t, "AggregateItems", mock.Anything, mock.Anything)
}
