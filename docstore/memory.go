package docstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
)

// MemoryStore keeps every collection in process and backs the service tests.
// Operations have the same semantics as PostgresStore.
type MemoryStore struct {
	mu sync.RWMutex

	users       map[string]User
	restaurants map[string]Restaurant
	orders      map[string]Order
	items       map[string][]OrderItem // keyed by parent order id

	// FailCommit, when set, makes CreateOrder fail before anything is stored.
	FailCommit error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:       make(map[string]User),
		restaurants: make(map[string]Restaurant),
		orders:      make(map[string]Order),
		items:       make(map[string][]OrderItem),
	}
}

func (s *MemoryStore) PutUser(user User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
}

func (s *MemoryStore) PutRestaurant(rest Restaurant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restaurants[rest.ID] = rest
}

func (s *MemoryStore) SetBagPrice(restaurantID string, price decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rest, ok := s.restaurants[restaurantID]
	if !ok {
		return fmt.Errorf("restaurant %s: %w", restaurantID, ErrNotFound)
	}
	rest.BagPrice = decimal.NewNullDecimal(price)
	s.restaurants[restaurantID] = rest
	return nil
}

func (s *MemoryStore) GetUser(_ context.Context, id string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return &user, nil
}

func (s *MemoryStore) GetRestaurant(_ context.Context, id string) (*Restaurant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rest, ok := s.restaurants[id]
	if !ok {
		return nil, fmt.Errorf("restaurant %s: %w", id, ErrNotFound)
	}
	return &rest, nil
}

func (s *MemoryStore) RestaurantsByOwner(_ context.Context, ownerID string) ([]Restaurant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var owned []Restaurant
	for _, rest := range s.restaurants {
		if rest.OwnerID == ownerID {
			owned = append(owned, rest)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		if owned[i].CreatedAt.Equal(owned[j].CreatedAt) {
			return owned[i].ID < owned[j].ID
		}
		return owned[i].CreatedAt.Before(owned[j].CreatedAt)
	})
	return owned, nil
}

func (s *MemoryStore) GetOrder(_ context.Context, id string) (*Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order, ok := s.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	return &order, nil
}

func (s *MemoryStore) ListOrderItems(_ context.Context, orderID string) ([]OrderItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := append([]OrderItem(nil), s.items[orderID]...)
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *MemoryStore) AggregateItems(_ context.Context, filter ItemFilter) (ItemTotals, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := ItemTotals{Sum: decimal.Zero}
	for _, items := range s.items {
		for _, item := range items {
			if item.RestaurantID != filter.RestaurantID {
				continue
			}
			if filter.Since != nil && item.CreatedAt.Before(*filter.Since) {
				continue
			}
			totals.Count++
			totals.Sum = totals.Sum.Add(item.Price)
		}
	}
	return totals, nil
}

func (s *MemoryStore) CreateOrder(_ context.Context, order *Order, items []OrderItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailCommit != nil {
		return s.FailCommit
	}
	if _, exists := s.orders[order.ID]; exists {
		return fmt.Errorf("order %s already exists", order.ID)
	}
	for _, item := range items {
		if _, ok := s.restaurants[item.RestaurantID]; !ok {
			return fmt.Errorf("restaurant %s: %w", item.RestaurantID, ErrNotFound)
		}
	}

	stored := make([]OrderItem, len(items))
	for i, item := range items {
		item.OrderID = order.ID
		stored[i] = item
	}
	s.orders[order.ID] = *order
	s.items[order.ID] = stored
	return nil
}

// Counts reports how many orders and order items are stored.
func (s *MemoryStore) Counts() (orders, items int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, orderItems := range s.items {
		items += len(orderItems)
	}
	return len(s.orders), items
}
