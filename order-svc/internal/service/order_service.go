package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Second-Serve/backend/docstore"
	"github.com/Second-Serve/backend/order-svc/internal/domain"
	"github.com/Second-Serve/backend/order-svc/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var (
	ErrUnauthenticated    = errors.New("user is not authenticated")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrUnavailable        = errors.New("order store unavailable")
)

// maxOrderTotal is the first amount a NUMERIC(12, 2) column cannot hold.
var maxOrderTotal = decimal.New(1, 10)

const defaultPublishTimeout = 500 * time.Millisecond

type OrderService struct {
	repository     OrderRepository
	publisher      OrderPublisher
	qrEncoder      QRGenerator
	now            func() time.Time
	newID          func() string
	publishTimeout time.Duration
}

func NewOrderService(repository OrderRepository, publisher OrderPublisher, qr QRGenerator) *OrderService {
	return &OrderService{
		repository: repository,
		publisher:  publisher,
		qrEncoder:  qr,
		now:            time.Now,
		newID:          uuid.NewString,
		publishTimeout: defaultPublishTimeout,
	}
}

// WithClock replaces the timestamp source used for new orders.
func (s *OrderService) WithClock(now func() time.Time) *OrderService {
	s.now = now
	return s
}

// WithPublishTimeout bounds how long a placement waits on the event broker.
func (s *OrderService) WithPublishTimeout(timeout time.Duration) *OrderService {
	s.publishTimeout = timeout
	return s
}

// PlaceOrder prices every line from the restaurant catalog and records the
// order with all of its items in a single atomic write. Client-supplied
// prices are never accepted.
func (s *OrderService) PlaceOrder(ctx context.Context, callerID string, req domain.PlaceOrderRequest) (domain.PlaceOrderResponse, error) {
	if callerID == "" {
		return domain.PlaceOrderResponse{}, ErrUnauthenticated
	}
	if err := validation.ValidatePlaceOrderRequest(&req); err != nil {
		return domain.PlaceOrderResponse{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	now := s.now().UTC().Truncate(time.Microsecond)
	order := &docstore.Order{
		ID:         s.newID(),
		UserID:     callerID,
		TotalPrice: decimal.Zero,
		CreatedAt:  now,
		Fulfilled:  false,
	}

	items := make([]docstore.OrderItem, 0, len(req.Items))
	restaurantIDs := make([]string, 0, len(req.Items))
	seen := make(map[string]bool, len(req.Items))
	for _, line := range req.Items {
		bagPrice, err := s.bagPrice(ctx, line.RestaurantID)
		if err != nil {
			return domain.PlaceOrderResponse{}, err
		}

		price := bagPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		items = append(items, docstore.OrderItem{
			ID:           s.newID(),
			OrderID:      order.ID,
			RestaurantID: line.RestaurantID,
			Quantity:     line.Quantity,
			Price:        price,
			CreatedAt:    now,
		})
		order.TotalPrice = order.TotalPrice.Add(price)

		if !seen[line.RestaurantID] {
			seen[line.RestaurantID] = true
			restaurantIDs = append(restaurantIDs, line.RestaurantID)
		}
	}

	if order.TotalPrice.GreaterThanOrEqual(maxOrderTotal) {
		return domain.PlaceOrderResponse{}, fmt.Errorf("%w: order total %s is too large", ErrInvalidArgument, order.TotalPrice.String())
	}

	if err := s.repository.CreateOrder(ctx, order, items); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return domain.PlaceOrderResponse{}, fmt.Errorf("%w: %v", ErrRestaurantNotFound, err)
		}
		return domain.PlaceOrderResponse{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	log.WithFields(log.Fields{
		"order_id": order.ID,
		"user_id":  callerID,
		"items":    len(items),
		"total":    order.TotalPrice.StringFixed(2),
	}).Info("order placed")

	if s.publisher != nil {
		event := domain.OrderPlacedEvent{
			Type:          "order_placed",
			OrderID:       order.ID,
			UserID:        callerID,
			RestaurantIDs: restaurantIDs,
			TotalPrice:    order.TotalPrice,
			Timestamp:     now,
		}
		s.publish(ctx, event)
	}

	return domain.PlaceOrderResponse{Success: true, OrderID: order.ID}, nil
}

func (s *OrderService) publish(ctx context.Context, event domain.OrderPlacedEvent) {
	// The order is already committed, so a caller hanging up must not drop the event.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()
	if err := s.publisher.PublishOrderPlaced(ctx, event); err != nil {
		log.WithField("order_id", event.OrderID).WithError(err).Warn("failed to publish order_placed event")
	}
}

func (s *OrderService) bagPrice(ctx context.Context, restaurantID string) (decimal.Decimal, error) {
	rest, err := s.repository.GetRestaurant(ctx, restaurantID)
	if errors.Is(err, docstore.ErrNotFound) {
		return decimal.Decimal{}, fmt.Errorf("%w: restaurant with id %s does not exist", ErrRestaurantNotFound, restaurantID)
	}
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !rest.BagPrice.Valid {
		return decimal.Decimal{}, fmt.Errorf("%w: restaurant with id %s has no bag price", ErrRestaurantNotFound, restaurantID)
	}
	return rest.BagPrice.Decimal, nil
}

func (s *OrderService) GetOrder(ctx context.Context, callerID, orderID string) (*domain.OrderDetails, error) {
	order, err := s.ownedOrder(ctx, callerID, orderID)
	if err != nil {
		return nil, err
	}

	items, err := s.repository.ListOrderItems(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if items == nil {
		items = []docstore.OrderItem{}
	}
	return &domain.OrderDetails{Order: *order, Items: items}, nil
}

func (s *OrderService) PickupQRCode(ctx context.Context, callerID, orderID string) ([]byte, error) {
	order, err := s.ownedOrder(ctx, callerID, orderID)
	if err != nil {
		return nil, err
	}
	if s.qrEncoder == nil {
		return nil, fmt.Errorf("%w: qr generation is not configured", ErrUnavailable)
	}
	return s.qrEncoder.Generate(order.ID)
}

func (s *OrderService) ownedOrder(ctx context.Context, callerID, orderID string) (*docstore.Order, error) {
	if callerID == "" {
		return nil, ErrUnauthenticated
	}

	order, err := s.repository.GetOrder(ctx, orderID)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if order.UserID != callerID {
		return nil, fmt.Errorf("%w: order %s belongs to another user", ErrPermissionDenied, orderID)
	}
	return order, nil
}
