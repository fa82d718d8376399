package service

import (
	"context"

	"github.com/Second-Serve/backend/docstore"
	"github.com/Second-Serve/backend/order-svc/internal/domain"
)

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, callerID string, req domain.PlaceOrderRequest) (domain.PlaceOrderResponse, error)
	GetOrder(ctx context.Context, callerID, orderID string) (*domain.OrderDetails, error)
	PickupQRCode(ctx context.Context, callerID, orderID string) ([]byte, error)
}

type OrderRepository interface {
	GetRestaurant(ctx context.Context, id string) (*docstore.Restaurant, error)
	CreateOrder(ctx context.Context, order *docstore.Order, items []docstore.OrderItem) error
	GetOrder(ctx context.Context, id string) (*docstore.Order, error)
	ListOrderItems(ctx context.Context, orderID string) ([]docstore.OrderItem, error)
}

type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, event domain.OrderPlacedEvent) error
}

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

var (
	_ OrderServiceInterface = (*OrderService)(nil)
	_ OrderRepository       = (*docstore.PostgresStore)(nil)
	_ OrderRepository       = (*docstore.MemoryStore)(nil)
)
