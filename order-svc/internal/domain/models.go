package domain

import (
	"time"

	"github.com/Second-Serve/backend/docstore"
	"github.com/shopspring/decimal"
)

type LineItem struct {
	RestaurantID string `json:"restaurantId"`
	Quantity     int    `json:"quantity"`
}

type PlaceOrderRequest struct {
	Items []LineItem `json:"items"`
}

type PlaceOrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId,omitempty"`
}

type OrderDetails struct {
	docstore.Order
	Items []docstore.OrderItem `json:"items"`
}

type OrderPlacedEvent struct {
	Type          string          `json:"type"`
	OrderID       string          `json:"order_id"`
	UserID        string          `json:"user_id"`
	RestaurantIDs []string        `json:"restaurant_ids"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Timestamp     time.Time       `json:"timestamp"`
}
