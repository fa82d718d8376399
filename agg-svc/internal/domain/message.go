package domain

import "time"

const OrderPlaced = "order_placed"

// OrderEvent mirrors what order-svc publishes to the orders topic.
type OrderEvent struct {
	Type          string    `json:"type"`
	OrderID       string    `json:"order_id"`
	UserID        string    `json:"user_id"`
	RestaurantIDs []string  `json:"restaurant_ids"`
	Timestamp     time.Time `json:"timestamp"`
}
