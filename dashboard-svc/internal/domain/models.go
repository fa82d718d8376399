package domain

// DashboardStats counts order items, not orders: an order spanning two
// restaurants contributes one to each.
type DashboardStats struct {
	OrdersLast24Hours   int64   `json:"ordersLast24Hours"`
	EarningsLast24Hours float64 `json:"earningsLast24Hours"`
	OrdersAllTime       int64   `json:"ordersAllTime"`
	EarningsAllTime     float64 `json:"earningsAllTime"`
}

type DashboardResponse struct {
	Success bool `json:"success"`
	*DashboardStats
	Reason string `json:"reason,omitempty"`
}
