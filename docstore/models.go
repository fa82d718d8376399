package docstore

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("document not found")

const (
	AccountIndividual = "individual"
	AccountBusiness   = "business"
)

type User struct {
	ID           string    `db:"id" json:"id"`
	AccountType  string    `db:"account_type" json:"account_type"`
	RestaurantID *string   `db:"restaurant_id" json:"restaurant,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type Restaurant struct {
	ID            string              `db:"id" json:"id"`
	Name          string              `db:"name" json:"name"`
	Address       string              `db:"address" json:"address"`
	BagPrice      decimal.NullDecimal `db:"bag_price" json:"bag_price"`
	BagsAvailable int                 `db:"bags_available" json:"bags_available"`
	OwnerID       string              `db:"owner_id" json:"owner"`
	CreatedAt     time.Time           `db:"created_at" json:"created_at"`
}

type Order struct {
	ID         string          `db:"id" json:"id"`
	UserID     string          `db:"user_id" json:"for"`
	TotalPrice decimal.Decimal `db:"total_price" json:"totalPrice"`
	CreatedAt  time.Time       `db:"created_at" json:"createdAt"`
	Fulfilled  bool            `db:"fulfilled" json:"fulfilled"`
}

// OrderItem is an entry of an order's "items" sub-collection. CreatedAt is a
// copy of the parent order's timestamp so items can be filtered by time alone.
type OrderItem struct {
	ID           string          `db:"id" json:"id"`
	OrderID      string          `db:"order_id" json:"-"`
	RestaurantID string          `db:"restaurant_id" json:"restaurant"`
	Quantity     int             `db:"quantity" json:"quantity"`
	Price        decimal.Decimal `db:"price" json:"price"`
	CreatedAt    time.Time       `db:"created_at" json:"createdAt"`
}

// ItemFilter selects order items across every order. A nil Since means all time.
type ItemFilter struct {
	RestaurantID string
	Since        *time.Time
}

type ItemTotals struct {
	Count int64           `db:"count"`
	Sum   decimal.Decimal `db:"sum"`
}
