package docstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const foreignKeyViolation = "23503"

type PostgresStore struct {
	DB *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

func (s *PostgresStore) GetUser(ctx context.Context, id string) (*User, error) {
	var user User
	err := s.DB.GetContext(ctx, &user, `
		SELECT id, account_type, restaurant_id, created_at
		FROM users
		WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *PostgresStore) GetRestaurant(ctx context.Context, id string) (*Restaurant, error) {
	var rest Restaurant
	err := s.DB.GetContext(ctx, &rest, `
		SELECT id, name, COALESCE(address, '') AS address, bag_price, bags_available, owner_id, created_at
		FROM restaurants
		WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("restaurant %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (s *PostgresStore) RestaurantsByOwner(ctx context.Context, ownerID string) ([]Restaurant, error) {
	var restaurants []Restaurant
	err := s.DB.SelectContext(ctx, &restaurants, `
		SELECT id, name, COALESCE(address, '') AS address, bag_price, bags_available, owner_id, created_at
		FROM restaurants
		WHERE owner_id = $1
		ORDER BY created_at, id`, ownerID)
	if err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *PostgresStore) GetOrder(ctx context.Context, id string) (*Order, error) {
	var order Order
	err := s.DB.GetContext(ctx, &order, `
		SELECT id, user_id, total_price, created_at, fulfilled
		FROM orders
		WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *PostgresStore) ListOrderItems(ctx context.Context, orderID string) ([]OrderItem, error) {
	var items []OrderItem
	err := s.DB.SelectContext(ctx, &items, `
		SELECT id, order_id, restaurant_id, quantity, price, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// AggregateItems counts and sums order items over every order, so the work
// stays in the database no matter how many orders exist.
func (s *PostgresStore) AggregateItems(ctx context.Context, filter ItemFilter) (ItemTotals, error) {
	query := `
		SELECT COUNT(*) AS count, COALESCE(SUM(price), 0) AS sum
		FROM order_items
		WHERE restaurant_id = $1`
	args := []interface{}{filter.RestaurantID}
	if filter.Since != nil {
		query += " AND created_at >= $2"
		args = append(args, *filter.Since)
	}

	var totals ItemTotals
	if err := s.DB.GetContext(ctx, &totals, query, args...); err != nil {
		return ItemTotals{}, err
	}
	return totals, nil
}

// CreateOrder writes the order and all of its items in one transaction.
func (s *PostgresStore) CreateOrder(ctx context.Context, order *Order, items []OrderItem) error {
	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin order transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO orders (id, user_id, total_price, created_at, fulfilled)
		VALUES ($1, $2, $3, $4, $5)`,
		order.ID, order.UserID, order.TotalPrice, order.CreatedAt, order.Fulfilled); err != nil {
		return fmt.Errorf("insert order %s: %w", order.ID, classify(err))
	}

	for _, item := range items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, restaurant_id, quantity, price, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			item.ID, order.ID, item.RestaurantID, item.Quantity, item.Price, item.CreatedAt); err != nil {
			return fmt.Errorf("insert order item %s: %w", item.ID, classify(err))
		}
	}

	return tx.Commit()
}

// classify turns a dangling reference (user or restaurant removed since it
// was read) into ErrNotFound.
func classify(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
		return fmt.Errorf("%w: %s", ErrNotFound, pqErr.Message)
	}
	return err
}

func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			account_type TEXT NOT NULL DEFAULT 'individual',
			restaurant_id TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS restaurants (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			address TEXT,
			bag_price NUMERIC(12, 2),
			bags_available INTEGER NOT NULL DEFAULT 0,
			owner_id TEXT NOT NULL REFERENCES users (id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users (id),
			total_price NUMERIC(12, 2) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			fulfilled BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id TEXT PRIMARY KEY,
			order_id TEXT NOT NULL REFERENCES orders (id) ON DELETE CASCADE,
			restaurant_id TEXT NOT NULL REFERENCES restaurants (id),
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			price NUMERIC(12, 2) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		"CREATE INDEX IF NOT EXISTS idx_restaurants_owner ON restaurants (owner_id)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_restaurant_created ON order_items (restaurant_id, created_at)",
	}
	for _, stmt := range statements {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
