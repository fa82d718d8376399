package service

import (
	"context"

	"github.com/Second-Serve/backend/agg-svc/internal/domain"
	"github.com/Second-Serve/backend/agg-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	InvalidateDashboards(ctx context.Context, restaurantIDs ...string) error
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessOrder(ctx context.Context, msg domain.OrderEvent)
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
