package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Second-Serve/backend/agg-svc/internal/domain"

	log "github.com/sirupsen/logrus"
)

const maxBackoff = 30 * time.Second

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	// Backoff is the first pause after a failed read; it doubles on each
	// consecutive failure up to maxBackoff.
	Backoff time.Duration
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader:  reader,
		Store:   store,
		Backoff: time.Second,
	}
}

// Start blocks until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	log.Info("Starting Aggregation Service consumer...")
	backoff := c.Backoff
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("Aggregation Service consumer stopped")
				return
			}
			log.WithError(err).WithField("retry_in", backoff).Error("Error reading message")
			if !sleep(ctx, backoff) {
				log.Info("Aggregation Service consumer stopped")
				return
			}
			backoff = min(backoff*2, maxBackoff)
			continue
		}
		backoff = c.Backoff

		var msg domain.OrderEvent
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.WithError(err).WithField("offset", message.Offset).Warn("Error unmarshaling message")
			continue
		}

		if msg.Type == domain.OrderPlaced {
			c.ProcessOrder(ctx, msg)
		}
	}
}

func (c *Consumer) ProcessOrder(ctx context.Context, msg domain.OrderEvent) {
	if msg.Type != domain.OrderPlaced || len(msg.RestaurantIDs) == 0 {
		return
	}
	entry := log.WithFields(log.Fields{
		"order_id":    msg.OrderID,
		"restaurants": msg.RestaurantIDs,
	})

	if err := c.Store.InvalidateDashboards(ctx, msg.RestaurantIDs...); err != nil {
		entry.WithError(err).Error("Error invalidating dashboards")
		return
	}
	entry.Info("Invalidated dashboards for placed order")
}

func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
