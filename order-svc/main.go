package main

import (
	"context"
	"time"

	"github.com/Second-Serve/backend/config"
	"github.com/Second-Serve/backend/docstore"
	httpapi "github.com/Second-Serve/backend/order-svc/internal/api/http"
	"github.com/Second-Serve/backend/order-svc/internal/service"
	"github.com/Second-Serve/backend/order-svc/internal/storage"

	log "github.com/sirupsen/logrus"
)

func main() {
	config.InitLogger("order-svc")

	kafkaWriter := config.NewKafkaWriter(config.OrdersTopic)
	defer kafkaWriter.Close()

	orderService := service.NewOrderService(
		newStore(),
		storage.NewKafkaPublisher(kafkaWriter),
		service.DefaultQRGenerator{BaseURL: config.GetEnv("PICKUP_BASE_URL", "http://localhost:8080")},
	).WithPublishTimeout(config.GetDuration("PUBLISH_TIMEOUT", 500*time.Millisecond))

	handler := httpapi.NewHandler(orderService)
	httpapi.StartServer(config.GetEnv("HTTP_ADDR", ":8081"), httpapi.NewRouter(handler))
}

func newStore() *docstore.PostgresStore {
	store := docstore.NewPostgresStore(config.MustInitPostgres())
	if err := store.EnsureSchema(context.Background()); err != nil {
		log.Fatal("Failed to ensure schema: ", err)
	}
	return store
}
