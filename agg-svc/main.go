package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/Second-Serve/backend/agg-svc/internal/service"
	"github.com/Second-Serve/backend/agg-svc/internal/storage"
	"github.com/Second-Serve/backend/config"
)

func main() {
	config.InitLogger("agg-svc")

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader(config.OrdersTopic, "agg-svc")
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := service.NewConsumer(reader, storage.NewStore(rdb))
	consumer.Start(ctx)
}
