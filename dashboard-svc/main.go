package main

import (
	"context"
	"time"

	"github.com/Second-Serve/backend/config"
	httpapi "github.com/Second-Serve/backend/dashboard-svc/internal/api/http"
	"github.com/Second-Serve/backend/dashboard-svc/internal/service"
	"github.com/Second-Serve/backend/dashboard-svc/internal/storage"
	"github.com/Second-Serve/backend/docstore"

	log "github.com/sirupsen/logrus"
)

func main() {
	config.InitLogger("dashboard-svc")

	rdb := config.MustInitRedis()
	defer rdb.Close()

	cache := storage.NewRedisCache(rdb, config.GetDuration("DASHBOARD_CACHE_TTL", 30*time.Second))
	dashboardService := service.NewDashboardService(newStore(), cache)

	handler := httpapi.NewHandler(dashboardService)
	httpapi.StartServer(config.GetEnv("HTTP_ADDR", ":8082"), httpapi.NewRouter(handler))
}

func newStore() *docstore.PostgresStore {
	store := docstore.NewPostgresStore(config.MustInitPostgres())
	if err := store.EnsureSchema(context.Background()); err != nil {
		log.Fatal("Failed to ensure schema: ", err)
	}
	return store
}
