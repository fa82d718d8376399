package main

import (
	"net/http"
	"time"

	"github.com/Second-Serve/backend/api-gateway/internal/gateway"
	"github.com/Second-Serve/backend/config"

	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

func main() {
	config.InitLogger("api-gateway")

	gwConfig := gateway.Config{
		OrderSvcURL:     config.GetEnv("ORDER_SVC_URL", "http://localhost:8081"),
		DashboardSvcURL: config.GetEnv("DASHBOARD_SVC_URL", "http://localhost:8082"),
		AccountSvcURL:   config.GetEnv("ACCOUNT_SVC_URL", "http://localhost:8083"),
		IdentityToken:   config.GetEnv("GATEWAY_IDENTITY_TOKEN", ""),
	}
	if gwConfig.IdentityToken == "" {
		log.Warn("GATEWAY_IDENTITY_TOKEN is empty; X-User-ID is trusted from every caller")
	}

	gw := gateway.NewGateway(gwConfig, &http.Client{Timeout: config.GetDuration("PROXY_TIMEOUT", 30*time.Second)})

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	handler := c.Handler(gw.SetupRoutes())

	addr := config.GetEnv("HTTP_ADDR", ":8080")
	log.Printf("API Gateway starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
