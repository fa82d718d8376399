package main

import (
	httpapi "github.com/Second-Serve/backend/account-svc/internal/api/http"
	"github.com/Second-Serve/backend/account-svc/internal/service"
	"github.com/Second-Serve/backend/config"
)

func main() {
	config.InitLogger("account-svc")

	handler := httpapi.NewHandler(service.NewCampusService(service.MadisonCampus))
	httpapi.StartServer(config.GetEnv("HTTP_ADDR", ":8083"), httpapi.NewRouter(handler))
}
