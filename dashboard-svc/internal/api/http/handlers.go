package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Second-Serve/backend/dashboard-svc/internal/service"

	"github.com/gorilla/mux"
)

const CallerHeader = "X-User-ID"

type Handler struct {
	Dashboard service.DashboardServiceInterface
}

func NewHandler(svc service.DashboardServiceInterface) *Handler {
	return &Handler{Dashboard: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/api/dashboard", h.getDashboard).Methods("GET", "POST")
}

// getDashboard always answers 200; failures travel in the body.
func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	callerID := strings.TrimSpace(r.Header.Get(CallerHeader))
	response := h.Dashboard.Dashboard(r.Context(), callerID)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
