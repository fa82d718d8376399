package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Second-Serve/backend/account-svc/internal/domain"
	"github.com/Second-Serve/backend/account-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Campus service.CampusServiceInterface
}

func NewHandler(svc service.CampusServiceInterface) *Handler {
	return &Handler{Campus: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/api/campus/verify", h.verifyCampusID).Methods("GET")
	r.HandleFunc("/api/campus/location", h.checkLocation).Methods("POST")
}

func (h *Handler) verifyCampusID(w http.ResponseWriter, r *http.Request) {
	barcode := strings.TrimSpace(r.URL.Query().Get("barcode"))
	if barcode == "" {
		http.Error(w, "Barcode field is required.", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Campus.VerifyCampusID(barcode))
}

func (h *Handler) checkLocation(w http.ResponseWriter, r *http.Request) {
	var loc domain.Location
	if err := json.NewDecoder(r.Body).Decode(&loc); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Campus.CheckLocation(loc))
}
