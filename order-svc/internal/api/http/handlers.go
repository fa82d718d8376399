package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Second-Serve/backend/order-svc/internal/domain"
	"github.com/Second-Serve/backend/order-svc/internal/service"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// CallerHeader carries the already-authenticated caller's user id.
const CallerHeader = "X-User-ID"

type Handler struct {
	Orders service.OrderServiceInterface
}

func NewHandler(orders service.OrderServiceInterface) *Handler {
	return &Handler{Orders: orders}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/orders", h.placeOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getPickupQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.PlaceOrderRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		http.Error(w, "Invalid payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.Orders.PlaceOrder(r.Context(), callerID(r), req)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.GetOrder(r.Context(), callerID(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) getPickupQRCode(w http.ResponseWriter, r *http.Request) {
	qr, err := h.Orders.PickupQRCode(r.Context(), callerID(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(qr)
}

func callerID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(CallerHeader))
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, service.ErrInvalidArgument):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrRestaurantNotFound), errors.Is(err, service.ErrOrderNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrPermissionDenied):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, service.ErrUnavailable):
		log.WithError(err).Error("order store unavailable")
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		log.WithError(err).Error("unexpected order error")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
