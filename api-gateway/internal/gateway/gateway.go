package gateway

import (
	"crypto/subtle"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

const (
	UserIDHeader        = "X-User-ID"
	IdentityTokenHeader = "X-Identity-Token"
	RequestIDHeader     = "X-Request-ID"
)

// Headers meaningful only for a single connection.
var hopHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

type Config struct {
	OrderSvcURL     string
	DashboardSvcURL string
	AccountSvcURL   string
	// IdentityToken is shared with the sign-in proxy in front of the gateway.
	// X-User-ID is forwarded only on requests that present it. Empty trusts
	// every caller and is meant for local runs.
	IdentityToken string
}

type Gateway struct {
	config Config
	client HTTPClient
}

func NewGateway(config Config, client HTTPClient) *Gateway {
	return &Gateway{
		config: config,
		client: client,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// ProxyRequest forwards the request to targetURL and streams the upstream
// response back. Connection headers are dropped both ways and the caller
// identity survives only when the caller is trusted.
func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	entry := log.WithFields(log.Fields{"method": r.Method, "path": r.URL.Path, "target": targetURL})
	entry.Debug("proxy")

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		entry.WithError(err).Error("failed to create request")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	req.Header = r.Header.Clone()
	removeHopHeaders(req.Header)
	if !g.trustedCaller(r) {
		if req.Header.Get(UserIDHeader) != "" {
			entry.Warn("dropping caller identity without a valid token")
		}
		req.Header.Del(UserIDHeader)
	}
	req.Header.Del(IdentityTokenHeader)
	if req.Header.Get(RequestIDHeader) == "" {
		req.Header.Set(RequestIDHeader, uuid.NewString())
	}

	resp, err := g.client.Do(req)
	if err != nil {
		entry.WithError(err).Error("failed to proxy")
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	removeHopHeaders(w.Header())
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		entry.WithError(err).Warn("failed to copy response")
	}
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	switch {
	case path == "/api/orders" || strings.HasPrefix(path, "/api/orders/"):
		g.ProxyRequest(w, r, g.config.OrderSvcURL)
	case path == "/api/dashboard":
		g.ProxyRequest(w, r, g.config.DashboardSvcURL)
	case strings.HasPrefix(path, "/api/campus/"):
		g.ProxyRequest(w, r, g.config.AccountSvcURL)
	default:
		log.WithField("path", path).Info("unmatched API route")
		http.Error(w, "API route not found", http.StatusNotFound)
	}
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	return r
}

func (g *Gateway) trustedCaller(r *http.Request) bool {
	if g.config.IdentityToken == "" {
		return true
	}
	token := r.Header.Get(IdentityTokenHeader)
	return subtle.ConstantTimeCompare([]byte(token), []byte(g.config.IdentityToken)) == 1
}

func removeHopHeaders(h http.Header) {
	for _, name := range strings.Split(h.Get("Connection"), ",") {
		if name = strings.TrimSpace(name); name != "" {
			h.Del(name)
		}
	}
	for _, name := range hopHeaders {
		h.Del(name)
	}
}
