// Package gatewayhttp is the HTTP-to-RPC gateway: it turns tiny
// pixel-beacon requests into record-activity calls and exposes a
// health endpoint a load balancer can poll.
package gatewayhttp

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// activityService is the subset of *activity.Service the gateway
// needs, kept narrow so tests can fake it without pulling in a real
// backing store.
type activityService interface {
	IsHealthy(ctx context.Context) error
	RecordActivity(ctx context.Context, contextID, visitorID string) error
}

// Gateway adapts HTTP requests to activityService calls.
type Gateway struct {
	service activityService
	logger  *zap.Logger
}

// NewGateway constructs a Gateway. logger may be nil.
func NewGateway(service activityService, logger *zap.Logger) *Gateway {
	return &Gateway{service: service, logger: logger}
}

// Router builds the route table:
//
//	GET /health                              -> 200/503 health check
//	GET /{context_id:[A-Za-z0-9_]{0,40}}.png  -> 204 pixel beacon
//
// A context id longer than 40 characters, or containing a character
// outside the grammar, never matches the pixel route and falls
// through to mux's default 404.
func (g *Gateway) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/{context_id:[A-Za-z0-9_]{0,40}}.png", g.handlePixel).Methods(http.MethodGet)
	return r
}

func (g *Gateway) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := g.service.IsHealthy(r.Context()); err != nil {
		if g.logger != nil {
			g.logger.Error("health check failed", zap.Error(err))
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}

// handlePixel records one visit and always answers 204, even when the
// record call fails: the beacon response must never reveal backing-
// store trouble to whatever fetched the pixel.
func (g *Gateway) handlePixel(w http.ResponseWriter, r *http.Request) {
	contextID := mux.Vars(r)["context_id"]
	visitorID := visitorIDFor(r)

	if err := g.service.RecordActivity(r.Context(), contextID, visitorID); err != nil {
		if g.logger != nil {
			g.logger.Warn("record activity failed",
				zap.String("context_id", contextID), zap.Error(err))
		}
	}

	w.Header().Set("Cache-Control", "no-cache, max-age=0")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "Thu, 01 Jan 1970 00:00:00 GMT")
	w.WriteHeader(http.StatusNoContent)
}

// visitorIDFor derives visitor_id = sha1_hex(remote_addr_bytes +
// user_agent_bytes), with an absent User-Agent treated as empty.
func visitorIDFor(r *http.Request) string {
	sum := sha1.Sum([]byte(remoteIP(r) + r.UserAgent()))
	return hex.EncodeToString(sum[:])
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
