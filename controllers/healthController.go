package controller

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/IrumShehryar/Restaurant-Website/helper"
)

const readinessTimeout = 2 * time.Second

// Pinger reports whether a backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse is the body of /health and /ready.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Reason    string    `json:"reason,omitempty"`
}

// HealthController answers liveness and readiness probes.
type HealthController struct {
	store Pinger
	ready atomic.Bool
}

func NewHealthController(store Pinger) *HealthController {
	return &HealthController{store: store}
}

// SetReady marks whether the server should receive traffic.
func (c *HealthController) SetReady(ready bool) {
	c.ready.Store(ready)
}

// Health handles GET /health
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	helper.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	})
}

// Ready handles GET /ready. It fails while the server is starting or
// shutting down and whenever the store does not answer a ping.
func (c *HealthController) Ready(w http.ResponseWriter, r *http.Request) {
	if !c.ready.Load() {
		helper.RespondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "not_ready",
			Timestamp: time.Now().UTC(),
			Reason:    "server is not accepting traffic",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	if err := c.store.Ping(ctx); err != nil {
		helper.RespondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "not_ready",
			Timestamp: time.Now().UTC(),
			Reason:    "store unavailable",
		})
		return
	}

	helper.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:    "ready",
		Timestamp: time.Now().UTC(),
	})
}
