package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
	checkUp        = "up"
	checkDown      = "down"

	// DefaultReadinessTimeout bounds a readiness probe so a stalled store
	// ping cannot hold the probe open past the orchestrator's own timeout.
	DefaultReadinessTimeout = 2 * time.Second
)

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
	timeout  time.Duration
}

// CheckResponse is the readiness status of a single dependency.
type CheckResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ReadinessResponse is the body of GET /health/ready.
type ReadinessResponse struct {
	Status string                   `json:"status"`
	Checks map[string]CheckResponse `json:"checks"`
}

// NewHealthHandler creates a HealthHandler whose readiness checks are bounded
// by DefaultReadinessTimeout.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return NewHealthHandlerWithTimeout(registry, DefaultReadinessTimeout)
}

// NewHealthHandlerWithTimeout creates a HealthHandler with a custom readiness
// timeout. A non-positive timeout leaves only the request's own deadline.
func NewHealthHandlerWithTimeout(registry ports.HealthRegistry, timeout time.Duration) *HealthHandler {
	return &HealthHandler{registry: registry, timeout: timeout}
}

// Liveness handles GET /health/live. Always returns 200 OK; it does not touch
// the store.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. Returns 200 if every registered check
// passes and 503 otherwise, with the outcome of each check.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	results := h.registry.CheckAll(ctx)

	resp := ReadinessResponse{
		Status: statusReady,
		Checks: make(map[string]CheckResponse, len(results)),
	}
	code := http.StatusOK
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = CheckResponse{Status: checkDown, Error: err.Error()}
			resp.Status = statusNotReady
			code = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = CheckResponse{Status: checkUp}
	}

	writeJSON(w, code, resp)
}
