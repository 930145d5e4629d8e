package handlers

import (
	"errors"
	"net/http"

	"github.com/jsamuelsen11/todo-client/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-client/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusDegraded = "degraded"
	statusFailing  = "failing"
	statusNotReady = "not_ready"
)

// HealthHandler serves liveness and readiness for the HTTP shell. Readiness
// reflects whether the remote to-do API can currently be reached.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler backed by registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.HealthResponse{Status: statusOK})
}

// Readiness handles GET /health/ready. Any failing check answers 503
// "not_ready". Degraded checks (the API's breaker probing recovery) keep the
// shell at 200 with status "degraded", since requests are still let through.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := dto.HealthResponse{
		Status: statusReady,
		Checks: make(map[string]dto.CheckResponse, len(results)),
	}
	code := http.StatusOK

	for name, err := range results {
		switch {
		case err == nil:
			resp.Checks[name] = dto.CheckResponse{Status: statusOK}
		case errors.Is(err, ports.ErrDegraded):
			resp.Checks[name] = dto.CheckResponse{Status: statusDegraded, Error: err.Error()}
			if code == http.StatusOK {
				resp.Status = statusDegraded
			}
		default:
			resp.Checks[name] = dto.CheckResponse{Status: statusFailing, Error: err.Error()}
			resp.Status = statusNotReady
			code = http.StatusServiceUnavailable
		}
	}

	writeJSON(w, code, resp)
}
