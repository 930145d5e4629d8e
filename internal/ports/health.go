package ports

import (
	"context"
	"errors"
)

// ErrDegraded marks a check result for a component that still accepts
// requests in a reduced mode, such as the remote API while its circuit
// breaker tests recovery. Readiness holds while checks are only degraded.
var ErrDegraded = errors.New("degraded")

// HealthChecker is implemented by any component that can report its health.
// Currently only the remote to-do API client.
type HealthChecker interface {
	// Name returns a human-readable identifier for this component
	// (e.g., "todo-api").
	Name() string

	// HealthCheck returns nil if healthy, an error wrapping ErrDegraded if
	// the component is degraded, or any other error if it is failing.
	// Implementations should respect context cancellation and deadlines.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry manages registration and execution of health checkers.
// Used by the readiness endpoint handler to determine service readiness.
type HealthRegistry interface {
	// Register adds a HealthChecker to the registry, replacing any checker
	// registered under the same name.
	Register(checker HealthChecker)

	// CheckAll executes all registered health checks and returns results
	// keyed by checker name. Nil values indicate healthy components.
	CheckAll(ctx context.Context) map[string]error
}
