package acl

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/todo-client/internal/domain"
	"github.com/jsamuelsen11/todo-client/internal/ports"
)

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *TodoClient) Name() string {
	return ServiceName
}

// HealthCheck reports the remote API's availability from the circuit breaker
// state. No network call is made.
//
//   - "closed": healthy, returns nil.
//   - "half-open": probing recovery, wraps [ports.ErrDegraded].
//   - "open": requests are rejected, wraps [domain.ErrUnavailable].
func (c *TodoClient) HealthCheck(_ context.Context) error {
	switch state := c.req.CircuitBreakerState(); state {
	case "closed":
		return nil
	case "half-open":
		return fmt.Errorf("%s: circuit breaker half-open: %w", ServiceName, ports.ErrDegraded)
	case "open":
		return fmt.Errorf("%s: circuit breaker open: %w", ServiceName, domain.ErrUnavailable)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %q", ServiceName, state)
	}
}
