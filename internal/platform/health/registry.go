// Package health provides a thread-safe registry of dependency health checks.
// The readiness endpoint uses it to decide whether the service can accept
// traffic.
package health

import (
	"context"
	"sync"

	"github.com/jsamuelsen11/todo-list-service/internal/platform/fanout"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is a thread-safe implementation of [ports.HealthRegistry].
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates an empty health check registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a health checker. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every registered check concurrently and returns results
// keyed by checker name; nil means healthy. When two checkers share a name
// the one registered last wins.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	if len(checkers) == 0 {
		return map[string]error{}
	}

	outcomes := fanout.Run(ctx, len(checkers), checkers, func(ctx context.Context, c ports.HealthChecker) (string, error) {
		return c.Name(), c.HealthCheck(ctx)
	})

	results := make(map[string]error, len(checkers))
	for i, o := range outcomes {
		name := o.Value
		if name == "" {
			name = checkers[i].Name()
		}
		results[name] = o.Err
	}
	return results
}
