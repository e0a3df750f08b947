package ports

import "context"

// HealthChecker is implemented by dependencies whose reachability decides
// whether the service is ready, such as the MongoDB client.
type HealthChecker interface {
	// Name identifies the dependency in readiness output (e.g. "mongodb").
	Name() string

	// HealthCheck returns nil when the dependency is usable. It must return
	// promptly once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects HealthCheckers for the readiness endpoint.
type HealthRegistry interface {
	// Register adds a checker. A later checker with the same name replaces
	// the earlier one in CheckAll results.
	Register(checker HealthChecker)

	// CheckAll runs every registered check and returns the outcome keyed by
	// checker name. A nil value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
