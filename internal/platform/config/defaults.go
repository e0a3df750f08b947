package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"store.uri":                             "",
		"store.database":                        "",
		"store.collection":                      "todo_lists",
		"store.connect_timeout":                 "10s",
		"store.server_selection_timeout":        "5s",
		"store.retry.max_attempts":              defaultRetryMaxAttempts,
		"store.retry.initial_interval":          "100ms",
		"store.retry.max_interval":              "2s",
		"store.retry.multiplier":                defaultRetryMultiplier,
		"store.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"store.circuit_breaker.timeout":         "30s",
		"store.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"store.rate_limit.requests_per_second":  0,
		"store.rate_limit.burst_size":           0,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todo-list-service",

		"debug": false,
	}
}
