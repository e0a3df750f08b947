// Package config provides configuration loading and validation for the service.
// Configuration is loaded with koanf using a layered system:
// defaults -> base.yaml -> {profile}.yaml -> APP_* env vars -> process aliases
// (MONGODB_URI, DEBUG).
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Store     StoreConfig     `koanf:"store"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Debug     bool            `koanf:"debug"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// StoreConfig holds MongoDB connection and resilience settings.
type StoreConfig struct {
	URI                    string               `koanf:"uri"`
	Database               string               `koanf:"database"`
	Collection             string               `koanf:"collection"`
	ConnectTimeout         time.Duration        `koanf:"connect_timeout"`
	ServerSelectionTimeout time.Duration        `koanf:"server_selection_timeout"`
	Retry                  RetryConfig          `koanf:"retry"`
	CircuitBreaker         CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit              RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
// Retries apply to read-only store operations only.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds store operation rate limiting settings.
// A zero RequestsPerSecond disables rate limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// EffectiveLogLevel returns the configured log level, forced to "debug" when
// the debug flag is on.
func (c *Config) EffectiveLogLevel() string {
	if c.Debug {
		return "debug"
	}
	return c.Log.Level
}
