package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Store.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (st *StoreConfig) validate() error {
	var errs []error

	switch {
	case strings.TrimSpace(st.URI) == "":
		errs = append(errs, fmt.Errorf("store.uri must not be empty (set %s)", EnvMongoURI))
	case !strings.HasPrefix(st.URI, "mongodb://") && !strings.HasPrefix(st.URI, "mongodb+srv://"):
		// The URI is never echoed back: it usually carries credentials.
		errs = append(errs, errors.New("store.uri must use the mongodb:// or mongodb+srv:// scheme"))
	}
	if strings.TrimSpace(st.Collection) == "" {
		errs = append(errs, errors.New("store.collection must not be empty"))
	}
	if st.ConnectTimeout <= 0 {
		errs = append(errs, errors.New("store.connect_timeout must be positive"))
	}
	if st.ServerSelectionTimeout <= 0 {
		errs = append(errs, errors.New("store.server_selection_timeout must be positive"))
	}
	if st.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("store.retry.max_attempts must be >= 1, got %d", st.Retry.MaxAttempts))
	}
	if st.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("store.retry.multiplier must be positive, got %f", st.Retry.Multiplier))
	}
	if st.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("store.circuit_breaker.max_failures must be >= 1, got %d",
			st.CircuitBreaker.MaxFailures))
	}
	if st.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("store.rate_limit.requests_per_second must not be negative, got %f",
			st.RateLimit.RequestsPerSecond))
	}
	if st.RateLimit.RequestsPerSecond > 0 && st.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("store.rate_limit.burst_size must be >= 1 when rate limiting is enabled, got %d",
			st.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	if t.ServiceName == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty when telemetry is enabled"))
	}

	return errors.Join(errs...)
}
