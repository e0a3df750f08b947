package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Process-level variables that are honored without the APP_ prefix. They take
// precedence over every other layer.
const (
	EnvMongoURI = "MONGODB_URI"
	EnvDebug    = "DEBUG"
)

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory where config YAML files are located.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load reads configuration using a layered hierarchy (highest precedence last):
//
//  1. Built-in defaults
//  2. Base config ({configDir}/base.yaml), skipped when absent
//  3. Profile config ({configDir}/{profile}.yaml), skipped when profile is empty
//  4. Environment variables (APP_ prefix)
//  5. MONGODB_URI and DEBUG
//
// Environment variable mapping uses key matching against loaded config keys
// to resolve ambiguity between nesting separators and field-internal underscores:
//
//	APP_SERVER_PORT               -> server.port
//	APP_SERVER_READ_TIMEOUT       -> server.read_timeout
//	APP_STORE_RETRY_MAX_ATTEMPTS  -> store.retry.max_attempts
//	MONGODB_URI                   -> store.uri
//	DEBUG                         -> debug
func Load(profile string, opts ...Option) (*Config, error) {
	if profile != "" {
		if err := validateProfile(profile); err != nil {
			return nil, err
		}
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	// Layer 1: Defaults.
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// Layer 2: Base config (shared across all profiles).
	basePath := filepath.Join(o.configDir, "base.yaml")
	if err := k.Load(file.Provider(basePath), yaml.Parser()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading base config %s: %w", basePath, err)
	}

	// Layer 3: Profile-specific config.
	if profile != "" {
		profilePath := filepath.Join(o.configDir, profile+".yaml")
		if err := k.Load(file.Provider(profilePath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading profile config %s: %w", profilePath, err)
		}
	}

	// Layer 4: Environment variables with APP_ prefix.
	// Build a reverse lookup from known koanf keys so that env vars like
	// APP_SERVER_READ_TIMEOUT correctly resolve to "server.read_timeout"
	// instead of being ambiguously split as "server.read.timeout".
	envLookup := buildEnvLookup(k.Keys())

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.TrimPrefix(key, envPrefix)
			key = strings.ToLower(key)

			if koanfKey, ok := envLookup[key]; ok {
				return koanfKey, value
			}

			// Fallback: simple underscore-to-dot replacement.
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	// Layer 5: Unprefixed process variables.
	if err := k.Load(confmap.Provider(processOverrides(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading process overrides: %w", err)
	}

	// Unmarshal into Config struct.
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// Validate.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// processOverrides reads MONGODB_URI and DEBUG from the process environment.
// Unset variables are omitted so lower layers keep their values.
func processOverrides() map[string]any {
	overrides := make(map[string]any, 2)
	if uri, ok := os.LookupEnv(EnvMongoURI); ok {
		overrides["store.uri"] = uri
	}
	if raw, ok := os.LookupEnv(EnvDebug); ok {
		overrides["debug"] = ParseFlag(raw)
	}
	return overrides
}

// ParseFlag interprets a boolean-like string. "1", "true", "on" and "yes"
// (case-insensitive, surrounding space ignored) are true; anything else is false.
func ParseFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "on", "yes":
		return true
	default:
		return false
	}
}

// validateProfile checks that the profile name is safe.
func validateProfile(profile string) error {
	if strings.TrimSpace(profile) == "" {
		return errors.New("profile must not be blank")
	}
	if strings.ContainsAny(profile, `/\`) {
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	}
	if strings.Contains(profile, "..") {
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// buildEnvLookup creates a reverse mapping from env-style keys to koanf dotted keys.
// For each koanf key like "server.read_timeout", the env form "server_read_timeout"
// is computed by replacing dots with underscores. This allows unambiguous matching
// when an env var arrives (e.g. APP_SERVER_READ_TIMEOUT -> "server.read_timeout").
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		envKey := strings.ReplaceAll(key, ".", "_")
		lookup[envKey] = key
	}
	return lookup
}
