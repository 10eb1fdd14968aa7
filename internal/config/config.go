// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"strings"
	"time"
)

// Supported deployment environments.
const (
	EnvDev     = "dev"
	EnvStaging = "staging"
	EnvProd    = "prod"
)

// Supported log levels.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// AppConfig is the configuration record of the pickup application. It is
// assembled once at startup by [GetAppConfig] and handed to consumers by
// value; nothing in the application mutates it afterwards.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type AppConfig struct {
	// App holds deployment-level settings (environment, version).
	App App `envPrefix:"APP_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// Backend holds the backend-as-a-service endpoint and its anonymous key.
	Backend Backend `envPrefix:"BACKEND_"`

	// SMS holds the SMS provider integration settings.
	SMS SMS `envPrefix:"SMS_"`

	// Server holds the listen address and timeouts of the HTTP surface.
	Server Server `envPrefix:"SERVER_"`

	// Readiness controls the startup dependency gate.
	Readiness Readiness `envPrefix:"READINESS_"`

	// Assets points at an optional front-end asset manifest override.
	Assets Assets `envPrefix:"ASSETS_"`

	// ConfigFile is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFile string `env:"CONFIG"`

	// EnvFile is the optional path to a dotenv file loaded before the
	// environment is parsed. Populated via ENV_FILE or -env-file.
	EnvFile string `env:"ENV_FILE"`
}

// App holds deployment-level settings.
type App struct {
	// Environment is one of dev, staging or prod.
	// Env: APP_ENV
	Environment string `env:"ENV"`

	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Log holds logger settings.
type Log struct {
	// Level is one of debug, info, warn or error.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Backend holds the connection settings of the backend-as-a-service.
type Backend struct {
	// URL is the network endpoint of the data backend
	// (e.g. "https://project.supabase.co").
	// Env: BACKEND_URL
	URL string `env:"URL"`

	// Key is the anonymous-tier access key of the backend.
	// Env: BACKEND_KEY
	Key string `env:"KEY"`

	// KeyFromFile receives the contents of the file named by
	// BACKEND_KEY_FILE. It is folded into Key when Key is empty.
	KeyFromFile string `env:"KEY_FILE,file"`

	// HealthPath is requested on URL to confirm the backend is reachable.
	// Env: BACKEND_HEALTH_PATH
	HealthPath string `env:"HEALTH_PATH"`

	// DatabaseDSN is an optional direct Postgres connection string of the
	// backend. When set, the database is pinged at startup.
	// Env: BACKEND_DATABASE_DSN
	DatabaseDSN string `env:"DATABASE_DSN"`
}

// SMS holds the settings of the SMS-sending integration.
type SMS struct {
	// Provider names the SMS provider (e.g. "textbelt").
	// Env: SMS_PROVIDER
	Provider string `env:"PROVIDER"`

	// Endpoint is the provider's HTTP API endpoint.
	// Env: SMS_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// Key is the shared-secret key passed to the provider.
	// Env: SMS_KEY
	Key string `env:"KEY"`

	// KeyFromFile receives the contents of the file named by SMS_KEY_FILE.
	KeyFromFile string `env:"KEY_FILE,file"`
}

// Server holds network and timeout settings of the HTTP surface.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form (e.g. ":8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Readiness controls the dependency checks run before the application
// starts serving.
type Readiness struct {
	// Timeout bounds the whole startup gate.
	// Env: READINESS_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// MaxRetries is the number of retries per check on retryable errors.
	// Env: READINESS_MAX_RETRIES
	MaxRetries uint64 `env:"MAX_RETRIES"`

	// RetryBackoff is the base delay of the exponential retry backoff.
	// Env: READINESS_RETRY_BACKOFF
	RetryBackoff time.Duration `env:"RETRY_BACKOFF"`

	// RefreshInterval is how often checks are re-run after startup.
	// Env: READINESS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`

	// Disabled is a comma separated list of check names to skip.
	// Env: READINESS_DISABLED
	Disabled string `env:"DISABLED"`
}

// DisabledChecks returns the set of check names listed in Disabled.
func (r Readiness) DisabledChecks() map[string]bool {
	disabled := make(map[string]bool)
	for _, name := range strings.Split(r.Disabled, ",") {
		if name = strings.TrimSpace(name); name != "" {
			disabled[name] = true
		}
	}
	return disabled
}

// Assets holds the front-end asset manifest settings.
type Assets struct {
	// ManifestPath overrides the embedded asset manifest.
	// Env: ASSETS_MANIFEST
	ManifestPath string `env:"MANIFEST"`
}

// GetAppConfig loads, merges and validates the application configuration
// from all available sources, in increasing priority:
//  1. built-in defaults for ambient settings
//  2. JSON or YAML config file (path resolved from flags and environment)
//  3. environment variables, optionally seeded from a dotenv file
//  4. command-line flags
//
// It returns an error naming every missing or invalid field; callers are
// expected to abort startup on error.
func GetAppConfig() (AppConfig, error) {
	return Load(os.Args[1:])
}

// Load is [GetAppConfig] with explicit command-line arguments.
func Load(args []string) (AppConfig, error) {
	cfg, err := newConfigBuilder(args).
		withFlags().
		withDotEnv().
		withEnv().
		withFile().
		build()
	if err != nil {
		return AppConfig{}, err
	}

	return *cfg, nil
}
