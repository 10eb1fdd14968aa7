package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dario.cat/mergo"
)

type configBuilder struct {
	args []string

	file  *AppConfig
	env   *AppConfig
	flags *AppConfig

	err error
}

func newConfigBuilder(args []string) *configBuilder {
	return &configBuilder{args: args}
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		App: App{
			Environment: EnvDev,
			Version:     "dev",
		},
		Log: Log{Level: LogLevelInfo},
		Backend: Backend{
			HealthPath: "/auth/v1/health",
		},
		Server: Server{
			HTTPAddress:    ":8080",
			RequestTimeout: 15 * time.Second,
		},
		Readiness: Readiness{
			Timeout:         20 * time.Second,
			MaxRetries:      3,
			RetryBackoff:    500 * time.Millisecond,
			RefreshInterval: time.Minute,
		},
	}
}

func (b *configBuilder) build() (*AppConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := defaultConfig()
	for _, layer := range []*AppConfig{b.file, b.env, b.flags} {
		if layer == nil {
			continue
		}
		if err := mergo.Merge(config, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	config.resolveSecrets()
	config.trimRequired()

	return config, config.validate()
}

// resolveSecrets folds file-provided secrets into their fields. An explicit
// value always wins over a file.
func (cfg *AppConfig) resolveSecrets() {
	if cfg.Backend.Key == "" {
		cfg.Backend.Key = strings.TrimSpace(cfg.Backend.KeyFromFile)
	}
	if cfg.SMS.Key == "" {
		cfg.SMS.Key = strings.TrimSpace(cfg.SMS.KeyFromFile)
	}
	cfg.Backend.KeyFromFile = ""
	cfg.SMS.KeyFromFile = ""
}

// trimRequired strips surrounding whitespace from the required fields, so
// a whitespace-only value is reported as missing instead of being used.
func (cfg *AppConfig) trimRequired() {
	for _, field := range []*string{
		&cfg.Backend.URL,
		&cfg.Backend.Key,
		&cfg.SMS.Provider,
		&cfg.SMS.Endpoint,
		&cfg.SMS.Key,
	} {
		*field = strings.TrimSpace(*field)
	}
}

func (b *configBuilder) withFlags() *configBuilder {
	flagsCfg, err := parseFlags(b.args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.flags = flagsCfg
	return b
}

func (b *configBuilder) withDotEnv() *configBuilder {
	path := lookupEnvFile(b.flags)
	if path == "" {
		return b
	}

	if err := loadDotEnv(path); err != nil {
		b.err = errors.Join(b.err, err)
	}

	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &AppConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.env = envCfg
	return b
}

func (b *configBuilder) withFile() *configBuilder {
	var path string
	for _, cfg := range []*AppConfig{b.env, b.flags} {
		if cfg != nil && cfg.ConfigFile != "" {
			path = cfg.ConfigFile
		}
	}

	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.file = fileCfg
	return b
}
