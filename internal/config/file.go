package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of a JSON or YAML config file.
type fileConfig struct {
	App struct {
		Environment string `json:"environment" yaml:"environment"`
		Version     string `json:"version" yaml:"version"`
	} `json:"app" yaml:"app"`

	Log struct {
		Level string `json:"level" yaml:"level"`
	} `json:"log" yaml:"log"`

	Backend struct {
		URL         string `json:"url" yaml:"url"`
		Key         string `json:"key" yaml:"key"`
		HealthPath  string `json:"health_path" yaml:"health_path"`
		DatabaseDSN string `json:"database_dsn" yaml:"database_dsn"`
	} `json:"backend" yaml:"backend"`

	SMS struct {
		Provider string `json:"provider" yaml:"provider"`
		Endpoint string `json:"endpoint" yaml:"endpoint"`
		Key      string `json:"key" yaml:"key"`
	} `json:"sms" yaml:"sms"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server" yaml:"server"`

	Readiness struct {
		Timeout         Duration `json:"timeout" yaml:"timeout"`
		MaxRetries      uint64   `json:"max_retries" yaml:"max_retries"`
		RetryBackoff    Duration `json:"retry_backoff" yaml:"retry_backoff"`
		RefreshInterval Duration `json:"refresh_interval" yaml:"refresh_interval"`
		Disabled        []string `json:"disabled" yaml:"disabled"`
	} `json:"readiness" yaml:"readiness"`

	Assets struct {
		ManifestPath string `json:"manifest" yaml:"manifest"`
	} `json:"assets" yaml:"assets"`
}

func parseFile(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &fileCfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fileCfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	cfg := &AppConfig{
		App: App{
			Environment: fileCfg.App.Environment,
			Version:     fileCfg.App.Version,
		},
		Log: Log{Level: fileCfg.Log.Level},
		Backend: Backend{
			URL:         fileCfg.Backend.URL,
			Key:         fileCfg.Backend.Key,
			HealthPath:  fileCfg.Backend.HealthPath,
			DatabaseDSN: fileCfg.Backend.DatabaseDSN,
		},
		SMS: SMS{
			Provider: fileCfg.SMS.Provider,
			Endpoint: fileCfg.SMS.Endpoint,
			Key:      fileCfg.SMS.Key,
		},
		Server: Server{
			HTTPAddress:    fileCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(fileCfg.Server.RequestTimeout),
		},
		Readiness: Readiness{
			Timeout:         time.Duration(fileCfg.Readiness.Timeout),
			MaxRetries:      fileCfg.Readiness.MaxRetries,
			RetryBackoff:    time.Duration(fileCfg.Readiness.RetryBackoff),
			RefreshInterval: time.Duration(fileCfg.Readiness.RefreshInterval),
			Disabled:        strings.Join(fileCfg.Readiness.Disabled, ","),
		},
		Assets: Assets{ManifestPath: fileCfg.Assets.ManifestPath},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON and YAML
// unmarshaling from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	tmp, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", node.Value, err)
	}

	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
