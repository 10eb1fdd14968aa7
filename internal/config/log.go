package config

import "github.com/rs/zerolog"

const redacted = "[REDACTED]"

// MarshalZerologObject implements zerolog.LogObjectMarshaler. Credentials
// are replaced with a marker so the config can be logged safely.
func (cfg AppConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Dict("app", zerolog.Dict().
		Str("environment", cfg.App.Environment).
		Str("version", cfg.App.Version))
	e.Str("log_level", cfg.Log.Level)
	e.Dict("backend", zerolog.Dict().
		Str("url", cfg.Backend.URL).
		Str("key", redact(cfg.Backend.Key)).
		Str("health_path", cfg.Backend.HealthPath).
		Str("database_dsn", redact(cfg.Backend.DatabaseDSN)))
	e.Dict("sms", zerolog.Dict().
		Str("provider", cfg.SMS.Provider).
		Str("endpoint", cfg.SMS.Endpoint).
		Str("key", redact(cfg.SMS.Key)))
	e.Dict("server", zerolog.Dict().
		Str("http_address", cfg.Server.HTTPAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout))
	e.Dict("readiness", zerolog.Dict().
		Dur("timeout", cfg.Readiness.Timeout).
		Uint64("max_retries", cfg.Readiness.MaxRetries).
		Dur("retry_backoff", cfg.Readiness.RetryBackoff).
		Dur("refresh_interval", cfg.Readiness.RefreshInterval).
		Str("disabled", cfg.Readiness.Disabled))
	e.Str("assets_manifest", cfg.Assets.ManifestPath)
	e.Str("config_file", cfg.ConfigFile)
}

func redact(secret string) string {
	if secret == "" {
		return ""
	}
	return redacted
}
