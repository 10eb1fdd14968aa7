package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a config that passes validation.
func validConfig(t *testing.T) *AppConfig {
	t.Helper()
	cfg := defaultConfig()
	cfg.Backend.URL = testBackendURL
	cfg.Backend.Key = anonKey(t)
	cfg.SMS = SMS{Provider: "textbelt", Endpoint: testSMSEndpoint, Key: "sms-secret"}
	return cfg
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig(t).validate())
}

func TestValidate_MissingField_NamesField(t *testing.T) {
	tests := []struct {
		field string
		clear func(cfg *AppConfig)
	}{
		{"BACKEND_URL", func(cfg *AppConfig) { cfg.Backend.URL = "" }},
		{"BACKEND_KEY", func(cfg *AppConfig) { cfg.Backend.Key = "" }},
		{"SMS_PROVIDER", func(cfg *AppConfig) { cfg.SMS.Provider = "" }},
		{"SMS_ENDPOINT", func(cfg *AppConfig) { cfg.SMS.Endpoint = "" }},
		{"SMS_KEY", func(cfg *AppConfig) { cfg.SMS.Key = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			cfg := validConfig(t)
			tt.clear(cfg)

			err := cfg.validate()

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.field+": cannot be blank")
			assert.Equal(t, []string{tt.field}, MissingFields(err))
		})
	}
}

func TestValidate_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		mutate  func(t *testing.T, cfg *AppConfig)
		message string
	}{
		{
			name:    "backend url without scheme",
			field:   "BACKEND_URL",
			mutate:  func(_ *testing.T, cfg *AppConfig) { cfg.Backend.URL = "abcdefghijklmnop.supabase.co" },
			message: "URL must use http or https scheme",
		},
		{
			name:    "sms endpoint with ftp scheme",
			field:   "SMS_ENDPOINT",
			mutate:  func(_ *testing.T, cfg *AppConfig) { cfg.SMS.Endpoint = "ftp://textbelt.com/text" },
			message: "URL must use http or https scheme",
		},
		{
			name:  "service role key",
			field: "BACKEND_KEY",
			mutate: func(t *testing.T, cfg *AppConfig) {
				cfg.Backend.Key = signKey(t, "service_role", testProjectRef, time.Now().Add(time.Hour))
			},
			message: "must be an anonymous-tier key",
		},
		{
			name:  "expired key",
			field: "BACKEND_KEY",
			mutate: func(t *testing.T, cfg *AppConfig) {
				cfg.Backend.Key = signKey(t, "anon", testProjectRef, time.Now().Add(-time.Hour))
			},
			message: "key has expired",
		},
		{
			name:  "key for another project",
			field: "BACKEND_KEY",
			mutate: func(t *testing.T, cfg *AppConfig) {
				cfg.Backend.Key = signKey(t, "anon", "otherproject", time.Now().Add(time.Hour))
			},
			message: "key was issued for a different project",
		},
		{
			name:    "malformed jwt",
			field:   "BACKEND_KEY",
			mutate:  func(_ *testing.T, cfg *AppConfig) { cfg.Backend.Key = "not.a.jwt" },
			message: "must be a well-formed token",
		},
		{
			name:  "demo sms key in production",
			field: "SMS_KEY",
			mutate: func(_ *testing.T, cfg *AppConfig) {
				cfg.App.Environment = EnvProd
				cfg.SMS.Key = DemoSMSKey
			},
			message: "must not be the public demo key in production",
		},
		{
			name:    "unknown environment",
			field:   "APP_ENV",
			mutate:  func(_ *testing.T, cfg *AppConfig) { cfg.App.Environment = "qa" },
			message: "must be a valid value",
		},
		{
			name:    "unknown log level",
			field:   "LOG_LEVEL",
			mutate:  func(_ *testing.T, cfg *AppConfig) { cfg.Log.Level = "verbose" },
			message: "must be a valid value",
		},
		{
			name:    "bad listen address",
			field:   "SERVER_ADDRESS",
			mutate:  func(_ *testing.T, cfg *AppConfig) { cfg.Server.HTTPAddress = "8080" },
			message: "must be in host:port format",
		},
		{
			name:    "negative timeout",
			field:   "READINESS_TIMEOUT",
			mutate:  func(_ *testing.T, cfg *AppConfig) { cfg.Readiness.Timeout = -time.Second },
			message: "must be no less than",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(t, cfg)

			err := cfg.validate()

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.field+": "+tt.message)
			assert.Empty(t, MissingFields(err))
		})
	}
}

func TestValidate_DemoSMSKeyOutsideProduction(t *testing.T) {
	cfg := validConfig(t)
	cfg.SMS.Key = DemoSMSKey

	require.NoError(t, cfg.validate())
	assert.Len(t, cfg.Warnings(), 1)
}

func TestValidate_OpaqueBackendKeyAccepted(t *testing.T) {
	cfg := validConfig(t)
	cfg.Backend.Key = "sb_publishable_abc123"

	assert.NoError(t, cfg.validate())
}

func TestWarnings_PlainHTTPBackendInProduction(t *testing.T) {
	cfg := validConfig(t)
	cfg.App.Environment = EnvProd
	cfg.Backend.URL = "http://abcdefghijklmnop.supabase.co"

	assert.Equal(t, []string{"BACKEND_URL uses plain http in production"}, cfg.Warnings())
}

func TestWarnings_NoneForCleanConfig(t *testing.T) {
	assert.Empty(t, validConfig(t).Warnings())
}

func TestMissingFields_NonValidationError(t *testing.T) {
	assert.Nil(t, MissingFields(assert.AnError))
	assert.Nil(t, MissingFields(nil))
}
