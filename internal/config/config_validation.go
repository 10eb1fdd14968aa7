// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"sort"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/MKhiriev/go-pickup-config/internal/utils"
)

// DemoSMSKey is the publicly known test key of the textbelt provider. It
// sends at most one message per day and is refused in production.
const DemoSMSKey = "textbelt"

// validate checks that the merged [AppConfig] satisfies all invariants
// before it is used at startup. Every failing field is reported under the
// name of its environment variable.
//
// Returns nil if the configuration is valid, or [ErrInvalidConfig] wrapping
// a validation.Errors map otherwise.
func (cfg *AppConfig) validate() error {
	errs := validation.Errors{
		"BACKEND_URL": validation.Validate(cfg.Backend.URL,
			validation.Required, validation.By(validateHTTPURL)),
		"BACKEND_KEY": validation.Validate(cfg.Backend.Key,
			validation.Required, validation.By(cfg.validateBackendKey)),
		"SMS_PROVIDER": validation.Validate(cfg.SMS.Provider,
			validation.Required),
		"SMS_ENDPOINT": validation.Validate(cfg.SMS.Endpoint,
			validation.Required, validation.By(validateHTTPURL)),
		"SMS_KEY": validation.Validate(cfg.SMS.Key,
			validation.Required, validation.By(cfg.validateSMSKey)),

		"APP_ENV": validation.Validate(cfg.App.Environment,
			validation.Required, validation.In(EnvDev, EnvStaging, EnvProd)),
		"LOG_LEVEL": validation.Validate(cfg.Log.Level,
			validation.Required, validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError)),
		"SERVER_ADDRESS": validation.Validate(cfg.Server.HTTPAddress,
			validation.Required, validation.By(validateHostPort)),
		"SERVER_REQUEST_TIMEOUT": validation.Validate(cfg.Server.RequestTimeout,
			validation.Required, validation.Min(time.Millisecond)),
		"READINESS_TIMEOUT": validation.Validate(cfg.Readiness.Timeout,
			validation.Required, validation.Min(time.Millisecond)),
		"READINESS_RETRY_BACKOFF": validation.Validate(cfg.Readiness.RetryBackoff,
			validation.Required, validation.Min(time.Millisecond)),
		"READINESS_REFRESH_INTERVAL": validation.Validate(cfg.Readiness.RefreshInterval,
			validation.Required, validation.Min(time.Second)),
	}

	if err := errs.Filter(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// MissingFields returns the sorted environment variable names of the fields
// that were blank when err was produced by [GetAppConfig]. It returns nil if
// err carries no validation errors.
func MissingFields(err error) []string {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return nil
	}

	var missing []string
	for field, fieldErr := range errs {
		var vErr validation.Error
		if errors.As(fieldErr, &vErr) && vErr.Code() == validation.ErrRequired.Code() {
			missing = append(missing, field)
		}
	}
	sort.Strings(missing)

	return missing
}

// Warnings returns non-fatal configuration findings that should be logged
// at startup.
func (cfg AppConfig) Warnings() []string {
	var warnings []string
	if cfg.SMS.Key == DemoSMSKey {
		warnings = append(warnings, "SMS_KEY is the public demo key; delivery is limited to one message per day")
	}
	if cfg.Backend.URL != "" {
		if u, err := url.Parse(cfg.Backend.URL); err == nil && u.Scheme == "http" && cfg.App.Environment == EnvProd {
			warnings = append(warnings, "BACKEND_URL uses plain http in production")
		}
	}
	return warnings
}

func (cfg *AppConfig) validateBackendKey(value interface{}) error {
	key, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	if !utils.LooksLikeJWT(key) {
		return nil
	}

	claims, err := utils.ParseBackendKey(key)
	if err != nil {
		return validation.NewError("validation_malformed_key", "must be a well-formed token")
	}

	if claims.Role != utils.AnonRole {
		return validation.NewError("validation_key_not_anonymous", "must be an anonymous-tier key")
	}

	if claims.Expired(time.Now()) {
		return validation.NewError("validation_key_expired", "key has expired")
	}

	if !claims.MatchesURL(cfg.Backend.URL) {
		return validation.NewError("validation_key_url_mismatch", "key was issued for a different project than BACKEND_URL")
	}

	return nil
}

func (cfg *AppConfig) validateSMSKey(value interface{}) error {
	key, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	if key == DemoSMSKey && cfg.App.Environment == EnvProd {
		return validation.NewError("validation_demo_key", "must not be the public demo key in production")
	}

	return nil
}

func validateHTTPURL(value interface{}) error {
	rawURL, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	if rawURL == "" {
		return nil
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return validation.NewError("validation_invalid_url", "must be a valid URL")
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return validation.NewError("validation_invalid_scheme", "URL must use http or https scheme")
	}

	if parsedURL.Host == "" {
		return validation.NewError("validation_missing_host", "URL must have a host")
	}

	return nil
}

func validateHostPort(value interface{}) error {
	addr, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	if addr == "" {
		return nil
	}

	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return validation.NewError("validation_invalid_hostport", "must be in host:port format")
	}

	if port == "" {
		return validation.NewError("validation_invalid_port", "port cannot be empty")
	}

	return nil
}
