// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pickup-config/internal/adapter"
	"github.com/MKhiriev/go-pickup-config/internal/assets"
	"github.com/MKhiriev/go-pickup-config/internal/logger"
	"github.com/MKhiriev/go-pickup-config/internal/readiness"
	"github.com/MKhiriev/go-pickup-config/internal/store"
	"github.com/MKhiriev/go-pickup-config/internal/utils"
	"github.com/MKhiriev/go-pickup-config/models"
)

// Check names as they appear in reports and READINESS_DISABLED.
const (
	CheckBackend     = "backend"
	CheckSMS         = "sms"
	CheckDatabase    = "database"
	AssetCheckPrefix = "asset:"
)

// Dependencies are the collaborators probed by the readiness gate.
// Database is nil when no DSN is configured.
type Dependencies struct {
	Backend  adapter.BackendAdapter
	SMS      adapter.SMSAdapter
	Assets   adapter.AssetFetcher
	Database store.Pinger
}

// ReadinessChecks returns the checks for deps followed by one check per
// manifest asset.
func ReadinessChecks(deps Dependencies, manifest assets.Manifest, logger *logger.Logger) []readiness.Checker {
	checks := []readiness.Checker{
		BackendCheck(deps.Backend),
		SMSCheck(deps.SMS, logger),
	}
	if deps.Database != nil {
		checks = append(checks, DatabaseCheck(deps.Database))
	}
	for _, asset := range manifest.Assets {
		checks = append(checks, AssetCheck(asset, deps.Assets))
	}

	return checks
}

func BackendCheck(backend adapter.BackendAdapter) readiness.Checker {
	return readiness.NewCheck(CheckBackend, func(ctx context.Context) error {
		return classifyAdapterError(backend.Health(ctx))
	})
}

// SMSCheck fails on a rejected key. An exhausted quota is only logged: the
// provider is reachable and the key is valid.
func SMSCheck(sms adapter.SMSAdapter, logger *logger.Logger) readiness.Checker {
	return readiness.NewCheck(CheckSMS, func(ctx context.Context) error {
		status, err := sms.Probe(ctx)
		if err != nil {
			return classifyAdapterError(err)
		}

		if status.QuotaKnown && status.QuotaRemaining <= 0 {
			logger.Warn().Str("provider", status.Provider).Msg("sms quota exhausted")
		}
		return nil
	})
}

func DatabaseCheck(db store.Pinger) readiness.Checker {
	return readiness.NewCheck(CheckDatabase, func(ctx context.Context) error {
		err := db.Ping(ctx)
		if errors.Is(err, store.ErrConnectionRejected) {
			return readiness.Permanent(err)
		}
		return err
	})
}

// AssetCheck downloads the asset and, when the manifest pins an integrity
// hash, verifies the body against it.
func AssetCheck(asset models.Asset, fetcher adapter.AssetFetcher) readiness.Checker {
	return readiness.NewCheck(AssetCheckPrefix+asset.Name, func(ctx context.Context) error {
		body, err := fetcher.Fetch(ctx, asset.URL)
		if err != nil {
			return classifyAdapterError(err)
		}

		if asset.Integrity == "" {
			return nil
		}
		if err = utils.VerifyIntegrity(body, asset.Integrity); err != nil {
			return readiness.Permanent(fmt.Errorf("%s@%s: %w", asset.Name, asset.Version, err))
		}
		return nil
	})
}

// permanentAdapterErrors will not change by retrying within the gate.
var permanentAdapterErrors = []error{
	adapter.ErrBadRequest,
	adapter.ErrUnauthorized,
	adapter.ErrForbidden,
	adapter.ErrNotFound,
	adapter.ErrUnexpectedStatus,
	adapter.ErrKeyRejected,
}

func classifyAdapterError(err error) error {
	for _, target := range permanentAdapterErrors {
		if errors.Is(err, target) {
			return readiness.Permanent(err)
		}
	}
	return err
}
