// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides initialised clients for the external
// collaborators of the pickup application: the backend-as-a-service, the
// SMS provider and the CDN serving front-end assets.
//
// Adapters only probe their collaborators. No backend data is read or
// written and no message is ever sent.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] to tell rejected
// credentials ([ErrUnauthorized], [ErrForbidden]) from transient failures
// ([ErrUpstream], [ErrUnreachable]).
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// BackendAdapter talks to the backend-as-a-service with the anonymous key.
type BackendAdapter interface {
	// Health requests the configured health path. Returns nil on 2xx.
	Health(ctx context.Context) error
}

// SMSAdapter talks to the SMS provider.
type SMSAdapter interface {
	// Probe confirms the provider is reachable and, where the provider
	// supports it, that the key is accepted. It never sends a message.
	Probe(ctx context.Context) (SMSStatus, error)
}

// AssetFetcher downloads front-end assets.
type AssetFetcher interface {
	// Fetch GETs url and returns the body of a 2xx response.
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// SMSStatus is what a probe learned about the SMS account.
type SMSStatus struct {
	Provider string

	// QuotaKnown reports whether the provider exposed a quota.
	QuotaKnown     bool
	QuotaRemaining int
}
