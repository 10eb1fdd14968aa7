// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PublicConfig is the browser-facing subset of the application config.
//
// The backend key is the anonymous-tier key and is meant to be used by
// clients. The SMS endpoint and key are deliberately absent: SMS delivery
// stays server side.
type PublicConfig struct {
	BackendURL  string    `json:"backendUrl"`
	BackendKey  string    `json:"backendKey"`
	SMS         PublicSMS `json:"sms"`
	Environment string    `json:"environment"`
	Assets      []Asset   `json:"assets"`
}

// PublicSMS exposes only which SMS provider is configured.
type PublicSMS struct {
	Provider string `json:"provider"`
}
