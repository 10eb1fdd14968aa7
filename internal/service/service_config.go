// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-pickup-config/internal/assets"
	"github.com/MKhiriev/go-pickup-config/internal/config"
	"github.com/MKhiriev/go-pickup-config/internal/logger"
	"github.com/MKhiriev/go-pickup-config/models"
)

type configService struct {
	public models.PublicConfig

	logger *logger.Logger
}

// NewConfigService builds the public view once. Only the backend URL, the
// anonymous backend key, the SMS provider name and the asset list are
// copied; the SMS endpoint and key never leave the server.
func NewConfigService(cfg config.AppConfig, manifest assets.Manifest, logger *logger.Logger) (ConfigService, error) {
	if cfg.Backend.URL == "" {
		return nil, ErrBackendURLIsNotSpecified
	}

	return &configService{
		public: models.PublicConfig{
			BackendURL:  cfg.Backend.URL,
			BackendKey:  cfg.Backend.Key,
			SMS:         models.PublicSMS{Provider: cfg.SMS.Provider},
			Environment: cfg.App.Environment,
			Assets:      slices.Clone(manifest.Assets),
		},
		logger: logger,
	}, nil
}

// PublicConfig returns a copy; callers may modify it freely.
func (s *configService) PublicConfig(ctx context.Context) models.PublicConfig {
	public := s.public
	public.Assets = slices.Clone(s.public.Assets)
	return public
}
