package service

import (
	"fmt"

	"github.com/MKhiriev/go-pickup-config/internal/assets"
	"github.com/MKhiriev/go-pickup-config/internal/config"
	"github.com/MKhiriev/go-pickup-config/internal/logger"
	"github.com/MKhiriev/go-pickup-config/internal/readiness"
	"github.com/MKhiriev/go-pickup-config/models"
)

type Services struct {
	AppInfoService   AppInfoService
	ConfigService    ConfigService
	ReadinessService ReadinessService
}

func NewServices(cfg config.AppConfig, build models.AppBuildInfo, manifest assets.Manifest, monitor *readiness.Monitor, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	configService, err := NewConfigService(cfg, manifest, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating config service: %w", err)
	}

	return &Services{
		AppInfoService:   appInfoService,
		ConfigService:    configService,
		ReadinessService: NewReadinessService(monitor),
	}, nil
}
