package service

import (
	"context"

	"github.com/MKhiriev/go-pickup-config/models"
)

// AppInfoService reports the deployed version and the build that serves it.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppInfo
}

// ConfigService serves the browser-facing view of the application config.
type ConfigService interface {
	PublicConfig(ctx context.Context) models.PublicConfig
}

// ReadinessService exposes the latest dependency readiness report.
type ReadinessService interface {
	Report(ctx context.Context) models.ReadinessReport
}
