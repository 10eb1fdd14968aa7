package service

import (
	"context"

	"github.com/MKhiriev/go-pickup-config/internal/readiness"
	"github.com/MKhiriev/go-pickup-config/models"
)

type readinessService struct {
	monitor *readiness.Monitor
}

func NewReadinessService(monitor *readiness.Monitor) ReadinessService {
	return &readinessService{monitor: monitor}
}

func (s *readinessService) Report(ctx context.Context) models.ReadinessReport {
	return s.monitor.Report()
}
