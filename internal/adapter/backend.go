package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pickup-config/internal/config"
	"github.com/MKhiriev/go-pickup-config/internal/logger"
	"github.com/MKhiriev/go-pickup-config/internal/utils"
)

type backendAdapter struct {
	client     *utils.HTTPClient
	healthPath string

	logger *logger.Logger
}

// NewBackendAdapter constructs an HTTP implementation of [BackendAdapter].
// Every request carries the anonymous key both as the "apikey" header and as
// a bearer token, the way hosted backends expect it.
//
// Returns an error if cfg.URL cannot be parsed as a valid URL.
func NewBackendAdapter(cfg config.Backend, timeout time.Duration, logger *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend url: %w", err)
	}

	client := utils.NewHTTPClient(timeout)
	client.
		SetBaseURL(baseURL).
		SetHeader("apikey", cfg.Key).
		SetAuthToken(cfg.Key)

	healthPath := cfg.HealthPath
	if healthPath == "" {
		healthPath = "/"
	}

	return &backendAdapter{client: client, healthPath: healthPath, logger: logger}, nil
}

// Health implements [BackendAdapter].
func (b *backendAdapter) Health(ctx context.Context) error {
	resp, err := b.client.R().
		SetContext(ctx).
		Get(b.healthPath)
	if err != nil {
		return mapTransportError("backend health request", err)
	}

	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("backend health: %w", err)
	}

	b.logger.Debug().
		Str("func", "backendAdapter.Health").
		Int("status", resp.StatusCode()).
		Dur("latency", resp.Time()).
		Msg("backend is healthy")

	return nil
}
