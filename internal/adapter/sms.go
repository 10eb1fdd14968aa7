package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-pickup-config/internal/config"
	"github.com/MKhiriev/go-pickup-config/internal/logger"
	"github.com/MKhiriev/go-pickup-config/internal/utils"
)

// ProviderTextbelt is the provider name of textbelt.com and self-hosted
// textbelt servers.
const ProviderTextbelt = "textbelt"

type smsAdapter struct {
	client *utils.HTTPClient

	provider string
	endpoint string
	key      string

	logger *logger.Logger
}

type textbeltQuota struct {
	Success        bool   `json:"success"`
	QuotaRemaining int    `json:"quotaRemaining"`
	Error          string `json:"error"`
}

// NewSMSAdapter constructs an HTTP implementation of [SMSAdapter].
//
// Returns an error if cfg.Endpoint cannot be parsed as a valid URL.
func NewSMSAdapter(cfg config.SMS, timeout time.Duration, logger *logger.Logger) (SMSAdapter, error) {
	endpoint, err := normalizeBaseURL(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid sms endpoint: %w", err)
	}

	return &smsAdapter{
		client:   utils.NewHTTPClient(timeout),
		provider: cfg.Provider,
		endpoint: endpoint,
		key:      cfg.Key,
		logger:   logger,
	}, nil
}

// Probe implements [SMSAdapter]. Textbelt exposes a quota endpoint that
// validates the key without sending anything; other providers only get a
// reachability check.
func (s *smsAdapter) Probe(ctx context.Context) (SMSStatus, error) {
	if strings.EqualFold(s.provider, ProviderTextbelt) {
		return s.probeTextbelt(ctx)
	}

	return s.probeEndpoint(ctx)
}

func (s *smsAdapter) probeTextbelt(ctx context.Context) (SMSStatus, error) {
	origin, err := originOf(s.endpoint)
	if err != nil {
		return SMSStatus{}, fmt.Errorf("invalid sms endpoint: %w", err)
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetPathParam("key", s.key).
		Get(origin + "/quota/{key}")
	if err != nil {
		return SMSStatus{}, mapTransportError("sms quota request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return SMSStatus{}, fmt.Errorf("sms quota: %w", err)
	}

	var quota textbeltQuota
	if err = json.Unmarshal(resp.Body(), &quota); err != nil {
		return SMSStatus{}, fmt.Errorf("decode sms quota response: %w", err)
	}

	if !quota.Success {
		reason := quota.Error
		if reason == "" {
			reason = "provider returned success=false"
		}
		return SMSStatus{}, fmt.Errorf("%w: %s", ErrKeyRejected, reason)
	}

	s.logger.Debug().
		Str("func", "smsAdapter.probeTextbelt").
		Int("quota_remaining", quota.QuotaRemaining).
		Msg("sms provider accepted key")

	return SMSStatus{
		Provider:       s.provider,
		QuotaKnown:     true,
		QuotaRemaining: quota.QuotaRemaining,
	}, nil
}

func (s *smsAdapter) probeEndpoint(ctx context.Context) (SMSStatus, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		Head(s.endpoint)
	if err != nil {
		return SMSStatus{}, mapTransportError("sms endpoint request", err)
	}

	// any answer below 500 proves the endpoint is served
	if resp.StatusCode() >= http.StatusInternalServerError {
		return SMSStatus{}, fmt.Errorf("sms endpoint: %w", mapHTTPError(resp))
	}

	return SMSStatus{Provider: s.provider}, nil
}
