package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pickup-config/internal/logger"
	"github.com/MKhiriev/go-pickup-config/internal/utils"
)

type assetFetcher struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewAssetFetcher constructs an HTTP implementation of [AssetFetcher].
func NewAssetFetcher(timeout time.Duration, logger *logger.Logger) AssetFetcher {
	return &assetFetcher{client: utils.NewHTTPClient(timeout), logger: logger}
}

// Fetch implements [AssetFetcher].
func (a *assetFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, mapTransportError("asset request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("asset %s: %w", url, err)
	}

	a.logger.Debug().
		Str("func", "assetFetcher.Fetch").
		Str("url", url).
		Int("size", len(resp.Body())).
		Msg("asset fetched")

	return resp.Body(), nil
}
