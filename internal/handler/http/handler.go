package http

import (
	"time"

	"github.com/MKhiriev/go-pickup-config/internal/logger"
	"github.com/MKhiriev/go-pickup-config/internal/service"
	"github.com/MKhiriev/go-pickup-config/internal/utils"
)

type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	ids            *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: requestTimeout,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}
