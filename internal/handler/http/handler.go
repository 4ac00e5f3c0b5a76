package http

import (
	"net/http"

	"github.com/MKhiriev/go-db-journal/internal/config"
	"github.com/MKhiriev/go-db-journal/internal/logger"
	"github.com/MKhiriev/go-db-journal/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  http.Handler

	tokenSignKey string
	tokenIssuer  string

	logger *logger.Logger
}

// NewHandler builds the REST handler. metrics may be nil, in which case
// /metrics is not routed.
func NewHandler(services *service.Services, app config.App, metrics http.Handler, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		metrics:      metrics,
		tokenSignKey: app.TokenSignKey,
		tokenIssuer:  app.TokenIssuer,
		logger:       logger,
	}
}
