package service

import (
	"context"
	"sort"
	"time"

	"github.com/MKhiriev/go-db-journal/internal/logger"
	"github.com/MKhiriev/go-db-journal/models"
)

const healthTimeout = 2 * time.Second

type healthService struct {
	backends map[string]Pinger

	logger *logger.Logger
}

// NewHealthService probes every named backend on each Check.
func NewHealthService(backends map[string]Pinger, logger *logger.Logger) HealthService {
	return &healthService{backends: backends, logger: logger}
}

// Check implements HealthService. The boolean is false when any backend
// failed its probe.
func (h *healthService) Check(ctx context.Context) (models.HealthStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	names := make([]string, 0, len(h.backends))
	for name := range h.backends {
		names = append(names, name)
	}
	sort.Strings(names)

	status := models.HealthStatus{Status: "ok", Backends: make(map[string]string, len(names))}
	healthy := true
	for _, name := range names {
		if err := h.backends[name].Ping(ctx); err != nil {
			logger.FromContext(ctx).Warn().Err(err).Str("func", "healthService.Check").Str("backend", name).
				Msg("backend unreachable")
			status.Backends[name] = "unavailable"
			healthy = false
			continue
		}
		status.Backends[name] = "ok"
	}
	if !healthy {
		status.Status = "degraded"
	}
	return status, healthy
}

// PingFunc adapts a function to [Pinger].
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }
