package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-db-journal/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestHealthService_Check(t *testing.T) {
	ok := PingFunc(func(context.Context) error { return nil })
	down := PingFunc(func(context.Context) error { return errors.New("connection refused") })

	tests := []struct {
		name     string
		backends map[string]Pinger
		healthy  bool
		status   string
		want     map[string]string
	}{
		{
			name:     "all reachable",
			backends: map[string]Pinger{"postgres": ok, "redis": ok},
			healthy:  true,
			status:   "ok",
			want:     map[string]string{"postgres": "ok", "redis": "ok"},
		},
		{
			name:     "one unreachable",
			backends: map[string]Pinger{"postgres": ok, "redis": down},
			healthy:  false,
			status:   "degraded",
			want:     map[string]string{"postgres": "ok", "redis": "unavailable"},
		},
		{
			name:    "no backends",
			healthy: true,
			status:  "ok",
			want:    map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, healthy := NewHealthService(tt.backends, logger.Nop()).Check(testContext())
			assert.Equal(t, tt.healthy, healthy)
			assert.Equal(t, tt.status, got.Status)
			assert.Equal(t, tt.want, got.Backends)
		})
	}
}

func TestHealthService_Check_Deadline(t *testing.T) {
	var hasDeadline bool
	probe := PingFunc(func(ctx context.Context) error {
		_, hasDeadline = ctx.Deadline()
		return nil
	})

	NewHealthService(map[string]Pinger{"s3": probe}, logger.Nop()).Check(testContext())
	assert.True(t, hasDeadline)
}
