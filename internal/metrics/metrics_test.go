package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.EntriesPublished.Add(3)
	m.EntriesProcessed.WithLabelValues(ResultApplied).Inc()
	m.EntriesProcessed.WithLabelValues(ResultRetried).Inc()
	m.EntriesProcessed.WithLabelValues(ResultApplied).Inc()

	assert.Equal(t, 3.0, testutil.ToFloat64(m.EntriesPublished))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.EntriesProcessed.WithLabelValues(ResultApplied)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EntriesProcessed.WithLabelValues(ResultRetried)))
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.EntriesPublished.Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.EntriesPublished))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.EntriesPublished))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	ObserveSince(m.ApplyDuration, time.Now().Add(-time.Second))
	m.Notifications.WithLabelValues(NotificationSent).Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "dbjournal_apply_duration_seconds_count 1")
	assert.Contains(t, body, `dbjournal_notifications_total{result="sent"} 1`)
	assert.Contains(t, body, "go_goroutines")
}
