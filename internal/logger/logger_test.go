package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "worker")

	l.Info().Msg("hello")

	entry := lastEntry(t, &buf)
	assert.Equal(t, "worker", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNewLogger_Fields")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	var buf bytes.Buffer
	l := newLogger(&buf, "server")

	require.NoError(t, SetLevel("warn"))
	l.Info().Msg("hidden")
	l.Warn().Msg("shown")
	assert.Equal(t, "shown", lastEntry(t, &buf)["message"])
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))

	assert.Error(t, SetLevel("loud"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestGetChildLogger_InheritsWithoutSharing(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "server")

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Logger = child.With().Str("scope", "child").Logger()
	child.Info().Msg("from child")
	entry := lastEntry(t, &buf)
	assert.Equal(t, "server", entry["role"])
	assert.Equal(t, "child", entry["scope"])

	parent.Info().Msg("from parent")
	assert.NotContains(t, lastEntry(t, &buf), "scope")
}

func TestFromContext(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()), "no logger attached")

	var buf bytes.Buffer
	ctx := zerolog.New(&buf).With().Str("trace_id", "abc").Logger().WithContext(context.Background())

	FromContext(ctx).Info().Msg("attached")
	assert.Equal(t, "abc", lastEntry(t, &buf)["trace_id"])

	req := httptest.NewRequest(http.MethodGet, "/api/sync", nil).WithContext(ctx)
	FromRequest(req).Info().Msg("from request")
	assert.Equal(t, "from request", lastEntry(t, &buf)["message"])
}

func TestWithTask_TagsLoggerAndContext(t *testing.T) {
	var buf bytes.Buffer
	base := &Logger{zerolog.New(&buf)}

	ctx, l := base.WithTask(context.Background(), "01J0TASK", 42)
	require.NotNil(t, l)

	FromContext(ctx).Info().Msg("applying")

	entry := lastEntry(t, &buf)
	assert.Equal(t, "01J0TASK", entry["task_id"])
	assert.Equal(t, float64(42), entry["db_owner_id"])
}
