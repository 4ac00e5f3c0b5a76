package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// validConfig returns a config that passes validation once defaults are applied.
func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "secret", TokenIssuer: "issuer"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/db"}, Snapshots: Snapshots{BaseDir: "/var/snapshots"}},
		Redis:   Redis{Address: "localhost:6379"},
		Queue:   Queue{LocalPath: "/var/queue.db"},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that an empty config fails validation
// because the database DSN has no default.
func TestBuild_EmptyBuilder(t *testing.T) {
	_, err := newConfigBuilder().build()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields keep earlier values.
func TestBuild_LaterSourceWins(t *testing.T) {
	later := &StructuredConfig{
		App:    App{TokenIssuer: "json-issuer"},
		Server: Server{HTTPAddress: "0.0.0.0:9000"},
	}

	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig(), later)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, SnapshotBackendFile, cfg.Storage.Snapshots.Backend)
	assert.Equal(t, QueueBackendLocal, cfg.Queue.Backend)
	assert.Equal(t, DefaultQueueLanes, cfg.Queue.Lanes)
	assert.Equal(t, 10*time.Minute, cfg.Workers.PendingTTL)
	assert.Equal(t, DefaultLockTTL, cfg.Workers.LockTTL)
	assert.NotEmpty(t, cfg.Storage.Snapshots.WorkDir)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(cfg *StructuredConfig) {}},
		{
			name:    "unknown snapshot backend",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Snapshots.Backend = "ftp" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "s3 without bucket",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Snapshots.Backend = SnapshotBackendS3
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "sqs without url",
			mutate:  func(cfg *StructuredConfig) { cfg.Queue.Backend = QueueBackendSQS },
			wantErr: ErrInvalidQueueConfigs,
		},
		{
			name:    "missing redis",
			mutate:  func(cfg *StructuredConfig) { cfg.Redis.Address = "" },
			wantErr: ErrInvalidRedisConfigs,
		},
		{
			name:    "missing token key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "pending ttl shorter than lock ttl",
			mutate: func(cfg *StructuredConfig) {
				cfg.Workers.LockTTL = time.Hour
			},
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "negative lock ttl",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.LockTTL = -time.Second },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name: "negative pending ttl",
			mutate: func(cfg *StructuredConfig) {
				cfg.Workers.LockTTL = -2 * time.Second
				cfg.Workers.PendingTTL = -time.Second
			},
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "negative push retries",
			mutate:  func(cfg *StructuredConfig) { cfg.Notify.Retries = -1 },
			wantErr: ErrInvalidNotifyConfigs,
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *StructuredConfig) { cfg.LogLevel = "loud" },
			wantErr: ErrInvalidLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			cfg.applyDefaults()

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")
	t.Setenv("QUEUE_BACKEND", "sqs")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
	assert.Equal(t, "sqs", b.configs[0].Queue.Backend)
}

func TestWithEnv_InvalidValueSetsError(t *testing.T) {
	t.Setenv("WORKERS_LOCK_TTL", "not-a-duration")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsConfig(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-d", "postgres://flags", "-workers"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "postgres://flags", b.configs[0].Storage.DB.DSN)
	assert.True(t, b.configs[0].Workers.Enabled)
}

func TestWithFlags_UnknownFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_SkippedWithoutPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{
			"db":        map[string]any{"dsn": "postgres://json"},
			"snapshots": map[string]any{"backend": "s3", "bucket": "snaps", "prefix": "users"},
		},
		"workers": map[string]any{"lock_ttl": "45s", "pending_ttl": "15m"},
		"notify":  map[string]any{"push_url": "http://push", "timeout": "2s"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	got := b.configs[1]
	assert.Equal(t, "postgres://json", got.Storage.DB.DSN)
	assert.Equal(t, "s3", got.Storage.Snapshots.Backend)
	assert.Equal(t, "snaps", got.Storage.Snapshots.Bucket)
	assert.Equal(t, "users", got.Storage.Snapshots.Prefix)
	assert.Equal(t, 45*time.Second, got.Workers.LockTTL)
	assert.Equal(t, 15*time.Minute, got.Workers.PendingTTL)
	assert.Equal(t, 2*time.Second, got.Notify.Timeout)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "number", input: `1000000000`, want: time.Second},
		{name: "bad string", input: `"soon"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
