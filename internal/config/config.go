// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-db-journal binaries. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token validation settings for API callers.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the transactional database and the
	// per-user snapshot storage.
	Storage Storage `envPrefix:"STORAGE_"`

	// Redis holds the connection settings of the shared key-value store that
	// hosts pending-work sets and snapshot locks.
	Redis Redis `envPrefix:"REDIS_"`

	// Queue selects and configures the journal entry transport.
	Queue Queue `envPrefix:"QUEUE_"`

	// Workers holds configuration for the journal apply runtime.
	Workers Workers `envPrefix:"WORKERS_"`

	// Notify holds the push gateway settings.
	Notify Notify `envPrefix:"NOTIFY_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	LogLevel string `env:"LOG_LEVEL"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control request
// authentication.
type App struct {
	// TokenSignKey is the secret key used to verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of every accepted JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Snapshots holds the per-user snapshot backend settings.
	Snapshots Snapshots `envPrefix:"SNAPSHOTS_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Snapshot backend kinds accepted by [Snapshots.Backend].
const (
	SnapshotBackendFile = "file"
	SnapshotBackendS3   = "s3"
)

// Snapshots configures where per-user snapshot files live.
type Snapshots struct {
	// Backend is either "file" or "s3".
	// Env: STORAGE_SNAPSHOTS_BACKEND
	Backend string `env:"BACKEND"`

	// BaseDir is the root directory of the file backend.
	// Env: STORAGE_SNAPSHOTS_BASE_DIR
	BaseDir string `env:"BASE_DIR"`

	// Prefix is prepended to every object key of the s3 backend.
	// Env: STORAGE_SNAPSHOTS_PREFIX
	Prefix string `env:"PREFIX"`

	// Bucket is the s3 bucket name.
	// Env: STORAGE_SNAPSHOTS_BUCKET
	Bucket string `env:"BUCKET"`

	// Region is the s3 region.
	// Env: STORAGE_SNAPSHOTS_REGION
	Region string `env:"REGION"`

	// Endpoint overrides the s3 endpoint (minio, localstack).
	// Env: STORAGE_SNAPSHOTS_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// WorkDir is where snapshot working copies are opened. Defaults to the
	// system temp dir.
	// Env: STORAGE_SNAPSHOTS_WORK_DIR
	WorkDir string `env:"WORK_DIR"`
}

// Redis holds connection settings for the shared key-value store.
type Redis struct {
	// Env: REDIS_ADDRESS
	Address string `env:"ADDRESS"`
	// Env: REDIS_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: REDIS_DB
	DB int `env:"DB"`
}

// Queue backend kinds accepted by [Queue.Backend].
const (
	QueueBackendSQS   = "sqs"
	QueueBackendLocal = "local"
)

// Queue selects the journal entry transport.
type Queue struct {
	// Backend is either "sqs" or "local".
	// Env: QUEUE_BACKEND
	Backend string `env:"BACKEND"`

	// SQSURL is the FIFO queue URL.
	// Env: QUEUE_SQS_URL
	SQSURL string `env:"SQS_URL"`

	// SQSDeadLetterURL optionally receives entries that failed fatally.
	// Env: QUEUE_SQS_DEAD_LETTER_URL
	SQSDeadLetterURL string `env:"SQS_DEAD_LETTER_URL"`

	// Region is the sqs region.
	// Env: QUEUE_REGION
	Region string `env:"REGION"`

	// LocalPath is the bolt database file of the local queue.
	// Env: QUEUE_LOCAL_PATH
	LocalPath string `env:"LOCAL_PATH"`

	// Lanes is the number of ordered lanes of the local queue.
	// Env: QUEUE_LANES
	Lanes int `env:"LANES"`
}

// Workers configures the journal apply runtime.
type Workers struct {
	// Enabled starts the apply runtime inside the server process.
	// Env: WORKERS_ENABLED
	Enabled bool `env:"ENABLED"`

	// Concurrency is the number of concurrent queue pollers.
	// Env: WORKERS_CONCURRENCY
	Concurrency int `env:"CONCURRENCY"`

	// LockTTL is the lifetime of a snapshot lock between refreshes.
	// Env: WORKERS_LOCK_TTL
	LockTTL time.Duration `env:"LOCK_TTL"`

	// PendingTTL is the expiry of a user's pending-work set.
	// Env: WORKERS_PENDING_TTL
	PendingTTL time.Duration `env:"PENDING_TTL"`

	// ShutdownTimeout bounds how long in-flight entries may take to finish
	// once shutdown starts.
	// Env: WORKERS_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Notify configures the push gateway.
type Notify struct {
	// PushURL is the gateway endpoint. Empty means notifications are only logged.
	// Env: NOTIFY_PUSH_URL
	PushURL string `env:"PUSH_URL"`
	// Env: NOTIFY_PUSH_TOKEN
	PushToken string `env:"PUSH_TOKEN"`
	// Env: NOTIFY_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
	// Retries is how many times a 5xx or transport failure is retried.
	// Env: NOTIFY_RETRIES
	Retries int `env:"RETRIES"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Defaults applied after merging when a field is still zero.
const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultSnapshotBackend = SnapshotBackendFile
	DefaultQueueBackend    = QueueBackendLocal
	DefaultQueueLanes      = 8
	DefaultConcurrency     = 4
	DefaultLockTTL         = 30 * time.Second
	DefaultPendingTTL      = 10 * time.Minute
	DefaultShutdownTimeout = 30 * time.Second
	DefaultNotifyTimeout   = 5 * time.Second
	DefaultLogLevel        = "debug"
)

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.Snapshots.Backend == "" {
		cfg.Storage.Snapshots.Backend = DefaultSnapshotBackend
	}
	if cfg.Storage.Snapshots.WorkDir == "" {
		cfg.Storage.Snapshots.WorkDir = os.TempDir()
	}
	if cfg.Queue.Backend == "" {
		cfg.Queue.Backend = DefaultQueueBackend
	}
	if cfg.Queue.Lanes == 0 {
		cfg.Queue.Lanes = DefaultQueueLanes
	}
	if cfg.Workers.Concurrency == 0 {
		cfg.Workers.Concurrency = DefaultConcurrency
	}
	if cfg.Workers.LockTTL == 0 {
		cfg.Workers.LockTTL = DefaultLockTTL
	}
	if cfg.Workers.PendingTTL == 0 {
		cfg.Workers.PendingTTL = DefaultPendingTTL
	}
	if cfg.Workers.ShutdownTimeout == 0 {
		cfg.Workers.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Notify.Timeout == 0 {
		cfg.Notify.Timeout = DefaultNotifyTimeout
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}
