// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. Defaults are applied before
// validation, so only settings without a sensible default are required.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database dsn is empty", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.Snapshots.Backend {
	case SnapshotBackendFile:
		if cfg.Storage.Snapshots.BaseDir == "" {
			return fmt.Errorf("%w: snapshot base dir is empty", ErrInvalidStorageConfigs)
		}
	case SnapshotBackendS3:
		if cfg.Storage.Snapshots.Bucket == "" {
			return fmt.Errorf("%w: snapshot bucket is empty", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown snapshot backend %q", ErrInvalidStorageConfigs, cfg.Storage.Snapshots.Backend)
	}

	switch cfg.Queue.Backend {
	case QueueBackendSQS:
		if cfg.Queue.SQSURL == "" {
			return fmt.Errorf("%w: sqs url is empty", ErrInvalidQueueConfigs)
		}
	case QueueBackendLocal:
		if cfg.Queue.LocalPath == "" {
			return fmt.Errorf("%w: local queue path is empty", ErrInvalidQueueConfigs)
		}
		if cfg.Queue.Lanes < 1 {
			return fmt.Errorf("%w: lanes must be positive", ErrInvalidQueueConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown queue backend %q", ErrInvalidQueueConfigs, cfg.Queue.Backend)
	}

	if cfg.Redis.Address == "" {
		return ErrInvalidRedisConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.Concurrency < 1 || cfg.Workers.LockTTL <= 0 || cfg.Workers.PendingTTL <= 0 ||
		cfg.Workers.PendingTTL < cfg.Workers.LockTTL {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Notify.Timeout < 0 || cfg.Notify.Retries < 0 {
		return ErrInvalidNotifyConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.LogLevel)
	}

	return nil
}
