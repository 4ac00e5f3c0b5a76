package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings (for
	// example, an empty DSN or an unknown snapshot backend).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidQueueConfigs indicates an unknown queue backend or a backend
	// missing its location.
	ErrInvalidQueueConfigs = errors.New("invalid queue configuration")
	// ErrInvalidRedisConfigs indicates a missing redis address.
	ErrInvalidRedisConfigs = errors.New("invalid redis configuration")
	// ErrInvalidAppConfigs indicates missing token validation settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid runtime settings (for
	// example, a pending-set expiry shorter than the lock ttl).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidNotifyConfigs indicates a negative push timeout or retry count.
	ErrInvalidNotifyConfigs = errors.New("invalid notify configuration")
	// ErrInvalidLogLevel indicates a log level zerolog does not know.
	ErrInvalidLogLevel = errors.New("invalid log level")
)
