package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells [DB.withRetry] whether a failed operation is
// worth another attempt.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier classifies errors by their SQLSTATE.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify returns [NonRetryable] for nil and for errors that did not come
// from the server.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError treats transient server states as retryable: lost
// connections (class 08), rolled back transactions such as deadlocks and
// serialization failures (class 40), exhausted resources (class 53), lock
// timeouts and server restarts. Everything else fails the same way again.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code
	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		pgerrcode.IsInsufficientResources(code),
		code == pgerrcode.LockNotAvailable:
		return Retryable
	// a canceled query was canceled on purpose
	case pgerrcode.IsOperatorIntervention(code) && code != pgerrcode.QueryCanceled:
		return Retryable
	default:
		return NonRetryable
	}
}

// IsPermanent reports whether err carries a PostgreSQL error that will fail
// the same way on every attempt. Errors that did not originate from the
// server, such as network failures, are never permanent.
func IsPermanent(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return ClassifyPgError(pgErr) == NonRetryable
}
