package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-db-journal/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func profileRow(id int64, uuid string, userID int64, name string, locked bool) []driver.Value {
	return []driver.Value{id, uuid, userID, name, "", "", "", false, locked, nil, int64(1), testNow, testNow}
}

func cardRow(id int64, uuid, profileUUID string, userID int64, title string) []driver.Value {
	return []driver.Value{id, uuid, profileUUID, userID, title, "", false, false, nil, int64(1), testNow, testNow}
}

func relationRow(id int64, uuid string, fromUser, toUser int64, status string) []driver.Value {
	return []driver.Value{id, uuid, fromUser, "p-from", "p-to", fromUser, toUser, status, int64(1), testNow, testNow}
}

func subscriptionRow(id int64, uuid string, userID, ownerID int64) []driver.Value {
	return []driver.Value{id, uuid, userID, "p-sub", "c-1", ownerID, int64(1), testNow, testNow}
}
