// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_ListsEmbeddedMigrations(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	provider, err := NewProvider(db)
	require.NoError(t, err)

	var names []string
	var versions []int64
	for _, src := range provider.ListSources() {
		names = append(names, filepath.Base(src.Path))
		versions = append(versions, src.Version)
	}
	assert.Equal(t, []int64{1, 2, 3}, versions)
	assert.Equal(t, []string{
		"00001_profiles_and_cards.sql",
		"00002_relations_and_subscriptions.sql",
		"00003_device_sessions.sql",
	}, names)
}

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(".*").WillReturnError(errors.New("connection refused"))

	applied, err := Migrate(context.Background(), db)
	assert.ErrorContains(t, err, "migration error")
	assert.Empty(t, applied)
}

func TestMigrate_NilDB(t *testing.T) {
	_, err := Migrate(context.Background(), nil)
	assert.ErrorContains(t, err, "db is nil")
}
