// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-db-journal/models"
	"github.com/stretchr/testify/assert"
)

func TestCallerContext(t *testing.T) {
	_, ok := GetCallerFromContext(context.Background())
	assert.False(t, ok)

	userID, ok := GetUserIDFromContext(context.Background())
	assert.False(t, ok)
	assert.Zero(t, userID)

	caller := models.Caller{UserID: 42, DeviceID: "tablet"}
	ctx := WithCaller(context.Background(), caller)

	got, ok := GetCallerFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, caller, got)

	userID, ok = GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(42), userID)
}

func TestCallerContext_ForeignKeyIgnored(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("user"), models.Caller{UserID: 7})

	_, ok := GetUserIDFromContext(ctx)
	assert.False(t, ok)
}

func TestTaskIDContext(t *testing.T) {
	assert.Empty(t, GetTaskIDFromContext(context.Background()))

	ctx := WithTaskID(context.Background(), "01J0TASK")
	assert.Equal(t, "01J0TASK", GetTaskIDFromContext(ctx))
	assert.Equal(t, "taskID", taskIDCtxKey.String())
}
