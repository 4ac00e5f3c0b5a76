// Package utils holds small helpers shared by the go-db-journal packages:
// request context values, content hashing, JSON over HTTP, access tokens,
// row identifiers and the push gateway HTTP client.
package utils

import (
	"context"

	"github.com/MKhiriev/go-db-journal/models"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

const (
	callerCtxKey = contextKey("caller")
	taskIDCtxKey = contextKey("taskID")
)

// WithCaller returns a copy of ctx carrying the authenticated caller.
func WithCaller(ctx context.Context, caller models.Caller) context.Context {
	return context.WithValue(ctx, callerCtxKey, caller)
}

// GetCallerFromContext returns the caller stored by [WithCaller].
func GetCallerFromContext(ctx context.Context) (models.Caller, bool) {
	caller, ok := ctx.Value(callerCtxKey).(models.Caller)
	return caller, ok
}

// GetUserIDFromContext returns the user id of the authenticated caller.
// ok is false for unauthenticated contexts.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	caller, ok := GetCallerFromContext(ctx)
	return caller.UserID, ok
}

// WithTaskID returns a copy of ctx carrying the task id of the journal
// entry being applied.
func WithTaskID(ctx context.Context, taskID string) context.Context {
	return context.WithValue(ctx, taskIDCtxKey, taskID)
}

// GetTaskIDFromContext returns the task id stored by [WithTaskID], or "".
func GetTaskIDFromContext(ctx context.Context) string {
	taskID, _ := ctx.Value(taskIDCtxKey).(string)
	return taskID
}
