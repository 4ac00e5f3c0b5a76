// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingWorker appends its id to a shared log on every lifecycle call.
type recordingWorker struct {
	id          int
	log         *[]string
	shutdownErr error
}

func (r *recordingWorker) Start(context.Context) {
	*r.log = append(*r.log, "start", string(rune('0'+r.id)))
}

func (r *recordingWorker) Shutdown(context.Context) error {
	*r.log = append(*r.log, "stop", string(rune('0'+r.id)))
	return r.shutdownErr
}

func TestWorkers_StartInOrderStopInReverse(t *testing.T) {
	var log []string
	ws := NewWorkers(
		&recordingWorker{id: 1, log: &log},
		&recordingWorker{id: 2, log: &log},
		&recordingWorker{id: 3, log: &log},
	)

	ws.Start(context.Background())
	assert.NoError(t, ws.Shutdown(context.Background()))

	assert.Equal(t, []string{
		"start", "1", "start", "2", "start", "3",
		"stop", "3", "stop", "2", "stop", "1",
	}, log)
}

func TestWorkers_ShutdownJoinsErrors(t *testing.T) {
	var log []string
	errA := errors.New("a")
	errB := errors.New("b")
	ws := NewWorkers(
		&recordingWorker{id: 1, log: &log, shutdownErr: errA},
		&recordingWorker{id: 2, log: &log},
		&recordingWorker{id: 3, log: &log, shutdownErr: errB},
	)

	err := ws.Shutdown(context.Background())
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	assert.Len(t, log, 6, "every worker is stopped even after a failure")
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	ws.Start(context.Background())
	assert.NoError(t, ws.Shutdown(context.Background()))
	assert.Zero(t, ws.Len())
}

func TestWorkers_IsAWorker(t *testing.T) {
	var log []string
	var w Worker = NewWorkers(NewWorkers(&recordingWorker{id: 7, log: &log}))

	w.Start(context.Background())
	assert.NoError(t, w.Shutdown(context.Background()))
	assert.Equal(t, []string{"start", "7", "stop", "7"}, log)
}
