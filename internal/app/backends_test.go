package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-db-journal/internal/config"
	"github.com/MKhiriev/go-db-journal/internal/logger"
	"github.com/MKhiriev/go-db-journal/internal/queue"
	"github.com/MKhiriev/go-db-journal/internal/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnapshotBackend_File(t *testing.T) {
	backend, err := newSnapshotBackend(context.Background(), config.Snapshots{
		Backend: config.SnapshotBackendFile,
		BaseDir: t.TempDir(),
	})
	require.NoError(t, err)
	assert.IsType(t, &snapshot.FileBackend{}, backend)
}

func TestNewSnapshotBackend_S3(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")

	backend, err := newSnapshotBackend(context.Background(), config.Snapshots{
		Backend:  config.SnapshotBackendS3,
		Bucket:   "snapshots",
		Region:   "eu-central-1",
		Endpoint: "http://localhost:9000",
	})
	require.NoError(t, err)
	assert.IsType(t, &snapshot.S3Backend{}, backend)
}

func TestNewSnapshotBackend_Unknown(t *testing.T) {
	_, err := newSnapshotBackend(context.Background(), config.Snapshots{Backend: "ftp"})
	assert.ErrorContains(t, err, `unknown snapshot backend "ftp"`)
}

func TestNewQueue_Local(t *testing.T) {
	q, err := newQueue(context.Background(), config.Queue{
		Backend:   config.QueueBackendLocal,
		LocalPath: filepath.Join(t.TempDir(), "journal.db"),
		Lanes:     2,
	}, 1, logger.Nop())
	require.NoError(t, err)
	defer q.Close()

	assert.IsType(t, &queue.LocalQueue{}, q)
}

func TestNewQueue_SQS(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")

	q, err := newQueue(context.Background(), config.Queue{
		Backend: config.QueueBackendSQS,
		SQSURL:  "https://sqs.eu-central-1.amazonaws.com/000000000000/journal.fifo",
		Region:  "eu-central-1",
	}, 2, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &queue.SQSQueue{}, q)
}

func TestNewQueue_Unknown(t *testing.T) {
	q, err := newQueue(context.Background(), config.Queue{Backend: "kafka"}, 1, logger.Nop())
	assert.ErrorContains(t, err, `unknown queue backend "kafka"`)
	assert.Nil(t, q)
}

func TestApp_CloseWithoutBackends(t *testing.T) {
	assert.NoError(t, (&App{}).Close())
}
