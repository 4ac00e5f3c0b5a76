// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app builds the shared dependencies of the go-db-journal binaries
// from a [config.StructuredConfig].
//
// The API server and the standalone worker open the same backends: the
// Postgres database, Redis for snapshot locks and pending-work sets, the
// snapshot store (local files or S3) and the journal queue (local bolt file
// or SQS FIFO). A local queue can only be opened by one process, so it is
// meant for a server running with embedded workers.
package app
