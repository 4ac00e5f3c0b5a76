// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncSnapshot is the payload returned to a device fetching its offline database.
//
// DB carries the raw SQLite bytes; handlers encode it as URL-safe base64.
// NotModified is set when the caller already holds the current Hash, in which
// case DB is empty.
type SyncSnapshot struct {
	Hash        string
	DB          []byte
	NotModified bool
}

// SyncResponse is the JSON body of snapshot fetch and reset responses.
type SyncResponse struct {
	Hash string `json:"hash"`
	DB   string `json:"db"`
}

// PushPayload is delivered to a user's devices once their snapshot settles.
type PushPayload struct {
	Resource string `json:"resource"`
	ETag     string `json:"etag"`
}

// PushResourceDBSync is the resource name announcing a new snapshot version.
const PushResourceDBSync = "dbsync_event"
