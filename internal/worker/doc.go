// Package worker applies journal entries to per-user snapshots.
//
// A [Runtime] consumes serialized entries from a queue. For every entry it
// marks the task as pending for the owner's snapshot, takes the snapshot's
// distributed lock, applies the changes in dependency order, persists the
// result and, once the owner has no pending work left, notifies the owner's
// devices. A failing entry is resubmitted once with is_retry set; a second
// failure, or a failure that cannot succeed on retry, is fatal.
package worker
