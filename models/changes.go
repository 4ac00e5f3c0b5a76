// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "maps"

// ChangeRecord is one row-level change in a journal entry.
//
// Data holds the snapshot projection of the row: every declared column for
// add, only the changed declared columns for modify, and nil for delete.
type ChangeRecord struct {
	Table  Table          `json:"-"`
	UUID   string         `json:"-"`
	Action Action         `json:"action"`
	Data   map[string]any `json:"data"`
}

// Modification pairs the state of a row before and after an update.
type Modification struct {
	Before Row
	After  Row
}

// Changeset is everything a committed write session touched,
// split the way the change-capture stage consumes it.
type Changeset struct {
	Added    []Row
	Modified []Modification
	Deleted  []Row
}

// Empty reports whether the changeset carries no rows.
func (c Changeset) Empty() bool {
	return len(c.Added) == 0 && len(c.Modified) == 0 && len(c.Deleted) == 0
}

// Merge folds next into an existing record for the same (table, uuid) pair.
//
// A delete wins over everything that came before it, a later add turns the
// record back into an add, and modifications accumulate column values.
func (c ChangeRecord) Merge(next ChangeRecord) ChangeRecord {
	switch {
	case next.Action == ActionDelete:
		return ChangeRecord{Table: c.Table, UUID: c.UUID, Action: ActionDelete}
	case c.Action == ActionDelete && next.Action == ActionModify:
		return c
	case c.Action == ActionDelete:
		return next
	}

	merged := make(map[string]any, len(c.Data)+len(next.Data))
	maps.Copy(merged, c.Data)
	maps.Copy(merged, next.Data)

	action := c.Action
	if next.Action == ActionAdd {
		action = ActionAdd
	}
	return ChangeRecord{Table: c.Table, UUID: c.UUID, Action: action, Data: merged}
}
