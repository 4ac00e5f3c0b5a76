// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Table identifies one of the synced entity kinds.
//
// The set is closed: every switch over Table in this module is expected to
// handle all four values, and the wire names returned by [Table.String] are
// the keys of the journal changelog.
type Table int

const (
	// TableProfile is the user profile entity.
	TableProfile Table = iota + 1
	// TableProfileRelation is a directed edge between two profiles (follow, block, ...).
	TableProfileRelation
	// TableCard is a content card owned by a profile.
	TableCard
	// TableCardSubscription links a subscriber profile to a card.
	TableCardSubscription
)

// Tables lists every synced table in schema dependency order
// (referenced tables before referencing ones).
var Tables = []Table{TableProfile, TableCard, TableProfileRelation, TableCardSubscription}

// String returns the wire name of the table used in journal entries.
func (t Table) String() string {
	switch t {
	case TableProfile:
		return "TB_PROFILE"
	case TableProfileRelation:
		return "TB_PROFILE_RELATION"
	case TableCard:
		return "TB_CARD"
	case TableCardSubscription:
		return "TB_CARD_SUBSCRIPTION"
	default:
		return fmt.Sprintf("Table(%d)", int(t))
	}
}

// Valid reports whether t is one of the known tables.
func (t Table) Valid() bool {
	switch t {
	case TableProfile, TableProfileRelation, TableCard, TableCardSubscription:
		return true
	}
	return false
}

// ParseTable resolves a wire name back to a Table.
func ParseTable(name string) (Table, error) {
	for _, t := range Tables {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown table %q", name)
}

// Action is the kind of change recorded for a row.
type Action string

const (
	ActionAdd    Action = "add"
	ActionModify Action = "modify"
	ActionDelete Action = "delete"
)

// Valid reports whether a is one of add, modify or delete.
func (a Action) Valid() bool {
	switch a {
	case ActionAdd, ActionModify, ActionDelete:
		return true
	}
	return false
}
