package journal

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-db-journal/models"
)

// NewEntry starts an empty entry for ownerID with a fresh task id.
func NewEntry(ownerID int64) (*models.JournalEntry, error) {
	if ownerID <= 0 {
		return nil, fmt.Errorf("%w: owner id %d", ErrInvalidEntry, ownerID)
	}
	return &models.JournalEntry{TaskID: NewTaskID(), DBOwnerID: ownerID}, nil
}

// Group folds routed changes into one entry per owner. Entries are returned
// in the order their owners were first seen, and each entry keeps the
// discovery order of its changes.
func Group(routed []Routed) ([]models.JournalEntry, error) {
	var order []int64
	entries := make(map[int64]*models.JournalEntry)

	for _, r := range routed {
		for _, owner := range r.Owners {
			entry, ok := entries[owner]
			if !ok {
				var err error
				if entry, err = NewEntry(owner); err != nil {
					return nil, err
				}
				entries[owner] = entry
				order = append(order, owner)
			}
			entry.Append(r.Record)
		}
	}

	out := make([]models.JournalEntry, 0, len(order))
	for _, owner := range order {
		out = append(out, *entries[owner])
	}
	return out, nil
}

// Validate checks the invariants every entry must hold before it is
// enqueued or applied.
func Validate(entry models.JournalEntry) error {
	if entry.DBOwnerID <= 0 {
		return fmt.Errorf("%w: owner id %d", ErrInvalidEntry, entry.DBOwnerID)
	}
	if entry.TaskID == "" {
		return fmt.Errorf("%w: empty task id", ErrInvalidEntry)
	}
	if len(entry.Changes) == 0 {
		return fmt.Errorf("%w: no changes", ErrInvalidEntry)
	}
	for _, c := range entry.Changes {
		if !c.Table.Valid() || !c.Action.Valid() || c.UUID == "" {
			return fmt.Errorf("%w: bad change %s %q %q", ErrInvalidEntry, c.Table, c.UUID, c.Action)
		}
		if c.Action == models.ActionDelete && len(c.Data) > 0 {
			return fmt.Errorf("%w: delete of %s %s carries data", ErrInvalidEntry, c.Table, c.UUID)
		}
	}
	return nil
}

// Encode validates entry and serializes it for the queue.
func Encode(entry models.JournalEntry) ([]byte, error) {
	if err := Validate(entry); err != nil {
		return nil, err
	}
	return json.Marshal(entry)
}

// Decode parses a queued entry. Undecodable bodies wrap [ErrMalformedEntry].
func Decode(body []byte) (models.JournalEntry, error) {
	var entry models.JournalEntry
	if err := json.Unmarshal(body, &entry); err != nil {
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrMalformedEntry, err)
	}
	if err := Validate(entry); err != nil {
		return models.JournalEntry{}, err
	}
	return entry, nil
}

// applyBucket ranks a change in the order that keeps snapshot foreign keys
// satisfied: parents are written before children and removed after them.
func applyBucket(c models.ChangeRecord) int {
	switch c.Table {
	case models.TableProfile:
		if c.Action == models.ActionDelete {
			return 4
		}
		return 0
	case models.TableCard:
		if c.Action == models.ActionDelete {
			return 5
		}
		return 1
	case models.TableProfileRelation:
		return 2
	case models.TableCardSubscription:
		return 3
	}
	return 6
}

// DependencyOrder returns the changes stably partitioned into apply order:
// profile adds and modifications, card adds and modifications, relations,
// subscriptions, profile deletes, card deletes.
func DependencyOrder(changes []models.ChangeRecord) []models.ChangeRecord {
	ordered := slices.Clone(changes)
	slices.SortStableFunc(ordered, func(a, b models.ChangeRecord) int {
		return applyBucket(a) - applyBucket(b)
	})
	return ordered
}
