package journal

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-db-journal/internal/logger"
	"github.com/MKhiriev/go-db-journal/internal/snapshot"
	"github.com/MKhiriev/go-db-journal/internal/store"
	"github.com/MKhiriev/go-db-journal/models"
)

// Change is a captured change record together with the row that decides
// where it is routed. For records synthesized from an edge, Origin is the
// edge row, so they follow the edge to its owner.
type Change struct {
	Record models.ChangeRecord
	Origin models.Row
}

// Capture turns a committed changeset into change records in discovery
// order: adds, then modifications, then deletes, each followed by the adds
// synthesized for the rows it references.
type Capture struct {
	graph Graph
}

// NewCapture returns a Capture that reads referenced rows from graph.
func NewCapture(graph Graph) *Capture {
	return &Capture{graph: graph}
}

// Diff returns the change records of a committed changeset. Added edges
// whose referenced rows are hidden from snapshots are left out entirely.
func (c *Capture) Diff(ctx context.Context, changes models.Changeset) ([]Change, error) {
	var out []Change

	for _, row := range changes.Added {
		if !row.Table().Valid() {
			continue
		}
		refs, visible, err := c.expand(ctx, row)
		if err != nil {
			return nil, err
		}
		// an edge whose parents stay out of the snapshot cannot be inserted
		if !visible {
			logger.FromContext(ctx).Debug().
				Str("func", "Capture.Diff").
				Str("table", row.Table().String()).
				Str("uuid", row.RowUUID()).
				Msg("skipping edge to hidden rows")
			continue
		}
		out = append(out, Change{Record: addRecord(row), Origin: row})
		out = append(out, refs...)
	}

	for _, m := range changes.Modified {
		if m.After == nil || !m.After.Table().Valid() {
			continue
		}
		record, dirty := modifyRecord(m.Before, m.After)
		if !dirty {
			logger.FromContext(ctx).Debug().
				Str("func", "Capture.Diff").
				Str("table", m.After.Table().String()).
				Str("uuid", m.After.RowUUID()).
				Msg("skipping clean modification")
			continue
		}
		refs, _, err := c.expand(ctx, m.After)
		if err != nil {
			return nil, err
		}
		out = append(out, Change{Record: record, Origin: m.After})
		out = append(out, refs...)
	}

	for _, row := range changes.Deleted {
		if !row.Table().Valid() {
			continue
		}
		out = append(out, Change{
			Record: models.ChangeRecord{Table: row.Table(), UUID: row.RowUUID(), Action: models.ActionDelete},
			Origin: row,
		})
		refs, _, err := c.expand(ctx, row)
		if err != nil {
			return nil, err
		}
		out = append(out, refs...)
	}

	return out, nil
}

// expand returns adds for the rows an edge references: the target profile
// of a relation, or the card and its owning profile for a subscription.
// visible is false when any of them is gone, deleted or locked; nothing is
// synthesized then. Rows that are not edges are always visible.
func (c *Capture) expand(ctx context.Context, edge models.Row) ([]Change, bool, error) {
	switch row := edge.(type) {
	case models.ProfileRelation:
		profile, ok, err := c.visibleProfile(ctx, row.ToProfileUUID)
		if err != nil || !ok {
			return nil, false, err
		}
		return []Change{{Record: addRecord(profile), Origin: edge}}, true, nil

	case models.CardSubscription:
		card, err := c.graph.CardByUUID(ctx, row.CardUUID)
		if errors.Is(err, store.ErrRowNotFound) {
			return nil, false, nil
		}
		if err != nil {
			return nil, false, fmt.Errorf("expand subscription %s: %w", row.UUID, err)
		}
		if card.IsLocked || card.DeletedAt != nil {
			return nil, false, nil
		}

		profile, ok, err := c.visibleProfile(ctx, card.ProfileUUID)
		if err != nil || !ok {
			return nil, false, err
		}
		return []Change{
			{Record: addRecord(card), Origin: edge},
			{Record: addRecord(profile), Origin: edge},
		}, true, nil
	}

	return nil, true, nil
}

func (c *Capture) visibleProfile(ctx context.Context, uuid string) (models.Profile, bool, error) {
	profile, err := c.graph.ProfileByUUID(ctx, uuid)
	if errors.Is(err, store.ErrRowNotFound) {
		return models.Profile{}, false, nil
	}
	if err != nil {
		return models.Profile{}, false, fmt.Errorf("load profile %s: %w", uuid, err)
	}
	return profile, !profile.IsLocked && profile.DeletedAt == nil, nil
}

func addRecord(row models.Row) models.ChangeRecord {
	return models.ChangeRecord{
		Table:  row.Table(),
		UUID:   row.RowUUID(),
		Action: models.ActionAdd,
		Data:   snapshot.Project(row.Table(), row.Values()),
	}
}

// modifyRecord diffs the declared columns of two images of the same row.
// The record carries the new values of changed columns only.
func modifyRecord(before, after models.Row) (models.ChangeRecord, bool) {
	t := after.Table()
	next := after.Values()

	var prev map[string]any
	if before != nil {
		prev = before.Values()
	}

	data := make(map[string]any)
	for _, column := range snapshot.Columns(t) {
		value := next[column]
		if old, ok := prev[column]; ok && old == value {
			continue
		}
		data[column] = value
	}

	if len(data) == 0 {
		return models.ChangeRecord{}, false
	}
	return models.ChangeRecord{Table: t, UUID: after.RowUUID(), Action: models.ActionModify, Data: data}, true
}
