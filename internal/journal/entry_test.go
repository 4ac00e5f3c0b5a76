package journal

import (
	"testing"

	"github.com/MKhiriev/go-db-journal/models"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(t models.Table, uuid string, action models.Action) models.ChangeRecord {
	var data map[string]any
	if action != models.ActionDelete {
		data = map[string]any{"uuid": uuid}
	}
	return models.ChangeRecord{Table: t, UUID: uuid, Action: action, Data: data}
}

func TestNewTaskID(t *testing.T) {
	a, b := NewTaskID(), NewTaskID()

	assert.NotEqual(t, a, b)
	assert.Less(t, a, b)
	_, err := ulid.Parse(a)
	assert.NoError(t, err)
}

func TestNewEntry(t *testing.T) {
	_, err := NewEntry(0)
	assert.ErrorIs(t, err, ErrInvalidEntry)

	e, err := NewEntry(7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), e.DBOwnerID)
	assert.False(t, e.IsRetry)
	assert.NotEmpty(t, e.TaskID)
}

func TestGroup_OrderAndDuplication(t *testing.T) {
	shared := rec(models.TableProfile, "p-1", models.ActionModify)
	routed := []Routed{
		{Change: Change{Record: rec(models.TableCard, "c-1", models.ActionAdd)}, Owners: []int64{2}},
		{Change: Change{Record: shared}, Owners: []int64{1, 2}},
		{Change: Change{Record: rec(models.TableCard, "c-2", models.ActionDelete)}, Owners: []int64{1}},
	}

	entries, err := Group(routed)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, int64(2), entries[0].DBOwnerID)
	assert.Equal(t, []string{"c-1", "p-1"}, uuidsOf(entries[0].Changes))
	assert.Equal(t, int64(1), entries[1].DBOwnerID)
	assert.Equal(t, []string{"p-1", "c-2"}, uuidsOf(entries[1].Changes))
	assert.NotEqual(t, entries[0].TaskID, entries[1].TaskID)
}

func TestGroup_MergesSameRow(t *testing.T) {
	entries, err := Group([]Routed{
		{Change: Change{Record: rec(models.TableProfile, "p-1", models.ActionModify)}, Owners: []int64{1}},
		{Change: Change{Record: rec(models.TableProfile, "p-1", models.ActionAdd)}, Owners: []int64{1}},
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Len(t, entries[0].Changes, 1)
	assert.Equal(t, models.ActionAdd, entries[0].Changes[0].Action)
}

func TestValidate(t *testing.T) {
	valid := models.JournalEntry{TaskID: "t", DBOwnerID: 1, Changes: []models.ChangeRecord{rec(models.TableCard, "c", models.ActionAdd)}}

	tests := []struct {
		name   string
		mutate func(e *models.JournalEntry)
	}{
		{name: "no owner", mutate: func(e *models.JournalEntry) { e.DBOwnerID = 0 }},
		{name: "no task id", mutate: func(e *models.JournalEntry) { e.TaskID = "" }},
		{name: "no changes", mutate: func(e *models.JournalEntry) { e.Changes = nil }},
		{name: "bad action", mutate: func(e *models.JournalEntry) { e.Changes[0].Action = "upsert" }},
		{name: "no uuid", mutate: func(e *models.JournalEntry) { e.Changes[0].UUID = "" }},
		{name: "delete with data", mutate: func(e *models.JournalEntry) {
			e.Changes[0].Action = models.ActionDelete
		}},
	}

	require.NoError(t, Validate(valid))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			e.Changes = []models.ChangeRecord{rec(models.TableCard, "c", models.ActionAdd)}
			tt.mutate(&e)
			assert.ErrorIs(t, Validate(e), ErrInvalidEntry)
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	entry := models.JournalEntry{
		TaskID:    NewTaskID(),
		DBOwnerID: 3,
		Changes: []models.ChangeRecord{
			{Table: models.TableCard, UUID: "c-1", Action: models.ActionModify, Data: map[string]any{"title": "x", "commit_id": int64(4)}},
			rec(models.TableProfile, "p-1", models.ActionDelete),
		},
	}

	body, err := Encode(entry)
	require.NoError(t, err)

	decoded, err := Decode(body)
	require.NoError(t, err)
	assert.Equal(t, entry.TaskID, decoded.TaskID)
	assert.Equal(t, entry.Changes, decoded.Changes)

	_, err = Encode(models.JournalEntry{TaskID: "t", DBOwnerID: 1})
	assert.ErrorIs(t, err, ErrInvalidEntry)

	_, err = Decode([]byte("{not json"))
	assert.ErrorIs(t, err, ErrMalformedEntry)

	_, err = Decode([]byte(`{"task_id":"t","is_retry":false,"db_owner_id":0,"changelog":{}}`))
	assert.ErrorIs(t, err, ErrInvalidEntry)
}

// ── DependencyOrder ─────────────────────────────────────────────────────────

func TestDependencyOrder(t *testing.T) {
	in := []models.ChangeRecord{
		rec(models.TableCard, "c-del", models.ActionDelete),
		rec(models.TableCardSubscription, "s-1", models.ActionAdd),
		rec(models.TableCard, "c-1", models.ActionAdd),
		rec(models.TableProfile, "p-del", models.ActionDelete),
		rec(models.TableProfileRelation, "r-1", models.ActionDelete),
		rec(models.TableProfile, "p-1", models.ActionAdd),
		rec(models.TableCard, "c-2", models.ActionModify),
		rec(models.TableProfile, "p-2", models.ActionModify),
	}

	out := DependencyOrder(in)
	assert.Equal(t, []string{"p-1", "p-2", "c-1", "c-2", "r-1", "s-1", "p-del", "c-del"}, uuidsOf(out))
	// input untouched
	assert.Equal(t, "c-del", in[0].UUID)
}

func uuidsOf(changes []models.ChangeRecord) []string {
	out := make([]string, 0, len(changes))
	for _, c := range changes {
		out = append(out, c.UUID)
	}
	return out
}
