package snapshot

import (
	"context"
	"time"

	"github.com/MKhiriev/go-db-journal/models"
)

// stubSeeds is a hand-written [SeedSource] returning a fixed seed set.
type stubSeeds struct {
	set   models.SeedSet
	err   error
	calls int
}

func (s *stubSeeds) SeedRows(ctx context.Context, userID int64) (models.SeedSet, error) {
	s.calls++
	return s.set, s.err
}

var testTime = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func testProfile(uuid string, userID int64, name string) models.Profile {
	return models.Profile{
		UUID:       uuid,
		UserID:     userID,
		Name:       name,
		Email:      name + "@example.com",
		CommitID:   1,
		CreatedAt:  testTime,
		ModifiedAt: testTime,
	}
}

func testCard(uuid, profileUUID string, userID int64) models.Card {
	return models.Card{
		UUID:        uuid,
		ProfileUUID: profileUUID,
		UserID:      userID,
		Title:       "card " + uuid,
		CommitID:    1,
		CreatedAt:   testTime,
		ModifiedAt:  testTime,
	}
}

func addChange(row models.Row) models.ChangeRecord {
	return models.ChangeRecord{
		Table:  row.Table(),
		UUID:   row.RowUUID(),
		Action: models.ActionAdd,
		Data:   Project(row.Table(), row.Values()),
	}
}
