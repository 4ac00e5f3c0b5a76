package journal

import (
	"context"
	"time"

	"github.com/MKhiriev/go-db-journal/internal/store"
	"github.com/MKhiriev/go-db-journal/models"
	"github.com/rs/zerolog"
)

var testTime = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// fakeGraph is an in-memory Graph keyed by uuid.
type fakeGraph struct {
	profiles    map[string]models.Profile
	cards       map[string]models.Card
	followers   map[int64][]int64
	subscribers map[int64][]int64
}

func newFakeGraph() *fakeGraph {
	return &fakeGraph{
		profiles:    map[string]models.Profile{},
		cards:       map[string]models.Card{},
		followers:   map[int64][]int64{},
		subscribers: map[int64][]int64{},
	}
}

func (g *fakeGraph) ProfileByUUID(_ context.Context, uuid string) (models.Profile, error) {
	p, ok := g.profiles[uuid]
	if !ok {
		return models.Profile{}, store.ErrRowNotFound
	}
	return p, nil
}

func (g *fakeGraph) CardByUUID(_ context.Context, uuid string) (models.Card, error) {
	c, ok := g.cards[uuid]
	if !ok {
		return models.Card{}, store.ErrRowNotFound
	}
	return c, nil
}

func (g *fakeGraph) FollowerUserIDs(_ context.Context, userID int64) ([]int64, error) {
	return g.followers[userID], nil
}

func (g *fakeGraph) CardSubscriberUserIDs(_ context.Context, ownerID int64) ([]int64, error) {
	return g.subscribers[ownerID], nil
}

func profile(uuid string, userID int64, name string) models.Profile {
	return models.Profile{
		UUID: uuid, UserID: userID, Name: name, Email: name + "@example.com",
		CommitID: 1, CreatedAt: testTime, ModifiedAt: testTime,
	}
}

func card(uuid, profileUUID string, userID int64, title string) models.Card {
	return models.Card{
		UUID: uuid, ProfileUUID: profileUUID, UserID: userID, Title: title,
		CommitID: 1, CreatedAt: testTime, ModifiedAt: testTime,
	}
}

func ownersOf(entries []models.JournalEntry) []int64 {
	owners := make([]int64, 0, len(entries))
	for _, e := range entries {
		owners = append(owners, e.DBOwnerID)
	}
	return owners
}
