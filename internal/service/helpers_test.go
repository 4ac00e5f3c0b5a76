package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-db-journal/internal/coordination"
	"github.com/MKhiriev/go-db-journal/models"
	"github.com/rs/zerolog"
)

var testTime = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

const (
	profileUUID = "0190f5b2-7c1e-7a3b-9d4f-000000000010"
	otherUUID   = "0190f5b2-7c1e-7a3b-9d4f-000000000020"
	cardUUID    = "0190f5b2-7c1e-7a3b-9d4f-000000000005"
	newUUID     = "0190f5b2-7c1e-7a3b-9d4f-0000000000aa"
)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func ptr[T any](v T) *T { return &v }

// fixedUUIDs always issues the same identifier.
type fixedUUIDs string

func (f fixedUUIDs) Generate() string { return string(f) }

// memoryLocker is an in-process Locker that counts acquisitions.
type memoryLocker struct {
	mu       sync.Mutex
	held     map[string]bool
	obtained []string
	err      error
}

func newMemoryLocker() *memoryLocker {
	return &memoryLocker{held: map[string]bool{}}
}

type memoryLock struct {
	locker *memoryLocker
	key    string
}

func (l *memoryLocker) Obtain(_ context.Context, key string) (coordination.Lock, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return nil, l.err
	}
	if l.held[key] {
		return nil, coordination.ErrLockTimeout
	}
	l.held[key] = true
	l.obtained = append(l.obtained, key)
	return &memoryLock{locker: l, key: key}, nil
}

func (m *memoryLock) Release(context.Context) error {
	m.locker.mu.Lock()
	defer m.locker.mu.Unlock()
	delete(m.locker.held, m.key)
	return nil
}

// seedSource serves a configurable seed set per user.
type seedSource struct {
	mu    sync.Mutex
	seeds map[int64]models.SeedSet
	calls int
}

func (s *seedSource) SeedRows(_ context.Context, userID int64) (models.SeedSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.seeds[userID], nil
}

func (s *seedSource) set(userID int64, seed models.SeedSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seeds == nil {
		s.seeds = map[int64]models.SeedSet{}
	}
	s.seeds[userID] = seed
}

func seedProfile(uuid string, userID int64, name string) models.Profile {
	return models.Profile{
		UUID: uuid, UserID: userID, Name: name,
		CommitID: 1, CreatedAt: testTime, ModifiedAt: testTime,
	}
}
