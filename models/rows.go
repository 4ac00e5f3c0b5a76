// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Row is a persisted entity that participates in snapshot sync.
//
// Values returns every column of the row keyed by column name with values
// normalised to JSON-friendly primitives (string, int64, bool, nil). Times are
// rendered with [FormatTime] so that equal instants compare equal.
type Row interface {
	Table() Table
	RowUUID() string
	OwnerID() int64
	Values() map[string]any
}

// RelationStatus is the state of a profile relation edge.
type RelationStatus string

const (
	RelationFollow          RelationStatus = "FOLLOW"
	RelationFollowRequested RelationStatus = "FOLLOW_REQUESTED"
	RelationBlock           RelationStatus = "BLOCK"
	RelationHide            RelationStatus = "HIDE"
)

// Valid reports whether s is a known relation status.
func (s RelationStatus) Valid() bool {
	switch s {
	case RelationFollow, RelationFollowRequested, RelationBlock, RelationHide:
		return true
	}
	return false
}

// Profile is a user-facing identity. One user may own several profiles.
type Profile struct {
	ID          int64      `json:"-"`
	UUID        string     `json:"uuid"`
	UserID      int64      `json:"user_id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Description string     `json:"description"`
	AvatarURL   string     `json:"avatar_url"`
	IsPrivate   bool       `json:"is_private"`
	IsLocked    bool       `json:"is_locked"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	CommitID    int64      `json:"commit_id"`
	CreatedAt   time.Time  `json:"created_at"`
	ModifiedAt  time.Time  `json:"modified_at"`
}

func (p Profile) Table() Table    { return TableProfile }
func (p Profile) RowUUID() string { return p.UUID }
func (p Profile) OwnerID() int64  { return p.UserID }

func (p Profile) Values() map[string]any {
	return map[string]any{
		"uuid":        p.UUID,
		"user_id":     p.UserID,
		"name":        p.Name,
		"email":       p.Email,
		"description": p.Description,
		"avatar_url":  p.AvatarURL,
		"is_private":  p.IsPrivate,
		"is_locked":   p.IsLocked,
		"deleted_at":  FormatTimePtr(p.DeletedAt),
		"commit_id":   p.CommitID,
		"created_at":  FormatTime(p.CreatedAt),
		"modified_at": FormatTime(p.ModifiedAt),
	}
}

// ProfileRelation is a directed edge from one profile to another.
// UserID is the owner of the edge and always equals FromUserID.
type ProfileRelation struct {
	ID              int64          `json:"-"`
	UUID            string         `json:"uuid"`
	UserID          int64          `json:"user_id"`
	FromProfileUUID string         `json:"from_profile_uuid"`
	ToProfileUUID   string         `json:"to_profile_uuid"`
	FromUserID      int64          `json:"from_user_id"`
	ToUserID        int64          `json:"to_user_id"`
	Status          RelationStatus `json:"status"`
	CommitID        int64          `json:"commit_id"`
	CreatedAt       time.Time      `json:"created_at"`
	ModifiedAt      time.Time      `json:"modified_at"`
}

func (r ProfileRelation) Table() Table    { return TableProfileRelation }
func (r ProfileRelation) RowUUID() string { return r.UUID }
func (r ProfileRelation) OwnerID() int64  { return r.UserID }

func (r ProfileRelation) Values() map[string]any {
	return map[string]any{
		"uuid":              r.UUID,
		"user_id":           r.UserID,
		"from_profile_uuid": r.FromProfileUUID,
		"to_profile_uuid":   r.ToProfileUUID,
		"from_user_id":      r.FromUserID,
		"to_user_id":        r.ToUserID,
		"status":            string(r.Status),
		"commit_id":         r.CommitID,
		"created_at":        FormatTime(r.CreatedAt),
		"modified_at":       FormatTime(r.ModifiedAt),
	}
}

// Card is a piece of content published from a profile.
type Card struct {
	ID          int64      `json:"-"`
	UUID        string     `json:"uuid"`
	ProfileUUID string     `json:"profile_uuid"`
	UserID      int64      `json:"user_id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	IsPrivate   bool       `json:"is_private"`
	IsLocked    bool       `json:"is_locked"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	CommitID    int64      `json:"commit_id"`
	CreatedAt   time.Time  `json:"created_at"`
	ModifiedAt  time.Time  `json:"modified_at"`
}

func (c Card) Table() Table    { return TableCard }
func (c Card) RowUUID() string { return c.UUID }
func (c Card) OwnerID() int64  { return c.UserID }

func (c Card) Values() map[string]any {
	return map[string]any{
		"uuid":         c.UUID,
		"profile_uuid": c.ProfileUUID,
		"user_id":      c.UserID,
		"title":        c.Title,
		"content":      c.Content,
		"is_private":   c.IsPrivate,
		"is_locked":    c.IsLocked,
		"deleted_at":   FormatTimePtr(c.DeletedAt),
		"commit_id":    c.CommitID,
		"created_at":   FormatTime(c.CreatedAt),
		"modified_at":  FormatTime(c.ModifiedAt),
	}
}

// CardSubscription records that UserID (through ProfileUUID) subscribed to a card.
// CardOwnerID is the owner of the subscribed card.
type CardSubscription struct {
	ID          int64     `json:"-"`
	UUID        string    `json:"uuid"`
	UserID      int64     `json:"user_id"`
	ProfileUUID string    `json:"profile_uuid"`
	CardUUID    string    `json:"card_uuid"`
	CardOwnerID int64     `json:"card_owner_id"`
	CommitID    int64     `json:"commit_id"`
	CreatedAt   time.Time `json:"created_at"`
	ModifiedAt  time.Time `json:"modified_at"`
}

func (s CardSubscription) Table() Table    { return TableCardSubscription }
func (s CardSubscription) RowUUID() string { return s.UUID }
func (s CardSubscription) OwnerID() int64  { return s.UserID }

func (s CardSubscription) Values() map[string]any {
	return map[string]any{
		"uuid":          s.UUID,
		"user_id":       s.UserID,
		"profile_uuid":  s.ProfileUUID,
		"card_uuid":     s.CardUUID,
		"card_owner_id": s.CardOwnerID,
		"commit_id":     s.CommitID,
		"created_at":    FormatTime(s.CreatedAt),
		"modified_at":   FormatTime(s.ModifiedAt),
	}
}

// DeviceSession is a registered push target of a user.
type DeviceSession struct {
	ID          int64      `json:"-"`
	UserID      int64      `json:"user_id"`
	DeviceToken string     `json:"device_token"`
	Platform    string     `json:"platform"`
	CreatedAt   time.Time  `json:"created_at"`
	RevokedAt   *time.Time `json:"revoked_at,omitempty"`
}

// SeedSet holds every row that belongs in a freshly built snapshot.
type SeedSet struct {
	Profiles      []Profile
	Cards         []Card
	Relations     []ProfileRelation
	Subscriptions []CardSubscription
}

// Rows returns the seed rows in insertion order: profiles, cards, relations, subscriptions.
func (s SeedSet) Rows() []Row {
	rows := make([]Row, 0, len(s.Profiles)+len(s.Cards)+len(s.Relations)+len(s.Subscriptions))
	for _, p := range s.Profiles {
		rows = append(rows, p)
	}
	for _, c := range s.Cards {
		rows = append(rows, c)
	}
	for _, r := range s.Relations {
		rows = append(rows, r)
	}
	for _, sub := range s.Subscriptions {
		rows = append(rows, sub)
	}
	return rows
}

// TimeLayout is the layout used for every timestamp stored in a snapshot.
const TimeLayout = "2006-01-02T15:04:05.000000Z07:00"

// FormatTime renders t in UTC with [TimeLayout].
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// FormatTimePtr is [FormatTime] for nullable columns; nil stays nil.
func FormatTimePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return FormatTime(*t)
}
