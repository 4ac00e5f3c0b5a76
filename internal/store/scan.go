package store

import (
	"database/sql"
	"time"

	"github.com/MKhiriev/go-db-journal/models"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func scanProfile(s rowScanner) (models.Profile, error) {
	var p models.Profile
	var deletedAt sql.NullTime
	err := s.Scan(&p.ID, &p.UUID, &p.UserID, &p.Name, &p.Email, &p.Description, &p.AvatarURL,
		&p.IsPrivate, &p.IsLocked, &deletedAt, &p.CommitID, &p.CreatedAt, &p.ModifiedAt)
	p.DeletedAt = nullTimePtr(deletedAt)
	return p, err
}

func scanCard(s rowScanner) (models.Card, error) {
	var c models.Card
	var deletedAt sql.NullTime
	err := s.Scan(&c.ID, &c.UUID, &c.ProfileUUID, &c.UserID, &c.Title, &c.Content,
		&c.IsPrivate, &c.IsLocked, &deletedAt, &c.CommitID, &c.CreatedAt, &c.ModifiedAt)
	c.DeletedAt = nullTimePtr(deletedAt)
	return c, err
}

func scanRelation(s rowScanner) (models.ProfileRelation, error) {
	var r models.ProfileRelation
	err := s.Scan(&r.ID, &r.UUID, &r.UserID, &r.FromProfileUUID, &r.ToProfileUUID,
		&r.FromUserID, &r.ToUserID, &r.Status, &r.CommitID, &r.CreatedAt, &r.ModifiedAt)
	return r, err
}

func scanSubscription(s rowScanner) (models.CardSubscription, error) {
	var sub models.CardSubscription
	err := s.Scan(&sub.ID, &sub.UUID, &sub.UserID, &sub.ProfileUUID, &sub.CardUUID,
		&sub.CardOwnerID, &sub.CommitID, &sub.CreatedAt, &sub.ModifiedAt)
	return sub, err
}

// scanAll drains rows with scan, closing rows when done.
func scanAll[T any](rows *sql.Rows, scan func(rowScanner) (T, error)) ([]T, error) {
	defer rows.Close()

	var out []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
