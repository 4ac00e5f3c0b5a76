package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-db-journal/internal/logger"
	"github.com/MKhiriev/go-db-journal/models"
	"github.com/jackc/pgerrcode"
)

type sessionFactory struct {
	*DB
	logger *logger.Logger
}

// NewSessionFactory constructs a [SessionFactory] backed by db.
func NewSessionFactory(db *DB, logger *logger.Logger) SessionFactory {
	return &sessionFactory{
		DB:     db,
		logger: logger,
	}
}

func (f *sessionFactory) Begin(ctx context.Context) (Session, error) {
	tx, err := f.DB.BeginTx(ctx, nil)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sessionFactory.Begin").
			Msg("failed to begin session transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	return &session{tx: tx}, nil
}

// session records every change it writes. Lock transitions of profiles and
// cards are recorded as deletes (locked) and adds (unlocked) because locked
// rows are not part of any snapshot.
type session struct {
	tx      *sql.Tx
	changes models.Changeset
	closed  bool
}

func (s *session) Commit() (models.Changeset, error) {
	if s.closed {
		return models.Changeset{}, ErrSessionClosed
	}
	s.closed = true

	if err := s.tx.Commit(); err != nil {
		return models.Changeset{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return s.changes, nil
}

// Rollback discards the transaction. Calling it after Commit is a no-op so
// it can be deferred.
func (s *session) Rollback() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.changes = models.Changeset{}
	return s.tx.Rollback()
}

func (s *session) ProfileByUUID(ctx context.Context, uuid string) (models.Profile, error) {
	return s.selectProfile(ctx, uuid, false)
}

func (s *session) CardByUUID(ctx context.Context, uuid string) (models.Card, error) {
	return s.selectCard(ctx, uuid, false)
}

// ── profiles ────────────────────────────────────────────────────────────────

func (s *session) CreateProfile(ctx context.Context, p models.Profile) (models.Profile, error) {
	if s.closed {
		return models.Profile{}, ErrSessionClosed
	}

	query, args, err := psql.Insert("profiles").
		Columns("uuid", "user_id", "name", "email", "description", "avatar_url", "is_private").
		Values(p.UUID, p.UserID, p.Name, p.Email, p.Description, p.AvatarURL, p.IsPrivate).
		Suffix("RETURNING id, is_locked, commit_id, created_at, modified_at").
		ToSql()
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = s.tx.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.IsLocked, &p.CommitID, &p.CreatedAt, &p.ModifiedAt)
	if err != nil {
		return models.Profile{}, s.execError(ctx, "session.CreateProfile", p.UUID, err)
	}

	s.changes.Added = append(s.changes.Added, p)
	return p, nil
}

func (s *session) UpdateProfile(ctx context.Context, userID int64, uuid string, patch models.ProfilePatch) (models.Profile, error) {
	before, err := s.selectProfile(ctx, uuid, true)
	if err != nil {
		return models.Profile{}, err
	}
	if before.UserID != userID {
		return models.Profile{}, ErrForbidden
	}

	after := before
	set := map[string]any{}
	setString(set, "name", &after.Name, patch.Name)
	setString(set, "email", &after.Email, patch.Email)
	setString(set, "description", &after.Description, patch.Description)
	setString(set, "avatar_url", &after.AvatarURL, patch.AvatarURL)
	setBool(set, "is_private", &after.IsPrivate, patch.IsPrivate)
	setBool(set, "is_locked", &after.IsLocked, patch.IsLocked)
	if len(set) == 0 {
		return before, nil
	}

	if err = s.bump(ctx, "profiles", before.ID, set, &after.CommitID, &after.ModifiedAt); err != nil {
		return models.Profile{}, s.execError(ctx, "session.UpdateProfile", uuid, err)
	}

	s.recordLockTransition(before, after, before.IsLocked, after.IsLocked)
	return after, nil
}

func (s *session) DeleteProfile(ctx context.Context, userID int64, uuid string) error {
	before, err := s.selectProfile(ctx, uuid, true)
	if err != nil {
		return err
	}
	if before.UserID != userID {
		return ErrForbidden
	}

	if err = s.softDelete(ctx, "profiles", before.ID); err != nil {
		return s.execError(ctx, "session.DeleteProfile", uuid, err)
	}

	if !before.IsLocked {
		s.changes.Deleted = append(s.changes.Deleted, before)
	}
	return nil
}

// ── cards ───────────────────────────────────────────────────────────────────

func (s *session) CreateCard(ctx context.Context, c models.Card) (models.Card, error) {
	if s.closed {
		return models.Card{}, ErrSessionClosed
	}

	query, args, err := psql.Insert("cards").
		Columns("uuid", "profile_uuid", "user_id", "title", "content", "is_private").
		Values(c.UUID, c.ProfileUUID, c.UserID, c.Title, c.Content, c.IsPrivate).
		Suffix("RETURNING id, is_locked, commit_id, created_at, modified_at").
		ToSql()
	if err != nil {
		return models.Card{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = s.tx.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.IsLocked, &c.CommitID, &c.CreatedAt, &c.ModifiedAt)
	if err != nil {
		return models.Card{}, s.execError(ctx, "session.CreateCard", c.UUID, err)
	}

	s.changes.Added = append(s.changes.Added, c)
	return c, nil
}

func (s *session) UpdateCard(ctx context.Context, userID int64, uuid string, patch models.CardPatch) (models.Card, error) {
	before, err := s.selectCard(ctx, uuid, true)
	if err != nil {
		return models.Card{}, err
	}
	if before.UserID != userID {
		return models.Card{}, ErrForbidden
	}

	after := before
	set := map[string]any{}
	setString(set, "title", &after.Title, patch.Title)
	setString(set, "content", &after.Content, patch.Content)
	setBool(set, "is_private", &after.IsPrivate, patch.IsPrivate)
	setBool(set, "is_locked", &after.IsLocked, patch.IsLocked)
	if len(set) == 0 {
		return before, nil
	}

	if err = s.bump(ctx, "cards", before.ID, set, &after.CommitID, &after.ModifiedAt); err != nil {
		return models.Card{}, s.execError(ctx, "session.UpdateCard", uuid, err)
	}

	s.recordLockTransition(before, after, before.IsLocked, after.IsLocked)
	return after, nil
}

func (s *session) DeleteCard(ctx context.Context, userID int64, uuid string) error {
	before, err := s.selectCard(ctx, uuid, true)
	if err != nil {
		return err
	}
	if before.UserID != userID {
		return ErrForbidden
	}

	if err = s.softDelete(ctx, "cards", before.ID); err != nil {
		return s.execError(ctx, "session.DeleteCard", uuid, err)
	}

	if !before.IsLocked {
		s.changes.Deleted = append(s.changes.Deleted, before)
	}
	return nil
}

// ── relations ───────────────────────────────────────────────────────────────

// UpsertRelation inserts the edge or changes the status of the existing edge
// between the same two profiles.
func (s *session) UpsertRelation(ctx context.Context, r models.ProfileRelation) (models.ProfileRelation, error) {
	if s.closed {
		return models.ProfileRelation{}, ErrSessionClosed
	}

	query, args, err := psql.Select(relationColumns...).
		From("profile_relations").
		Where(sq.Eq{"from_profile_uuid": r.FromProfileUUID, "to_profile_uuid": r.ToProfileUUID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return models.ProfileRelation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	before, err := scanRelation(s.tx.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return s.insertRelation(ctx, r)
	case err != nil:
		return models.ProfileRelation{}, s.execError(ctx, "session.UpsertRelation", r.UUID, err)
	}

	if before.Status == r.Status {
		return before, nil
	}

	after := before
	after.Status = r.Status
	if err = s.bump(ctx, "profile_relations", before.ID, map[string]any{"status": string(r.Status)}, &after.CommitID, &after.ModifiedAt); err != nil {
		return models.ProfileRelation{}, s.execError(ctx, "session.UpsertRelation", before.UUID, err)
	}

	s.changes.Modified = append(s.changes.Modified, models.Modification{Before: before, After: after})
	return after, nil
}

func (s *session) insertRelation(ctx context.Context, r models.ProfileRelation) (models.ProfileRelation, error) {
	query, args, err := psql.Insert("profile_relations").
		Columns("uuid", "user_id", "from_profile_uuid", "to_profile_uuid", "from_user_id", "to_user_id", "status").
		Values(r.UUID, r.UserID, r.FromProfileUUID, r.ToProfileUUID, r.FromUserID, r.ToUserID, string(r.Status)).
		Suffix("RETURNING id, commit_id, created_at, modified_at").
		ToSql()
	if err != nil {
		return models.ProfileRelation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = s.tx.QueryRowContext(ctx, query, args...).Scan(&r.ID, &r.CommitID, &r.CreatedAt, &r.ModifiedAt)
	if err != nil {
		return models.ProfileRelation{}, s.execError(ctx, "session.UpsertRelation", r.UUID, err)
	}

	s.changes.Added = append(s.changes.Added, r)
	return r, nil
}

func (s *session) DeleteRelation(ctx context.Context, userID int64, uuid string) error {
	if s.closed {
		return ErrSessionClosed
	}

	query, args, err := psql.Delete("profile_relations").
		Where(sq.Eq{"uuid": uuid}).
		Suffix("RETURNING " + strings.Join(relationColumns, ", ")).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	before, err := deleteReturning(ctx, s, "session.DeleteRelation", uuid, query, args, scanRelation)
	if err != nil {
		return err
	}
	if before.FromUserID != userID {
		return ErrForbidden
	}

	s.changes.Deleted = append(s.changes.Deleted, before)
	return nil
}

// ── subscriptions ───────────────────────────────────────────────────────────

func (s *session) CreateSubscription(ctx context.Context, sub models.CardSubscription) (models.CardSubscription, error) {
	if s.closed {
		return models.CardSubscription{}, ErrSessionClosed
	}

	query, args, err := psql.Insert("card_subscriptions").
		Columns("uuid", "user_id", "profile_uuid", "card_uuid", "card_owner_id").
		Values(sub.UUID, sub.UserID, sub.ProfileUUID, sub.CardUUID, sub.CardOwnerID).
		Suffix("RETURNING id, commit_id, created_at, modified_at").
		ToSql()
	if err != nil {
		return models.CardSubscription{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = s.tx.QueryRowContext(ctx, query, args...).Scan(&sub.ID, &sub.CommitID, &sub.CreatedAt, &sub.ModifiedAt)
	if err != nil {
		return models.CardSubscription{}, s.execError(ctx, "session.CreateSubscription", sub.UUID, err)
	}

	s.changes.Added = append(s.changes.Added, sub)
	return sub, nil
}

func (s *session) DeleteSubscription(ctx context.Context, userID int64, uuid string) error {
	if s.closed {
		return ErrSessionClosed
	}

	query, args, err := psql.Delete("card_subscriptions").
		Where(sq.Eq{"uuid": uuid}).
		Suffix("RETURNING " + strings.Join(subscriptionColumns, ", ")).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	before, err := deleteReturning(ctx, s, "session.DeleteSubscription", uuid, query, args, scanSubscription)
	if err != nil {
		return err
	}
	if before.UserID != userID {
		return ErrForbidden
	}

	s.changes.Deleted = append(s.changes.Deleted, before)
	return nil
}

// ── helpers ─────────────────────────────────────────────────────────────────

func (s *session) selectProfile(ctx context.Context, uuid string, forUpdate bool) (models.Profile, error) {
	if s.closed {
		return models.Profile{}, ErrSessionClosed
	}

	builder := psql.Select(profileColumns...).From("profiles").Where(sq.Eq{"uuid": uuid, "deleted_at": nil})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	p, err := scanProfile(s.tx.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrRowNotFound
	}
	if err != nil {
		return models.Profile{}, s.execError(ctx, "session.selectProfile", uuid, err)
	}
	return p, nil
}

func (s *session) selectCard(ctx context.Context, uuid string, forUpdate bool) (models.Card, error) {
	if s.closed {
		return models.Card{}, ErrSessionClosed
	}

	builder := psql.Select(cardColumns...).From("cards").Where(sq.Eq{"uuid": uuid, "deleted_at": nil})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return models.Card{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	c, err := scanCard(s.tx.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Card{}, ErrRowNotFound
	}
	if err != nil {
		return models.Card{}, s.execError(ctx, "session.selectCard", uuid, err)
	}
	return c, nil
}

// bump writes the changed columns, increments commit_id and refreshes
// modified_at, scanning the new values into commitID and modifiedAt.
func (s *session) bump(ctx context.Context, table string, id int64, set map[string]any, commitID, modifiedAt any) error {
	query, args, err := psql.Update(table).
		SetMap(set).
		Set("commit_id", sq.Expr("commit_id + 1")).
		Set("modified_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING commit_id, modified_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return s.tx.QueryRowContext(ctx, query, args...).Scan(commitID, modifiedAt)
}

func (s *session) softDelete(ctx context.Context, table string, id int64) error {
	query, args, err := psql.Update(table).
		Set("deleted_at", sq.Expr("NOW()")).
		Set("commit_id", sq.Expr("commit_id + 1")).
		Set("modified_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	_, err = s.tx.ExecContext(ctx, query, args...)
	return err
}

func (s *session) recordLockTransition(before, after models.Row, wasLocked, isLocked bool) {
	switch {
	case !wasLocked && isLocked:
		s.changes.Deleted = append(s.changes.Deleted, before)
	case wasLocked && !isLocked:
		s.changes.Added = append(s.changes.Added, after)
	case !isLocked:
		s.changes.Modified = append(s.changes.Modified, models.Modification{Before: before, After: after})
	}
}

// deleteReturning runs a DELETE ... RETURNING query and scans the removed row.
// The caller rolls the session back when the row turns out to be foreign.
func deleteReturning[T any](ctx context.Context, s *session, funcName, uuid, query string, args []any, scan func(rowScanner) (T, error)) (T, error) {
	var zero T
	item, err := scan(s.tx.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return zero, ErrRowNotFound
	}
	if err != nil {
		return zero, s.execError(ctx, funcName, uuid, err)
	}
	return item, nil
}

func (s *session) execError(ctx context.Context, funcName, uuid string, err error) error {
	logger.FromContext(ctx).Err(err).
		Str("func", funcName).
		Str("uuid", uuid).
		Str("pg_code", postgresError(err)).
		Msg("session statement failed")

	if postgresError(err) == pgerrcode.UniqueViolation {
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

func setString(set map[string]any, column string, field *string, value *string) {
	if value == nil || *value == *field {
		return
	}
	*field = *value
	set[column] = *value
}

func setBool(set map[string]any, column string, field *bool, value *bool) {
	if value == nil || *value == *field {
		return
	}
	*field = *value
	set[column] = *value
}
