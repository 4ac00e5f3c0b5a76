// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package snapshot

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-db-journal/models"
)

// tableDef describes how one synced entity is laid out inside a snapshot.
// The column set is a reduced projection of the transactional store row.
type tableDef struct {
	name    string
	columns []string
	ddl     string
}

// definition returns the snapshot layout for t. The switch is exhaustive
// over [models.Table]; unknown values are rejected.
func definition(t models.Table) (tableDef, error) {
	switch t {
	case models.TableProfile:
		return tableDef{
			name: "profiles",
			columns: []string{
				"uuid", "user_id", "name", "email", "description", "avatar_url",
				"is_private", "commit_id", "modified_at",
			},
			ddl: `CREATE TABLE IF NOT EXISTS profiles (
	uuid        TEXT PRIMARY KEY,
	user_id     INTEGER NOT NULL,
	name        TEXT,
	email       TEXT,
	description TEXT,
	avatar_url  TEXT,
	is_private  INTEGER NOT NULL DEFAULT 0,
	commit_id   INTEGER,
	modified_at TEXT
)`,
		}, nil
	case models.TableCard:
		return tableDef{
			name: "cards",
			columns: []string{
				"uuid", "profile_uuid", "user_id", "title", "content",
				"is_private", "commit_id", "modified_at",
			},
			ddl: `CREATE TABLE IF NOT EXISTS cards (
	uuid         TEXT PRIMARY KEY,
	profile_uuid TEXT NOT NULL REFERENCES profiles (uuid) ON DELETE CASCADE,
	user_id      INTEGER NOT NULL,
	title        TEXT,
	content      TEXT,
	is_private   INTEGER NOT NULL DEFAULT 0,
	commit_id    INTEGER,
	modified_at  TEXT
)`,
		}, nil
	case models.TableProfileRelation:
		return tableDef{
			name: "profile_relations",
			columns: []string{
				"uuid", "user_id", "from_profile_uuid", "to_profile_uuid",
				"status", "commit_id", "modified_at",
			},
			ddl: `CREATE TABLE IF NOT EXISTS profile_relations (
	uuid              TEXT PRIMARY KEY,
	user_id           INTEGER NOT NULL,
	from_profile_uuid TEXT NOT NULL REFERENCES profiles (uuid) ON DELETE CASCADE,
	to_profile_uuid   TEXT NOT NULL REFERENCES profiles (uuid) ON DELETE CASCADE,
	status            TEXT NOT NULL,
	commit_id         INTEGER,
	modified_at       TEXT
)`,
		}, nil
	case models.TableCardSubscription:
		return tableDef{
			name: "card_subscriptions",
			columns: []string{
				"uuid", "user_id", "profile_uuid", "card_uuid", "card_owner_id",
				"commit_id", "modified_at",
			},
			ddl: `CREATE TABLE IF NOT EXISTS card_subscriptions (
	uuid          TEXT PRIMARY KEY,
	user_id       INTEGER NOT NULL,
	profile_uuid  TEXT NOT NULL REFERENCES profiles (uuid) ON DELETE CASCADE,
	card_uuid     TEXT NOT NULL REFERENCES cards (uuid) ON DELETE CASCADE,
	card_owner_id INTEGER,
	commit_id     INTEGER,
	modified_at   TEXT
)`,
		}, nil
	}

	return tableDef{}, fmt.Errorf("%w: unknown table %s", ErrInvalidChange, t)
}

// Columns returns the declared snapshot columns of t, or nil for an unknown table.
func Columns(t models.Table) []string {
	def, err := definition(t)
	if err != nil {
		return nil
	}
	return slices.Clone(def.columns)
}

// Project restricts a full row value map to the columns declared for t.
func Project(t models.Table, values map[string]any) map[string]any {
	def, err := definition(t)
	if err != nil {
		return nil
	}

	projected := make(map[string]any, len(def.columns))
	for _, col := range def.columns {
		if v, ok := values[col]; ok {
			projected[col] = v
		}
	}
	return projected
}

func (d tableDef) checkColumns(data map[string]any) error {
	for col := range data {
		if !slices.Contains(d.columns, col) {
			return fmt.Errorf("%w: column %q is not declared for %s", ErrSchemaViolation, col, d.name)
		}
	}
	return nil
}

// upsert inserts a row or overwrites the mapped columns of an existing one.
// Existing rows are updated in place so that dependent rows are not cascaded.
func (d tableDef) upsert(ctx context.Context, tx *sql.Tx, uuid string, data map[string]any) error {
	cols := make([]string, 0, len(data)+1)
	vals := make([]any, 0, len(data)+1)
	cols = append(cols, "uuid")
	vals = append(vals, uuid)

	for _, col := range d.columns {
		v, ok := data[col]
		if !ok || col == "uuid" {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, v)
	}

	assignments := make([]string, 0, len(cols)-1)
	for _, col := range cols[1:] {
		assignments = append(assignments, col+" = excluded."+col)
	}
	conflict := "ON CONFLICT (uuid) DO NOTHING"
	if len(assignments) > 0 {
		conflict = "ON CONFLICT (uuid) DO UPDATE SET " + strings.Join(assignments, ", ")
	}

	query, args, err := sq.Insert(d.name).Columns(cols...).Values(vals...).Suffix(conflict).ToSql()
	if err != nil {
		return fmt.Errorf("build insert into %s: %w", d.name, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert into %s uuid=%s: %w", d.name, uuid, err)
	}
	return nil
}

// update sets the mapped columns of an existing row and reports whether the
// row was present.
func (d tableDef) update(ctx context.Context, tx *sql.Tx, uuid string, data map[string]any) (bool, error) {
	set := make(map[string]any, len(data))
	for col, v := range data {
		if col != "uuid" {
			set[col] = v
		}
	}

	if len(set) == 0 {
		var exists int
		err := tx.QueryRowContext(ctx, "SELECT 1 FROM "+d.name+" WHERE uuid = ?", uuid).Scan(&exists)
		if err == sql.ErrNoRows {
			return false, nil
		}
		return err == nil, err
	}

	query, args, err := sq.Update(d.name).SetMap(set).Where(sq.Eq{"uuid": uuid}).ToSql()
	if err != nil {
		return false, fmt.Errorf("build update of %s: %w", d.name, err)
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update %s uuid=%s: %w", d.name, uuid, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// remove deletes a row by uuid and reports whether it was present.
func (d tableDef) remove(ctx context.Context, tx *sql.Tx, uuid string) (bool, error) {
	query, args, err := sq.Delete(d.name).Where(sq.Eq{"uuid": uuid}).ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete from %s: %w", d.name, err)
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete from %s uuid=%s: %w", d.name, uuid, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func createSchema(ctx context.Context, tx *sql.Tx) error {
	for _, t := range models.Tables {
		def, err := definition(t)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, def.ddl); err != nil {
			return fmt.Errorf("create table %s: %w", def.name, err)
		}
	}
	return nil
}
