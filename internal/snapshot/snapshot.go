package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-db-journal/internal/logger"
	"github.com/MKhiriev/go-db-journal/models"
	_ "github.com/mattn/go-sqlite3"
)

// Snapshot is an open working copy of one user's snapshot database.
//
// Changes are applied inside a single SQLite transaction that is started by
// the first Apply and finished by Commit. The working copy is persisted to
// the backend by [Store.Save] and removed from disk by Close.
type Snapshot struct {
	userID int64
	key    string
	path   string
	db     *sql.DB
	tx     *sql.Tx
}

func openSnapshot(ctx context.Context, userID int64, key, path string) (*Snapshot, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?_foreign_keys=1&_journal_mode=DELETE&_txlock=immediate")
	if err != nil {
		return nil, fmt.Errorf("open snapshot %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("open snapshot %s: %w", path, err)
	}

	return &Snapshot{userID: userID, key: key, path: path, db: db}, nil
}

// UserID returns the owner of the snapshot.
func (s *Snapshot) UserID() int64 { return s.userID }

// Key returns the backend key the snapshot is persisted under.
func (s *Snapshot) Key() string { return s.key }

func (s *Snapshot) begin(ctx context.Context) (*sql.Tx, error) {
	if s.tx != nil {
		return s.tx, nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin snapshot transaction: %w", err)
	}
	s.tx = tx
	return tx, nil
}

// Apply applies one change record inside the snapshot transaction.
//
// add upserts the row, modify sets only the mapped columns, delete removes
// the row by uuid. modify and delete of a row the snapshot does not hold are
// no-ops: fan-out by owner reaches snapshots that never embedded the row.
func (s *Snapshot) Apply(ctx context.Context, change models.ChangeRecord) error {
	def, err := definition(change.Table)
	if err != nil {
		return err
	}
	if change.UUID == "" {
		return fmt.Errorf("%w: empty uuid for %s", ErrInvalidChange, change.Table)
	}
	if err = def.checkColumns(change.Data); err != nil {
		return err
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}

	log := logger.FromContext(ctx)
	switch change.Action {
	case models.ActionAdd:
		return def.upsert(ctx, tx, change.UUID, change.Data)
	case models.ActionModify:
		found, err := def.update(ctx, tx, change.UUID, change.Data)
		if err != nil {
			return err
		}
		if !found {
			log.Debug().Str("func", "Snapshot.Apply").Str("table", def.name).Str("uuid", change.UUID).
				Int64("user_id", s.userID).Msg("modify of a row absent from snapshot skipped")
		}
		return nil
	case models.ActionDelete:
		found, err := def.remove(ctx, tx, change.UUID)
		if err != nil {
			return err
		}
		if !found {
			log.Debug().Str("func", "Snapshot.Apply").Str("table", def.name).Str("uuid", change.UUID).
				Int64("user_id", s.userID).Msg("delete of a row absent from snapshot skipped")
		}
		return nil
	}

	return fmt.Errorf("%w: unknown action %q", ErrInvalidChange, change.Action)
}

// Commit commits the pending transaction, if any.
func (s *Snapshot) Commit(ctx context.Context) error {
	if s.tx == nil {
		return nil
	}
	tx := s.tx
	s.tx = nil
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot transaction: %w", err)
	}
	return nil
}

// Bytes returns the committed content of the snapshot file.
func (s *Snapshot) Bytes() ([]byte, error) {
	if s.tx != nil {
		return nil, errors.New("snapshot has an uncommitted transaction")
	}
	return os.ReadFile(s.path)
}

// Count returns the number of rows of t in the snapshot.
func (s *Snapshot) Count(ctx context.Context, t models.Table) (int, error) {
	def, err := definition(t)
	if err != nil {
		return 0, err
	}
	var n int
	if err = s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+def.name).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Row reads the declared columns of one row, or returns [ErrNotFound].
func (s *Snapshot) Row(ctx context.Context, t models.Table, uuid string) (map[string]any, error) {
	def, err := definition(t)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, "SELECT * FROM "+def.name+" WHERE uuid = ?", uuid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNotFound
	}

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err = rows.Scan(ptrs...); err != nil {
		return nil, err
	}

	row := make(map[string]any, len(cols))
	for i, col := range cols {
		if b, ok := values[i].([]byte); ok {
			row[col] = string(b)
			continue
		}
		row[col] = values[i]
	}
	return row, nil
}

// Close rolls back any pending transaction, closes the database and removes
// the working copy.
func (s *Snapshot) Close() error {
	var errs []error
	if s.tx != nil {
		if err := s.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			errs = append(errs, err)
		}
		s.tx = nil
	}
	if err := s.db.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
