package registry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sortid/ulid/pkg/ulid"
	_ "modernc.org/sqlite"
)

// Store journals minted ULIDs in a local SQLite database. The 16-byte
// binary form is the primary key, so "ORDER BY id" lists entries in
// generation order for monotonic batches.
type Store struct {
	db *sql.DB
}

type Entry struct {
	ID        ulid.ULID
	Canonical string
	MintedMS  uint64
}

func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("registry path required")
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create registry dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open registry: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	store := &Store{db: db}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record journals a batch atomically. Re-recording an existing id is
// an error: a minted id is supposed to be unique.
func (s *Store) Record(ctx context.Context, ids []ulid.ULID) error {
	if len(ids) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin registry transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO minted_ids (id, canonical, minted_ms) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for _, id := range ids {
		if _, err := stmt.ExecContext(ctx, id, id.String(), int64(id.Time())); err != nil {
			return fmt.Errorf("insert %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit registry transaction: %w", err)
	}
	return nil
}

// List returns up to limit entries in ascending id order. A limit
// below 1 returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	query := "SELECT id, canonical, minted_ms FROM minted_ids ORDER BY id"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list minted ids: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var mintedMS int64
		if err := rows.Scan(&entry.ID, &entry.Canonical, &mintedMS); err != nil {
			return nil, fmt.Errorf("scan minted id: %w", err)
		}
		entry.MintedMS = uint64(mintedMS)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate minted ids: %w", err)
	}
	return entries, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
		return fmt.Errorf("set journal mode: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS minted_ids (
			id BLOB PRIMARY KEY CHECK (length(id) = 16),
			canonical TEXT NOT NULL UNIQUE CHECK (length(canonical) = 26),
			minted_ms INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("create minted_ids table: %w", err)
	}
	return nil
}
