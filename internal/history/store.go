package history

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump when the schema changes.
const schemaVersion = 1

// ErrSchemaMismatch indicates the journal was written by an incompatible
// version.
var ErrSchemaMismatch = errors.New("history schema version mismatch")

// Operation is one journal entry.
type Operation struct {
	ID           string    `json:"id"`
	Verb         string    `json:"verb"`
	SourcePath   string    `json:"source_path,omitempty"`
	TargetPath   string    `json:"target_path"`
	SHA256Before string    `json:"sha256_before,omitempty"`
	SHA256After  string    `json:"sha256_after,omitempty"`
	Detail       string    `json:"detail,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Store manages journal persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the journal database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

func (s *Store) initSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	var version sql.NullInt64
	err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := s.db.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
			return fmt.Errorf("write schema version: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	}
	if version.Int64 != schemaVersion {
		return fmt.Errorf("%w: database has %d, this build expects %d", ErrSchemaMismatch, version.Int64, schemaVersion)
	}
	return nil
}

// Record inserts a journal entry, assigning it an ID and timestamp. The
// completed entry is returned.
func (s *Store) Record(ctx context.Context, op Operation) (*Operation, error) {
	if op.Verb == "" {
		return nil, errors.New("record operation: verb is required")
	}
	if op.TargetPath == "" {
		return nil, errors.New("record operation: target path is required")
	}
	op.ID = uuid.NewString()
	op.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO operations (
            id, verb, source_path, target_path,
            sha256_before, sha256_after, detail, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		op.ID,
		op.Verb,
		nullableString(op.SourcePath),
		op.TargetPath,
		nullableString(op.SHA256Before),
		nullableString(op.SHA256After),
		nullableString(op.Detail),
		op.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert operation: %w", err)
	}
	return &op, nil
}

// Recent returns up to limit journal entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Operation, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, verb, source_path, target_path,
                sha256_before, sha256_after, detail, created_at
           FROM operations
          ORDER BY created_at DESC
          LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query operations: %w", err)
	}
	defer rows.Close()

	var ops []Operation
	for rows.Next() {
		var (
			op        Operation
			source    sql.NullString
			before    sql.NullString
			after     sql.NullString
			detail    sql.NullString
			createdAt string
		)
		if err := rows.Scan(&op.ID, &op.Verb, &source, &op.TargetPath, &before, &after, &detail, &createdAt); err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}
		op.SourcePath = source.String
		op.SHA256Before = before.String
		op.SHA256After = after.String
		op.Detail = detail.String
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			op.CreatedAt = ts
		}
		ops = append(ops, op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate operations: %w", err)
	}
	return ops, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
