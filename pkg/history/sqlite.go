package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteConfig contains configuration for the SQLite history store.
type SQLiteConfig struct {
	// Path is the database file path.
	Path string

	// MaxOpenConns is the maximum number of open connections.
	// Default: 4
	MaxOpenConns int

	// WALMode enables Write-Ahead Logging.
	// Default: true
	WALMode bool

	// BusyTimeout is how long to wait when the database is locked.
	// Default: 5 seconds
	BusyTimeout time.Duration
}

// DefaultSQLiteConfig returns the default configuration.
func DefaultSQLiteConfig() *SQLiteConfig {
	return &SQLiteConfig{
		Path:         "data/history.db",
		MaxOpenConns: 4,
		WALMode:      true,
		BusyTimeout:  5 * time.Second,
	}
}

// SQLiteStore implements Store on SQLite.
type SQLiteStore struct {
	db     *sql.DB
	config *SQLiteConfig
	logger *slog.Logger
}

// NewSQLiteStore opens the database and creates the schema if needed.
func NewSQLiteStore(config *SQLiteConfig) (*SQLiteStore, error) {
	if config == nil {
		config = DefaultSQLiteConfig()
	}
	if config.MaxOpenConns <= 0 {
		config.MaxOpenConns = 4
	}
	if config.BusyTimeout <= 0 {
		config.BusyTimeout = 5 * time.Second
	}

	logger := slog.Default().With("component", "history.sqlite")

	db, err := sql.Open("sqlite3", config.Path)
	if err != nil {
		return nil, NewStorageError("sqlite", "open", err)
	}
	db.SetMaxOpenConns(config.MaxOpenConns)

	s := &SQLiteStore{db: db, config: config, logger: logger}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("history store initialized", "path", config.Path, "wal_mode", config.WALMode)
	return s, nil
}

func (s *SQLiteStore) initialize() error {
	if s.config.WALMode {
		if _, err := s.db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
			return NewStorageError("sqlite", "enable_wal", err)
		}
	}
	if _, err := s.db.Exec(fmt.Sprintf("PRAGMA busy_timeout=%d;", s.config.BusyTimeout.Milliseconds())); err != nil {
		return NewStorageError("sqlite", "set_busy_timeout", err)
	}
	if _, err := s.db.Exec(Schema); err != nil {
		return NewStorageError("sqlite", "create_schema", err)
	}
	if _, err := s.db.Exec(insertSchemaVersion, SchemaVersion); err != nil {
		return NewStorageError("sqlite", "insert_schema_version", err)
	}

	var version int
	err := s.db.QueryRow(getSchemaVersion).Scan(&version)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return NewStorageError("sqlite", "get_schema_version", err)
	}
	if version != SchemaVersion {
		return NewStorageError("sqlite", "schema_version_mismatch",
			fmt.Errorf("expected schema version %d, got %d", SchemaVersion, version))
	}
	return nil
}

// Record stores a run.
func (s *SQLiteStore) Record(ctx context.Context, run *Run) error {
	if run == nil || run.ID == "" {
		return NewStorageError("sqlite", "record", errMissingID)
	}
	counts, err := json.Marshal(run.RuleCounts)
	if err != nil {
		return NewStorageError("sqlite", "record", err)
	}

	_, err = s.db.ExecContext(ctx, `INSERT INTO validation_runs (`+runColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.FileName, run.SchemaVersion, run.Phase, run.SHA256, run.Valid,
		run.Errors, run.Warnings, run.TotalRecords, run.ProcessedRecords, run.DurationMs,
		string(counts), run.ValidatedAt.UnixNano(),
	)
	if err != nil {
		return NewStorageError("sqlite", "record", err)
	}
	return nil
}

// Get returns one run by ID.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM validation_runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, NewStorageError("sqlite", "get", err)
	}
	return run, nil
}

// List returns matching runs, newest first.
func (s *SQLiteStore) List(ctx context.Context, q Query) ([]*Run, error) {
	where, args := whereClause(q)
	query := `SELECT ` + runColumns + ` FROM validation_runs`
	if where != "" {
		query += " WHERE " + where
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 100
	}
	query += fmt.Sprintf(" ORDER BY validated_at DESC, id LIMIT %d", limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, NewStorageError("sqlite", "list", err)
	}
	defer rows.Close()

	runs := []*Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, NewStorageError("sqlite", "scan", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, NewStorageError("sqlite", "list", err)
	}
	return runs, nil
}

// DeleteBefore removes runs validated before t.
func (s *SQLiteStore) DeleteBefore(ctx context.Context, t time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM validation_runs WHERE validated_at < ?`, t.UnixNano())
	if err != nil {
		return 0, NewStorageError("sqlite", "delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, NewStorageError("sqlite", "delete", err)
	}
	return n, nil
}

// Count returns the number of stored runs.
func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM validation_runs`).Scan(&n); err != nil {
		return 0, NewStorageError("sqlite", "count", err)
	}
	return n, nil
}

// Ping checks that the database answers.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return NewStorageError("sqlite", "ping", err)
	}
	return nil
}

// Close releases the database.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return NewStorageError("sqlite", "close", err)
	}
	s.logger.Info("history store closed")
	return nil
}

func whereClause(q Query) (string, []any) {
	var conds []string
	var args []any
	if q.FileName != "" {
		conds = append(conds, "file_name = ?")
		args = append(args, q.FileName)
	}
	if q.SHA256 != "" {
		conds = append(conds, "sha256 = ?")
		args = append(args, q.SHA256)
	}
	if !q.Since.IsZero() {
		conds = append(conds, "validated_at >= ?")
		args = append(args, q.Since.UnixNano())
	}
	if !q.Until.IsZero() {
		conds = append(conds, "validated_at < ?")
		args = append(args, q.Until.UnixNano())
	}
	if q.Valid != nil {
		conds = append(conds, "valid = ?")
		args = append(args, *q.Valid)
	}
	return strings.Join(conds, " AND "), args
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*Run, error) {
	var (
		run         Run
		phase, sum  sql.NullString
		counts      sql.NullString
		validatedAt int64
	)
	err := row.Scan(&run.ID, &run.FileName, &run.SchemaVersion, &phase, &sum, &run.Valid,
		&run.Errors, &run.Warnings, &run.TotalRecords, &run.ProcessedRecords, &run.DurationMs,
		&counts, &validatedAt)
	if err != nil {
		return nil, err
	}
	run.Phase = phase.String
	run.SHA256 = sum.String
	run.ValidatedAt = time.Unix(0, validatedAt).UTC()
	if counts.Valid && counts.String != "" && counts.String != "null" {
		if err := json.Unmarshal([]byte(counts.String), &run.RuleCounts); err != nil {
			return nil, fmt.Errorf("failed to decode rule counts: %w", err)
		}
	}
	return &run, nil
}

var _ Store = (*SQLiteStore)(nil)
