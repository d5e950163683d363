// Package sqlite keeps reference tables in a SQLite file so they survive
// restarts and can be shared by several validator processes.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/oyurisousa/validador-censo-sub000/pkg/reference"
)

// Store implements reference.Lookup and reference.Importer on SQLite.
//
// A table that was never imported answers reference.ErrTableNotLoaded, even
// when an import left it empty on purpose: that case answers false for
// every code.
type Store struct {
	db        *sql.DB
	path      string
	mu        sync.RWMutex
	closeOnce sync.Once

	lookupStmt *sql.Stmt
	loadedStmt *sql.Stmt
	codesStmt  *sql.Stmt
}

// Config configures the store.
type Config struct {
	// DBPath is the SQLite file. ":memory:" keeps everything in memory.
	DBPath string

	// BusyTimeout is how long to wait for locks before failing.
	// Default: 5 seconds
	BusyTimeout time.Duration
}

// TableInfo describes one imported table.
type TableInfo struct {
	Table      reference.Table
	Count      int
	ImportedAt time.Time
}

// New opens the store at path with default settings.
func New(path string) (*Store, error) {
	return NewWithConfig(Config{DBPath: path})
}

// NewWithConfig opens the store, creating the schema if needed.
func NewWithConfig(cfg Config) (*Store, error) {
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("db path cannot be empty")
	}
	if cfg.BusyTimeout == 0 {
		cfg.BusyTimeout = 5 * time.Second
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)",
		cfg.DBPath, cfg.BusyTimeout.Milliseconds())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	s := &Store{db: db, path: cfg.DBPath}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	if err := s.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare statements: %w", err)
	}
	return s, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS reference_tables (
		table_name TEXT PRIMARY KEY,
		code_count INTEGER NOT NULL,
		imported_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS reference_codes (
		table_name TEXT NOT NULL,
		code TEXT NOT NULL,
		PRIMARY KEY (table_name, code)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) prepareStatements() error {
	var err error

	s.lookupStmt, err = s.db.Prepare(`
		SELECT 1 FROM reference_codes WHERE table_name = ? AND code = ?
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare lookup statement: %w", err)
	}

	s.loadedStmt, err = s.db.Prepare(`
		SELECT code_count, imported_at FROM reference_tables WHERE table_name = ?
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare loaded statement: %w", err)
	}

	s.codesStmt, err = s.db.Prepare(`
		SELECT code FROM reference_codes WHERE table_name = ? ORDER BY code
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare codes statement: %w", err)
	}
	return nil
}

// IsValidCode implements reference.Lookup.
func (s *Store) IsValidCode(ctx context.Context, table reference.Table, code string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var one int
	err := s.lookupStmt.QueryRowContext(ctx, table.String(), code).Scan(&one)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("failed to look up %s code: %w", table, err)
	}

	if _, err := s.info(ctx, table); err != nil {
		return false, err
	}
	return false, nil
}

// Import implements reference.Importer. The table content is replaced in
// one transaction.
func (s *Store) Import(ctx context.Context, table reference.Table, codes []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM reference_codes WHERE table_name = ?`, table.String()); err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}

	insert, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO reference_codes (table_name, code) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer insert.Close()

	inserted := 0
	for _, code := range codes {
		res, err := insert.ExecContext(ctx, table.String(), code)
		if err != nil {
			return fmt.Errorf("failed to insert %s code %q: %w", table, code, err)
		}
		n, _ := res.RowsAffected()
		inserted += int(n)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO reference_tables (table_name, code_count, imported_at) VALUES (?, ?, ?)
		ON CONFLICT (table_name) DO UPDATE SET
			code_count = excluded.code_count,
			imported_at = excluded.imported_at
	`, table.String(), inserted, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to record import of %s: %w", table, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import of %s: %w", table, err)
	}
	return nil
}

// Codes returns the sorted codes of a table.
func (s *Store) Codes(ctx context.Context, table reference.Table) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.codesStmt.QueryContext(ctx, table.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list %s codes: %w", table, err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		codes = append(codes, code)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return codes, nil
}

// Tables describes every imported table, in reference.Tables order.
func (s *Store) Tables(ctx context.Context) ([]TableInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []TableInfo
	for _, t := range reference.Tables() {
		info, err := s.info(ctx, t)
		if errors.Is(err, reference.ErrTableNotLoaded) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, nil
}

// info requires at least a read lock.
func (s *Store) info(ctx context.Context, table reference.Table) (TableInfo, error) {
	var (
		count      int
		importedAt int64
	)
	err := s.loadedStmt.QueryRowContext(ctx, table.String()).Scan(&count, &importedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return TableInfo{}, reference.ErrTableNotLoaded
	}
	if err != nil {
		return TableInfo{}, fmt.Errorf("failed to read %s metadata: %w", table, err)
	}
	return TableInfo{Table: table, Count: count, ImportedAt: time.Unix(importedAt, 0)}, nil
}

// Ping checks that the database answers.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Path returns the database file.
func (s *Store) Path() string { return s.path }

// Close releases the database.
func (s *Store) Close() error {
	var err error
	s.closeOnce.Do(func() {
		for _, stmt := range []*sql.Stmt{s.lookupStmt, s.loadedStmt, s.codesStmt} {
			if stmt != nil {
				stmt.Close()
			}
		}
		err = s.db.Close()
	})
	return err
}

var (
	_ reference.Lookup   = (*Store)(nil)
	_ reference.Importer = (*Store)(nil)
)
