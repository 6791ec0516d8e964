// audit_sqlite.go: optional SQLite-backed persistence for rejection events.
//
// This is a trimmed adaptation of the teacher's unified audit database: one
// table, one schema version, no migration ladder, because a rejection
// record is one flat row. It exists for callers who want a queryable
// history instead of (or in addition to) the JSONL trail in audit.go.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package aegis

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteAuditStore persists RejectionEvents to a SQLite database so a host
// can count stored rejections by kind (CountByKind) and drop old rows
// (Prune) instead of grepping a JSONL file. It offers no other queries.
type SQLiteAuditStore struct {
	db         *sql.DB
	insertStmt *sql.Stmt
	mu         sync.Mutex
	closed     bool
}

// OpenSQLiteAuditStore opens (creating if necessary) a SQLite database at
// dbPath and ensures the rejections table exists.
func OpenSQLiteAuditStore(dbPath string) (*SQLiteAuditStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return nil, fmt.Errorf("aegis: create audit database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL", dbPath))
	if err != nil {
		return nil, fmt.Errorf("aegis: open audit database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("aegis: ping audit database: %w", err)
	}

	store := &SQLiteAuditStore{db: db}
	if err := store.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	if err := store.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteAuditStore) ensureSchema() error {
	const createTableSQL = `
	CREATE TABLE IF NOT EXISTS rejections (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT NOT NULL,
		entry_point TEXT NOT NULL,
		accepted INTEGER NOT NULL,
		kind TEXT,
		detail TEXT,
		process_id INTEGER NOT NULL,
		checksum TEXT NOT NULL
	);`
	if _, err := s.db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("aegis: create rejections table: %w", err)
	}
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_rejections_timestamp ON rejections(timestamp)",
		"CREATE INDEX IF NOT EXISTS idx_rejections_kind ON rejections(kind)",
	}
	for _, idx := range indexes {
		if _, err := s.db.Exec(idx); err != nil {
			return fmt.Errorf("aegis: create index: %w", err)
		}
	}
	return nil
}

func (s *SQLiteAuditStore) prepareStatements() error {
	stmt, err := s.db.Prepare(`
		INSERT INTO rejections (timestamp, entry_point, accepted, kind, detail, process_id, checksum)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("aegis: prepare insert statement: %w", err)
	}
	s.insertStmt = stmt
	return nil
}

// Write persists a batch of rejection events in a single transaction.
func (s *SQLiteAuditStore) Write(events []RejectionEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("aegis: audit store is closed")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("aegis: begin transaction: %w", err)
	}
	stmt := tx.Stmt(s.insertStmt)
	for _, e := range events {
		accepted := 0
		if e.Accepted {
			accepted = 1
		}
		if _, err := stmt.Exec(e.Timestamp.Format("2006-01-02T15:04:05.000000000Z07:00"), e.EntryPoint, accepted, string(e.Kind), e.Detail, e.ProcessID, e.Checksum); err != nil {
			tx.Rollback()
			return fmt.Errorf("aegis: insert rejection event: %w", err)
		}
	}
	return tx.Commit()
}

// CountByKind returns how many stored rejections carry the given kind.
func (s *SQLiteAuditStore) CountByKind(kind ErrorKind) (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM rejections WHERE kind = ?", string(kind)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("aegis: count rejections: %w", err)
	}
	return count, nil
}

// Prune deletes rejection rows whose timestamp sorts before the given
// boundary, mirroring the teacher's periodic maintenance pass. Timestamps
// are compared as strings, so the boundary must use the same layout Write
// stores ("2006-01-02T15:04:05.000000000Z07:00").
func (s *SQLiteAuditStore) Prune(beforeRFC3339Nano string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM rejections WHERE timestamp < ?", beforeRFC3339Nano)
	if err != nil {
		return 0, fmt.Errorf("aegis: prune rejections: %w", err)
	}
	return res.RowsAffected()
}

// Close releases the underlying database handle.
func (s *SQLiteAuditStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.insertStmt != nil {
		s.insertStmt.Close()
	}
	return s.db.Close()
}
