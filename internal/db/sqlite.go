// Package db is the message store: personas, threads and messages persisted
// in SQLite. All durable conversation state lives here; the turn engine
// talks to it through a narrow interface and holds no state of its own.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure Go SQLite driver, no CGO

	"github.com/duetchat/duet/internal/db/migrations"
	"github.com/duetchat/duet/internal/logging"
)

// NewSQLite opens (creating if needed) the database at path, applies
// migrations and returns a Store.
func NewSQLite(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite does not tolerate concurrent writers; serialize everything
	// through a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := migrations.Run(db); err != nil {
		return nil, err
	}

	logging.Infof("SQLite database ready at %s", path)
	return NewStore(db), nil
}
