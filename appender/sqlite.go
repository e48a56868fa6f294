package appender

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/philipp01105/pipelog/core"
	"github.com/philipp01105/pipelog/filter"
)

const sqliteCreateTable = `
CREATE TABLE IF NOT EXISTS %s (
	id TEXT PRIMARY KEY,
	timestamp DATETIME NOT NULL,
	level TEXT NOT NULL,
	message TEXT NOT NULL,
	logger TEXT,
	metadata TEXT
)`

const sqliteInsert = `INSERT INTO %s (id, timestamp, level, message, logger, metadata) VALUES (?, ?, ?, ?, ?, ?)`

// SQLite writes records into a SQLite database
type SQLite struct {
	*sqlAppender
	path string
}

// SQLiteConfig holds configuration for the SQLite appender
type SQLiteConfig struct {
	// Path is the database file (":memory:" for an in-memory database)
	Path string
	// Table to insert into (default: "logs")
	Table string
	// Filters gate which records are written
	Filters []filter.Filter
}

// NewSQLite creates a SQLite appender. No connection is made until the
// first record is appended.
func NewSQLite(cfg SQLiteConfig) (*SQLite, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("%w: sqlite database path is required", core.ErrConfiguration)
	}
	table, err := validateTable(cfg.Table)
	if err != nil {
		return nil, err
	}

	d := dialect{
		driver:      "sqlite3",
		createTable: sqliteCreateTable,
		insert:      sqliteInsert,
		prepare: func() error {
			if cfg.Path == ":memory:" {
				return nil
			}
			return os.MkdirAll(filepath.Dir(cfg.Path), 0755)
		},
		tune: func(db *sql.DB) {
			// SQLite allows a single writer; an in-memory database also
			// lives only as long as its one connection.
			db.SetMaxOpenConns(1)
		},
	}

	dsn := cfg.Path
	if cfg.Path != ":memory:" {
		dsn += "?_journal_mode=WAL&_busy_timeout=5000"
	}

	return &SQLite{
		sqlAppender: newSQLAppender("sqlite:"+cfg.Path, d, dsn, table, NewBase(nil, cfg.Filters...)),
		path:        cfg.Path,
	}, nil
}

// Path returns the database path
func (s *SQLite) Path() string {
	return s.path
}
