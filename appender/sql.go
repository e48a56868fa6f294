package appender

import (
	"database/sql"
	"fmt"
	"regexp"
	"sync"

	"github.com/google/uuid"

	"github.com/philipp01105/pipelog/core"
	"github.com/philipp01105/pipelog/formatter"
)

// DefaultTable is the table written by the database appenders when none is
// configured.
const DefaultTable = "logs"

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,63}$`)

// validateTable rejects table names that are not plain SQL identifiers.
func validateTable(table string) (string, error) {
	if table == "" {
		return DefaultTable, nil
	}
	if !identifierPattern.MatchString(table) {
		return "", fmt.Errorf("%w: invalid table name %q", core.ErrValidation, table)
	}
	return table, nil
}

// dialect captures the SQL that differs between database engines.
type dialect struct {
	driver      string
	createTable string // fmt pattern taking the table name
	insert      string // fmt pattern taking the table name
	// prepare runs once before the schema is created
	prepare func() error
	// tune adjusts the pool after sql.Open
	tune func(db *sql.DB)
}

// sqlAppender inserts one row per record. The connection is opened and the
// schema created on the first append; later appends reuse the connection.
// A failed append drops its record and returns the error; the next append
// tries again from scratch if no connection could be established.
type sqlAppender struct {
	Base
	name    string
	dialect dialect
	dsn     string
	table   string

	// open is sql.Open, replaceable in tests
	open func(driver, dsn string) (*sql.DB, error)

	mu     sync.Mutex
	db     *sql.DB
	closed bool
}

func newSQLAppender(name string, d dialect, dsn, table string, base Base) *sqlAppender {
	return &sqlAppender{
		Base:    base,
		name:    name,
		dialect: d,
		dsn:     dsn,
		table:   table,
		open:    sql.Open,
	}
}

// Name identifies the destination
func (a *sqlAppender) Name() string {
	return a.name
}

// Table returns the table the appender writes to
func (a *sqlAppender) Table() string {
	return a.table
}

// conn returns the shared connection, opening it and creating the table on
// first use. Callers hold a.mu.
func (a *sqlAppender) conn() (*sql.DB, error) {
	if a.db != nil {
		return a.db, nil
	}
	if a.dialect.prepare != nil {
		if err := a.dialect.prepare(); err != nil {
			return nil, err
		}
	}

	db, err := a.open(a.dialect.driver, a.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if a.dialect.tune != nil {
		a.dialect.tune(db)
	}

	if _, err := db.Exec(fmt.Sprintf(a.dialect.createTable, a.table)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	a.db = db
	return db, nil
}

// Append inserts rec as a row
func (a *sqlAppender) Append(rec *core.Record) error {
	if !a.Accepts(rec) {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return a.done(core.NewDestinationError(a.name, sql.ErrConnDone))
	}

	db, err := a.conn()
	if err != nil {
		return a.done(core.NewDestinationError(a.name, err))
	}

	_, err = db.Exec(fmt.Sprintf(a.dialect.insert, a.table),
		uuid.NewString(),
		rec.Time,
		rec.Level.String(),
		rec.Message,
		rec.Logger,
		string(formatter.EncodeFields(rec.Fields)),
	)
	if err != nil {
		return a.done(core.NewDestinationError(a.name, fmt.Errorf("failed to insert record: %w", err)))
	}
	return a.done(nil)
}

// Close closes the connection if one was opened
func (a *sqlAppender) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil
	}
	a.closed = true

	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}
