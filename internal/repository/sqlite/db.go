package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/medicore/clinic-api/internal/config"
)

const defaultStatementTimeout = 5 * time.Second

// DB wraps the process-scoped sqlx pool over the single store file. It is
// opened once at startup and closed once at shutdown; no repository call
// ever closes it.
type DB struct {
	*sqlx.DB
	statementTimeout time.Duration
}

func NewDB(cfg config.DatabaseConfig) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", cfg.File)

	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows a single writer; serializing through one connection
	// avoids SQLITE_BUSY under concurrent requests.
	db.SetMaxOpenConns(1)

	timeout := defaultStatementTimeout
	if cfg.StatementTimeoutSeconds > 0 {
		timeout = time.Duration(cfg.StatementTimeoutSeconds) * time.Second
	}

	return &DB{DB: db, statementTimeout: timeout}, nil
}

// StatementContext bounds a single statement execution, layered under the
// inbound request's cancellation.
func (d *DB) StatementContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d.statementTimeout)
}

// WithTx executes fn within a transaction, rolling back on error or panic.
func (d *DB) WithTx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	tx, err := d.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// IsUniqueViolation reports whether err is a UNIQUE constraint failure
// surfaced by the store.
func IsUniqueViolation(err error) bool {
	var serr *sqlite.Error
	if errors.As(err, &serr) {
		code := serr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}
