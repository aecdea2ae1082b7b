// Package database persists the dial between runs: the saved rotation angles,
// a few settings and the history of countdowns, in a local sqlite file.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// schemaVersion is stored in PRAGMA user_version.
const schemaVersion = 2

// Database wraps the sqlite handle.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open connects to the sqlite file at path, creating and migrating the schema
// as needed.
func Open(ctx context.Context, path string) (*Database, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrNoPath
	}
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, wrapErr(EntityDatabase, "open", path, err)
	}
	// sqlite allows a single writer; one connection avoids SQLITE_BUSY churn.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, wrapErr(EntityDatabase, "ping", path, err)
	}

	d := &Database{DB: db, dbFile: path}
	if err := d.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := d.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return d, nil
}

// Path is the file backing the database.
func (d *Database) Path() string { return d.dbFile }

// Close releases the handle. Closing twice is a no-op.
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	err := d.DB.Close()
	d.DB = nil
	return err
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS countdowns (
			id TEXT PRIMARY KEY,
			start_minutes INTEGER NOT NULL,
			start_angle REAL NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'active',
			started_at DATETIME NOT NULL,
			finished_at DATETIME
		);`,
		`CREATE INDEX IF NOT EXISTS idx_countdowns_started_at ON countdowns(started_at);`,
	}
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return wrapErr(EntityDatabase, "create tables", d.dbFile, err)
		}
	}
	return nil
}

func (d *Database) migrate(ctx context.Context) error {
	var version int
	if err := d.DB.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return wrapErr(EntityDatabase, "read schema version", d.dbFile, err)
	}
	if version < 2 {
		// v2: remaining minutes, so interrupted countdowns show how far they got.
		if err := d.addColumnIfMissing(ctx, "countdowns", "remaining", "INTEGER NOT NULL DEFAULT 0"); err != nil {
			return err
		}
	}
	if version != schemaVersion {
		if _, err := d.DB.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
			return wrapErr(EntityDatabase, "write schema version", d.dbFile, err)
		}
	}
	return nil
}

func (d *Database) addColumnIfMissing(ctx context.Context, table, column, decl string) error {
	rows, err := d.DB.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return wrapErr(EntityDatabase, "inspect "+table, d.dbFile, err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			cid       int
			name      string
			ctype     string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dfltValue, &pk); err != nil {
			return wrapErr(EntityDatabase, "inspect "+table, d.dbFile, err)
		}
		if name == column {
			return nil
		}
	}
	if err := rows.Err(); err != nil {
		return wrapErr(EntityDatabase, "inspect "+table, d.dbFile, err)
	}
	rows.Close()
	stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, decl)
	if _, err := d.DB.ExecContext(ctx, stmt); err != nil {
		return wrapErr(EntityDatabase, "add column "+column, d.dbFile, err)
	}
	return nil
}

// WithTx runs fn in a transaction, rolling back when fn fails.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		tx, err := d.DB.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if err := fn(tx); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				return errors.Join(err, rbErr)
			}
			return err
		}
		return tx.Commit()
	})
}

func (d *Database) withDBContext(ctx context.Context, fn func(ctx context.Context) error) error {
	if d == nil || d.DB == nil {
		return ErrClosed
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}

func withDBContextResult[T any](d *Database, ctx context.Context, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := d.withDBContext(ctx, func(ctx context.Context) error {
		var err error
		result, err = fn(ctx)
		return err
	})
	return result, err
}
