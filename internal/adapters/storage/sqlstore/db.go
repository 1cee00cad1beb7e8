// Package sqlstore implementa los repositorios sobre database/sql.
// Soporta Postgres (pgx) y SQLite (modernc, sin cgo) con el mismo SQL;
// las diferencias viven en dialect.go y en los archivos de schema.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

type Options struct {
	Dialect Dialect
	DSN     string

	MaxOpenConns int
	MaxIdleConns int
}

// DB es el handle compartido por todos los repos. Implementa txn.Runner.
type DB struct {
	sql     *sql.DB
	dialect Dialect
}

// Open abre el pool y hace ping.
func Open(ctx context.Context, opts Options) (*DB, error) {
	d, err := ParseDialect(string(opts.Dialect))
	if err != nil {
		return nil, err
	}

	dsn := strings.TrimSpace(opts.DSN)
	if dsn == "" {
		return nil, fmt.Errorf("sqlstore: empty dsn")
	}
	if d == SQLite {
		dsn = sqliteDSN(dsn)
	}

	db, err := sql.Open(d.driverName(), dsn)
	if err != nil {
		return nil, err
	}

	if d == SQLite {
		// sqlite admite un solo escritor; con una conexión las tx se serializan
		// y una base :memory: no se pierde entre conexiones.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	} else {
		db.SetMaxOpenConns(orDefault(opts.MaxOpenConns, 10))
		db.SetMaxIdleConns(orDefault(opts.MaxIdleConns, 5))
		db.SetConnMaxIdleTime(5 * time.Minute)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &DB{sql: db, dialect: d}, nil
}

// New envuelve un *sql.DB ya abierto (tests de integración).
func New(db *sql.DB, d Dialect) *DB {
	return &DB{sql: db, dialect: d}
}

func (db *DB) Dialect() Dialect { return db.dialect }

// SQL expone el pool para health checks.
func (db *DB) SQL() *sql.DB { return db.sql }

func (db *DB) Ping(ctx context.Context) error { return db.sql.PingContext(ctx) }

func (db *DB) Close() error { return db.sql.Close() }

// querier es lo común entre *sql.DB y *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (db *DB) exec(ctx context.Context, q string, args ...any) (sql.Result, error) {
	return db.conn(ctx).ExecContext(ctx, db.dialect.rebind(q), args...)
}

func (db *DB) query(ctx context.Context, q string, args ...any) (*sql.Rows, error) {
	return db.conn(ctx).QueryContext(ctx, db.dialect.rebind(q), args...)
}

func (db *DB) queryRow(ctx context.Context, q string, args ...any) *sql.Row {
	return db.conn(ctx).QueryRowContext(ctx, db.dialect.rebind(q), args...)
}

func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_pragma=foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	if !strings.HasPrefix(dsn, "file:") && dsn != ":memory:" {
		dsn = "file:" + dsn
	}
	return dsn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
