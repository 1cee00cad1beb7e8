package sqlstore

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"shelter-records/internal/platform/txn"
)

// DefaultTxTimeout aplica cuando el ctx del caller no trae deadline.
const DefaultTxTimeout = 5 * time.Second

var tracer = otel.Tracer("shelter-records/sqlstore")

// WithinTx abre una tx, la deja en ctx y hace commit si fn no falla.
// Si ctx ya trae una tx, fn corre dentro de ella (sin anidar).
func (db *DB) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := txn.From(ctx); ok {
		return fn(ctx)
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultTxTimeout)
		defer cancel()
	}

	ctx, span := tracer.Start(ctx, "sqlstore.WithinTx",
		trace.WithAttributes(attribute.String("db.system", string(db.dialect))))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	// no-op después de Commit
	defer func() { _ = tx.Rollback() }()

	if err := fn(txn.WithTx(ctx, tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// conn devuelve la tx del ctx o el pool.
func (db *DB) conn(ctx context.Context) querier {
	if tx, ok := txn.From(ctx); ok {
		return tx
	}
	return db.sql
}
