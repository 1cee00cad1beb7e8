// Package txn transporta la transacción del request a través del context.
// Reemplaza la sesión global: cada operación de servicio abre su propia tx
// con un Runner y los repositorios la toman de ctx.
package txn

import (
	"context"
	"database/sql"
)

type ctxKey struct{}

var txKey = ctxKey{}

// Runner ejecuta fn dentro de una transacción. Si fn devuelve error se hace rollback.
type Runner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// RunnerFunc permite usar una función como Runner (tests).
type RunnerFunc func(ctx context.Context, fn func(ctx context.Context) error) error

func (f RunnerFunc) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return f(ctx, fn)
}

// Passthrough no abre transacción; sirve para fakes en memoria.
var Passthrough = RunnerFunc(func(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
})

// WithTx guarda la tx en el context para los repositorios.
func WithTx(ctx context.Context, tx *sql.Tx) context.Context {
	if tx == nil {
		return ctx
	}
	return context.WithValue(ctx, txKey, tx)
}

// From extrae la tx del context si existe.
func From(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey).(*sql.Tx)
	return tx, ok
}
