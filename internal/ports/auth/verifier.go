package auth

import (
	"context"
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid operator credentials")
	// ErrNotConfigured: no hay par configurado; todo login de operador falla.
	ErrNotConfigured = errors.New("operator credentials not configured")
)

// OperatorVerifier verifica usuario/contraseña del operador.
type OperatorVerifier interface {
	VerifyOperator(ctx context.Context, username, password string) (Operator, error)
}
