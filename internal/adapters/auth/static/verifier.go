package static

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"strings"

	"shelter-records/internal/ports/auth"
)

// Verifier implementa auth.OperatorVerifier con un único par usuario/contraseña
// tomado de la configuración (admin.username / admin.password).
type Verifier struct {
	username [sha256.Size]byte
	password [sha256.Size]byte
	enabled  bool
}

// NewVerifier con usuario o contraseña vacíos devuelve un verifier deshabilitado.
func NewVerifier(username, password string) *Verifier {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return &Verifier{}
	}
	return &Verifier{
		username: sha256.Sum256([]byte(username)),
		password: sha256.Sum256([]byte(password)),
		enabled:  true,
	}
}

func (v *Verifier) Enabled() bool { return v != nil && v.enabled }

// VerifyOperator compara en tiempo constante. Se comparan digests para que
// el largo del input tampoco influya en el tiempo.
func (v *Verifier) VerifyOperator(ctx context.Context, username, password string) (auth.Operator, error) {
	if !v.Enabled() {
		return auth.Operator{}, auth.ErrNotConfigured
	}

	u := sha256.Sum256([]byte(strings.TrimSpace(username)))
	p := sha256.Sum256([]byte(password))

	userOK := subtle.ConstantTimeCompare(u[:], v.username[:])
	passOK := subtle.ConstantTimeCompare(p[:], v.password[:])
	if userOK&passOK != 1 {
		return auth.Operator{}, auth.ErrInvalidCredentials
	}
	return auth.Operator{Username: strings.TrimSpace(username)}, nil
}
