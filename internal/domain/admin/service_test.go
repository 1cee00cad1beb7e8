package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelter-records/internal/adapters/auth/static"
	"shelter-records/internal/platform/apperrors"
	"shelter-records/internal/ports/auth"
)

type brokenVerifier struct{}

func (brokenVerifier) VerifyOperator(ctx context.Context, username, password string) (auth.Operator, error) {
	return auth.Operator{}, errors.New("vault unreachable")
}

func TestLogin_OnlyConfiguredPair(t *testing.T) {
	svc := NewService(static.NewVerifier("keeper", "s3cret"))

	op, err := svc.Login(context.Background(), "keeper", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "keeper", op.Username)

	_, err = svc.Login(context.Background(), "admin", "password")
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidCredentials))
	assert.Equal(t, "Invalid username or password.", err.Error())
}

func TestLogin_NoPairConfigured(t *testing.T) {
	for _, svc := range []*Service{NewService(nil), NewService(static.NewVerifier("", ""))} {
		_, err := svc.Login(context.Background(), "admin", "password")
		assert.True(t, apperrors.Is(err, apperrors.KindInvalidCredentials))
	}
}

func TestLogin_VerifierFailureIsStorage(t *testing.T) {
	_, err := NewService(brokenVerifier{}).Login(context.Background(), "a", "b")
	assert.True(t, apperrors.Is(err, apperrors.KindStorage))
}
