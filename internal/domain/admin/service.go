package admin

import (
	"context"
	"errors"

	"shelter-records/internal/platform/apperrors"
	"shelter-records/internal/ports/auth"
)

const msgInvalidCredentials = "Invalid username or password."

type Service struct {
	verifier auth.OperatorVerifier
}

// NewService acepta verifier nil: equivale a login deshabilitado.
func NewService(verifier auth.OperatorVerifier) *Service {
	return &Service{verifier: verifier}
}

func (s *Service) Login(ctx context.Context, username, password string) (auth.Operator, error) {
	if s.verifier == nil {
		return auth.Operator{}, apperrors.InvalidCredentials(msgInvalidCredentials)
	}

	op, err := s.verifier.VerifyOperator(ctx, username, password)
	switch {
	case err == nil:
		return op, nil
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrNotConfigured):
		return auth.Operator{}, apperrors.InvalidCredentials(msgInvalidCredentials)
	default:
		return auth.Operator{}, apperrors.AsStorage("verify operator", err)
	}
}
