package users

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"shelter-records/internal/platform/apperrors"
	"shelter-records/internal/platform/civil"
	"shelter-records/internal/platform/metrics"
	"shelter-records/internal/platform/txn"
)

type Service struct {
	repo    Repository
	tx      txn.Runner
	cost    int
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewService: cost <= 0 usa bcrypt.DefaultCost (los tests pasan bcrypt.MinCost).
func NewService(repo Repository, tx txn.Runner, cost int, m *metrics.Metrics) *Service {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Service{
		repo:    repo,
		tx:      tx,
		cost:    cost,
		metrics: m,
		now:     time.Now,
	}
}

// Signup crea la cuenta. Un email repetido es DuplicateEmail, tanto si se
// detecta en la lectura previa como si lo rechaza el índice único (carrera).
func (s *Service) Signup(ctx context.Context, in SignupInput) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return User{}, apperrors.Storage("hash password", err)
	}

	u := User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		RegisterDate: civil.Today(s.now()),
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		_, exists, err := s.repo.GetByEmail(ctx, u.Email)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.DuplicateEmail(u.Email)
		}
		id, err := s.repo.Create(ctx, u)
		u.ID = id
		return err
	})
	if err != nil {
		return User{}, apperrors.AsStorage("signup", err)
	}

	s.metrics.IncUserRegistered()
	return u, nil
}

// Login no distingue "email inexistente" de "contraseña incorrecta".
func (s *Service) Login(ctx context.Context, in LoginInput) (User, error) {
	u, found, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return User{}, apperrors.AsStorage("login", err)
	}
	if !found {
		return User{}, apperrors.InvalidCredentials("")
	}

	switch err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err {
	case nil:
		return u, nil
	case bcrypt.ErrMismatchedHashAndPassword:
		return User{}, apperrors.InvalidCredentials("")
	default:
		return User{}, apperrors.Storage(fmt.Sprintf("verify password for user %d", u.ID), err)
	}
}
