package users

import "context"

type Repository interface {
	// Create devuelve apperrors.DuplicateEmail si el email ya existe.
	Create(ctx context.Context, u User) (int64, error)
	GetByEmail(ctx context.Context, email string) (User, bool, error)
}
