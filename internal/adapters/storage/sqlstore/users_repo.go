package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"shelter-records/internal/domain/users"
	"shelter-records/internal/platform/apperrors"
)

type UsersRepo struct {
	db *DB
}

func NewUsersRepo(db *DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) (int64, error) {
	var id int64
	err := r.db.queryRow(ctx, `
		INSERT INTO users (name, email, password_hash, register_date)
		VALUES (?, ?, ?, ?)
		RETURNING user_id
	`, u.Name, u.Email, u.PasswordHash, u.RegisterDate).Scan(&id)
	if isUniqueViolation(err) {
		return 0, apperrors.DuplicateEmail(u.Email)
	}
	return id, err
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, bool, error) {
	var u users.User
	err := r.db.queryRow(ctx, `
		SELECT user_id, name, email, password_hash, register_date
		FROM users
		WHERE email = ?
	`, email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.RegisterDate)
	if errors.Is(err, sql.ErrNoRows) {
		return users.User{}, false, nil
	}
	if err != nil {
		return users.User{}, false, err
	}
	return u, true, nil
}
