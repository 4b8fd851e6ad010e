// Package store holds the sqlx adapters behind the service interfaces.
// Every operation touches exactly one row, so there are no transactions.
package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/aurora-studio/site-api/internal/auth"
	"github.com/aurora-studio/site-api/internal/models"
)

// Postgres class 23: integrity constraint violation, unique.
const uniqueViolation = "23505"

type UserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) CreateUser(ctx context.Context, u *models.User) error {
	query := `
		INSERT INTO users (full_name, email, password, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := s.db.QueryRowxContext(ctx, query, u.FullName, u.Email, u.PasswordHash, u.Role).
		Scan(&u.ID, &u.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return auth.ErrDuplicateEmail
	}
	return err
}

func (s *UserStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User

	err := s.db.GetContext(ctx, &u, `
		SELECT id, full_name, email, password, role, created_at
		FROM users
		WHERE email=$1
	`, email)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, auth.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
