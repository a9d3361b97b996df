package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/verbo-blog/verbo/internal/shared"
)

// Repository defines credential store access for authentication.
type Repository interface {
	FindByHandle(ctx context.Context, handle string) (*User, error)
}

// PostgresRepository provides PostgreSQL backed credential lookup.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgresRepository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// FindByHandle returns the user owning the login handle.
func (r *PostgresRepository) FindByHandle(ctx context.Context, handle string) (*User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, name, handle, password_hash, avatar, created_at, updated_at FROM users WHERE handle = $1`,
		handle)
	var user User
	if err := row.Scan(&user.ID, &user.Name, &user.Handle, &user.PasswordHash, &user.Avatar, &user.CreatedAt, &user.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
