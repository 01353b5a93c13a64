package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skabdullah999/Dumurianews24/internal/domain"
)

// PostgresAdminUserRepository implements AdminUserRepository using PostgreSQL.
type PostgresAdminUserRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAdminUserRepository creates a new PostgresAdminUserRepository.
func NewPostgresAdminUserRepository(pool *pgxpool.Pool) *PostgresAdminUserRepository {
	return &PostgresAdminUserRepository{pool: pool}
}

// Count returns the number of administrative users. The bootstrap signup
// guard runs this immediately before account creation.
func (r *PostgresAdminUserRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM admin_users").Scan(&count); err != nil {
		return 0, fmt.Errorf("count admin users: %w", err)
	}
	return count, nil
}

// GetByEmail returns the admin user with the given email or domain.ErrNotFound.
func (r *PostgresAdminUserRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	var u domain.AdminUser
	err := r.pool.QueryRow(ctx,
		"SELECT id, email, password_hash, created_at FROM admin_users WHERE email = $1",
		email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query admin user by email: %w", err)
	}
	return &u, nil
}

// Insert stores a new administrative user.
func (r *PostgresAdminUserRepository) Insert(ctx context.Context, u *domain.AdminUser) error {
	_, err := r.pool.Exec(ctx,
		"INSERT INTO admin_users (id, email, password_hash, created_at) VALUES ($1, $2, $3, $4)",
		u.ID, u.Email, u.PasswordHash, u.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}
	return nil
}
