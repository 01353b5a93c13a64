package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skabdullah999/Dumurianews24/internal/domain"
)

// PostgresSessionRepository implements SessionRepository using PostgreSQL.
type PostgresSessionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSessionRepository creates a new PostgresSessionRepository.
func NewPostgresSessionRepository(pool *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{pool: pool}
}

// Create stores a new session.
func (r *PostgresSessionRepository) Create(ctx context.Context, s *domain.Session) error {
	_, err := r.pool.Exec(ctx,
		"INSERT INTO sessions (token, admin_user_id, expires, created) VALUES ($1, $2, $3, $4)",
		s.Token, s.AdminUserID, s.Expires, s.Created,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// Get returns the session with the given token or domain.ErrNotFound.
func (r *PostgresSessionRepository) Get(ctx context.Context, token string) (*domain.Session, error) {
	var s domain.Session
	err := r.pool.QueryRow(ctx,
		"SELECT token, admin_user_id, expires, created FROM sessions WHERE token = $1",
		token,
	).Scan(&s.Token, &s.AdminUserID, &s.Expires, &s.Created)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query session: %w", err)
	}
	return &s, nil
}

// Delete removes a session by token. Deleting an absent session is not an
// error; logout must always succeed locally.
func (r *PostgresSessionRepository) Delete(ctx context.Context, token string) error {
	if _, err := r.pool.Exec(ctx, "DELETE FROM sessions WHERE token = $1", token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteForUser removes every session belonging to an admin user. Login
// calls this first so one account holds at most one live session.
func (r *PostgresSessionRepository) DeleteForUser(ctx context.Context, adminUserID string) error {
	if _, err := r.pool.Exec(ctx, "DELETE FROM sessions WHERE admin_user_id = $1", adminUserID); err != nil {
		return fmt.Errorf("delete user sessions: %w", err)
	}
	return nil
}
