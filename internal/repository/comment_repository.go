package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skabdullah999/Dumurianews24/internal/domain"
)

const commentColumns = "id, news_id, name, text, date, is_approved"

// PostgresCommentRepository implements CommentRepository using PostgreSQL.
type PostgresCommentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository.
func NewPostgresCommentRepository(pool *pgxpool.Pool) *PostgresCommentRepository {
	return &PostgresCommentRepository{pool: pool}
}

// ListApproved returns approved comments for a news item, newest first.
// Public readers never see unapproved comments.
func (r *PostgresCommentRepository) ListApproved(ctx context.Context, newsID string) ([]domain.Comment, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+commentColumns+" FROM comments WHERE news_id = $1 AND is_approved ORDER BY date DESC, id DESC",
		newsID,
	)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	return scanComments(rows)
}

// ListAll returns every comment, approved or not, newest first. This is
// the administrative moderation listing.
func (r *PostgresCommentRepository) ListAll(ctx context.Context) ([]domain.Comment, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+commentColumns+" FROM comments ORDER BY date DESC, id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("query all comments: %w", err)
	}
	defer rows.Close()

	return scanComments(rows)
}

// Insert stores a new comment and returns it as persisted.
func (r *PostgresCommentRepository) Insert(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO comments (id, news_id, name, text, date, is_approved)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+commentColumns,
		c.ID, c.NewsID, c.Name, c.Text, c.Date, c.IsApproved,
	)

	var stored domain.Comment
	if err := scanComment(row, &stored); err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	return &stored, nil
}

// Approve marks a comment as approved and returns the updated comment.
func (r *PostgresCommentRepository) Approve(ctx context.Context, id string) (*domain.Comment, error) {
	row := r.pool.QueryRow(ctx,
		"UPDATE comments SET is_approved = TRUE WHERE id = $1 RETURNING "+commentColumns,
		id,
	)

	var stored domain.Comment
	if err := scanComment(row, &stored); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("approve comment: %w", err)
	}
	return &stored, nil
}

// Delete removes a comment by id.
func (r *PostgresCommentRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM comments WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanComment(row pgx.Row, c *domain.Comment) error {
	return row.Scan(&c.ID, &c.NewsID, &c.Name, &c.Text, &c.Date, &c.IsApproved)
}

func scanComments(rows pgx.Rows) ([]domain.Comment, error) {
	var result []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := scanComment(rows, &c); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read comments: %w", err)
	}
	return result, nil
}
