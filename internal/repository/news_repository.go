package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skabdullah999/Dumurianews24/internal/domain"
)

const newsColumns = "id, title, summary, content, image, category_id, date, author, is_breaking"

// PostgresNewsRepository implements NewsRepository using PostgreSQL.
type PostgresNewsRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresNewsRepository creates a new PostgresNewsRepository.
func NewPostgresNewsRepository(pool *pgxpool.Pool) *PostgresNewsRepository {
	return &PostgresNewsRepository{pool: pool}
}

// List returns news rows matching the filter, newest first. Equal dates
// fall back to id so the ordering stays deterministic.
func (r *PostgresNewsRepository) List(ctx context.Context, filter NewsFilter) ([]domain.NewsRow, error) {
	var sb strings.Builder
	sb.WriteString("SELECT " + newsColumns + " FROM news")

	var conds []string
	var args []interface{}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		conds = append(conds, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if filter.BreakingOnly {
		conds = append(conds, "is_breaking")
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}

	sb.WriteString(" ORDER BY date DESC, id DESC")
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	}

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query news: %w", err)
	}
	defer rows.Close()

	return scanNewsRows(rows)
}

// GetByID returns a single news row or domain.ErrNotFound.
func (r *PostgresNewsRepository) GetByID(ctx context.Context, id string) (*domain.NewsRow, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+newsColumns+" FROM news WHERE id = $1", id)

	var n domain.NewsRow
	if err := scanNewsRow(row, &n); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query news by id: %w", err)
	}
	return &n, nil
}

// Insert stores a new row and returns it as persisted.
func (r *PostgresNewsRepository) Insert(ctx context.Context, n *domain.NewsRow) (*domain.NewsRow, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO news (id, title, summary, content, image, category_id, date, author, is_breaking)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+newsColumns,
		n.ID, n.Title, n.Summary, n.Content, n.Image, n.CategoryID, n.Date, n.Author, n.IsBreaking,
	)

	var stored domain.NewsRow
	if err := scanNewsRow(row, &stored); err != nil {
		return nil, fmt.Errorf("insert news: %w", err)
	}
	return &stored, nil
}

// Update rewrites every mutable field of the row keyed by id. The date
// column is creation-immutable and is deliberately left untouched.
func (r *PostgresNewsRepository) Update(ctx context.Context, n *domain.NewsRow) (*domain.NewsRow, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE news
		SET title = $2, summary = $3, content = $4, image = $5, category_id = $6, author = $7, is_breaking = $8
		WHERE id = $1
		RETURNING `+newsColumns,
		n.ID, n.Title, n.Summary, n.Content, n.Image, n.CategoryID, n.Author, n.IsBreaking,
	)

	var stored domain.NewsRow
	if err := scanNewsRow(row, &stored); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update news: %w", err)
	}
	return &stored, nil
}

// Delete removes a row by id. Deleting an absent row returns
// domain.ErrNotFound so repeated deletes are distinguishable.
func (r *PostgresNewsRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM news WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search performs a case-insensitive substring match over title and
// summary, and over content too when includeContent is set. Results come
// back newest first, capped at limit.
func (r *PostgresNewsRepository) Search(ctx context.Context, query string, includeContent bool, limit int) ([]domain.NewsRow, error) {
	pattern := "%" + escapeLike(query) + "%"

	cond := "(title ILIKE $1 OR summary ILIKE $1)"
	if includeContent {
		cond = "(title ILIKE $1 OR summary ILIKE $1 OR content ILIKE $1)"
	}

	rows, err := r.pool.Query(ctx,
		"SELECT "+newsColumns+" FROM news WHERE "+cond+" ORDER BY date DESC, id DESC LIMIT $2",
		pattern, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search news: %w", err)
	}
	defer rows.Close()

	return scanNewsRows(rows)
}

// escapeLike escapes LIKE metacharacters so user input matches literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

func scanNewsRow(row pgx.Row, n *domain.NewsRow) error {
	return row.Scan(&n.ID, &n.Title, &n.Summary, &n.Content, &n.Image, &n.CategoryID, &n.Date, &n.Author, &n.IsBreaking)
}

func scanNewsRows(rows pgx.Rows) ([]domain.NewsRow, error) {
	var result []domain.NewsRow
	for rows.Next() {
		var n domain.NewsRow
		if err := scanNewsRow(rows, &n); err != nil {
			return nil, fmt.Errorf("scan news row: %w", err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read news rows: %w", err)
	}
	return result, nil
}
