package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skabdullah999/Dumurianews24/internal/domain"
)

// PostgresCategoryRepository implements CategoryRepository using PostgreSQL.
type PostgresCategoryRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCategoryRepository creates a new PostgresCategoryRepository.
func NewPostgresCategoryRepository(pool *pgxpool.Pool) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{pool: pool}
}

// List returns all categories ordered by display name.
func (r *PostgresCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, "SELECT id, name FROM categories ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var result []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read categories: %w", err)
	}
	return result, nil
}

// GetByID returns a single category or domain.ErrNotFound.
func (r *PostgresCategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	var c domain.Category
	err := r.pool.QueryRow(ctx, "SELECT id, name FROM categories WHERE id = $1", id).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query category by id: %w", err)
	}
	return &c, nil
}

// Exists reports whether a category with the given id is stored.
func (r *PostgresCategoryRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check category exists: %w", err)
	}
	return exists, nil
}

// Insert stores a new category. A slug collision surfaces as
// domain.ErrCategoryExists.
func (r *PostgresCategoryRepository) Insert(ctx context.Context, category domain.Category) (*domain.Category, error) {
	tag, err := r.pool.Exec(ctx,
		"INSERT INTO categories (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING",
		category.ID, category.Name,
	)
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrCategoryExists
	}
	return &category, nil
}

// Rename updates only the display name. The id is a stable foreign key
// and is never regenerated.
func (r *PostgresCategoryRepository) Rename(ctx context.Context, id, name string) (*domain.Category, error) {
	var c domain.Category
	err := r.pool.QueryRow(ctx,
		"UPDATE categories SET name = $2 WHERE id = $1 RETURNING id, name",
		id, name,
	).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("rename category: %w", err)
	}
	return &c, nil
}

// Delete removes a category. News rows keep their category_id and resolve
// to the default display name afterwards; nothing cascades.
func (r *PostgresCategoryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
