package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skabdullah999/Dumurianews24/internal/domain"
	"github.com/skabdullah999/Dumurianews24/internal/repository"
)

func TestPostgresCategoryRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresCategoryRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("insert and list ordered by name", func(t *testing.T) {
		testDB.TruncateTables(t, "categories")

		_, err := repo.Insert(ctx, domain.Category{ID: "sports", Name: "খেলাধুলা"})
		require.NoError(t, err)
		_, err = repo.Insert(ctx, domain.Category{ID: "economy", Name: "অর্থনীতি"})
		require.NoError(t, err)

		categories, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "অর্থনীতি", categories[0].Name)
		assert.Equal(t, "খেলাধুলা", categories[1].Name)
	})

	t.Run("insert duplicate id returns ErrCategoryExists", func(t *testing.T) {
		testDB.TruncateTables(t, "categories")

		_, err := repo.Insert(ctx, domain.Category{ID: "sports", Name: "খেলাধুলা"})
		require.NoError(t, err)

		_, err = repo.Insert(ctx, domain.Category{ID: "sports", Name: "খেলা ধুলা"})
		assert.ErrorIs(t, err, domain.ErrCategoryExists)
	})

	t.Run("exists", func(t *testing.T) {
		testDB.TruncateTables(t, "categories")
		testDB.SeedCategory(t, "sports", "খেলাধুলা")

		exists, err := repo.Exists(ctx, "sports")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.Exists(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("get by id", func(t *testing.T) {
		testDB.TruncateTables(t, "categories")
		testDB.SeedCategory(t, "sports", "খেলাধুলা")

		category, err := repo.GetByID(ctx, "sports")
		require.NoError(t, err)
		assert.Equal(t, "খেলাধুলা", category.Name)

		_, err = repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("rename keeps the id", func(t *testing.T) {
		testDB.TruncateTables(t, "categories")
		testDB.SeedCategory(t, "sports", "খেলাধুলা")

		renamed, err := repo.Rename(ctx, "sports", "ক্রীড়া")
		require.NoError(t, err)
		assert.Equal(t, "sports", renamed.ID)
		assert.Equal(t, "ক্রীড়া", renamed.Name)

		_, err = repo.Rename(ctx, "missing", "নাম")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		testDB.TruncateTables(t, "categories")
		testDB.SeedCategory(t, "sports", "খেলাধুলা")

		require.NoError(t, repo.Delete(ctx, "sports"))
		assert.ErrorIs(t, repo.Delete(ctx, "sports"), domain.ErrNotFound)
	})
}
