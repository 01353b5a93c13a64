package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skabdullah999/Dumurianews24/internal/domain"
	"github.com/skabdullah999/Dumurianews24/internal/repository"
)

func TestPostgresAdminUserRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresAdminUserRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("count starts at zero and grows after insert", func(t *testing.T) {
		testDB.TruncateTables(t, "admin_users")

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, count)

		user := &domain.AdminUser{
			ID:           uuid.New().String(),
			Email:        "admin@dumurianews.com",
			PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
			CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
		}
		require.NoError(t, repo.Insert(ctx, user))

		count, err = repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("get by email", func(t *testing.T) {
		testDB.TruncateTables(t, "admin_users")

		user := &domain.AdminUser{
			ID:           uuid.New().String(),
			Email:        "admin@dumurianews.com",
			PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
			CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
		}
		require.NoError(t, repo.Insert(ctx, user))

		got, err := repo.GetByEmail(ctx, "admin@dumurianews.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, user.PasswordHash, got.PasswordHash)

		_, err = repo.GetByEmail(ctx, "nobody@dumurianews.com")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPostgresSessionRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	adminRepo := repository.NewPostgresAdminUserRepository(testDB.Pool)
	repo := repository.NewPostgresSessionRepository(testDB.Pool)
	ctx := context.Background()

	seedAdmin := func(t *testing.T) string {
		t.Helper()
		user := &domain.AdminUser{
			ID:           uuid.New().String(),
			Email:        uuid.New().String() + "@dumurianews.com",
			PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
			CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
		}
		require.NoError(t, adminRepo.Insert(ctx, user))
		return user.ID
	}

	t.Run("create and get", func(t *testing.T) {
		testDB.TruncateTables(t, "sessions", "admin_users")
		adminID := seedAdmin(t)

		now := time.Now().UTC().Truncate(time.Microsecond)
		session := &domain.Session{
			Token:       uuid.New().String(),
			AdminUserID: adminID,
			Expires:     now.Add(time.Hour),
			Created:     now,
		}
		require.NoError(t, repo.Create(ctx, session))

		got, err := repo.Get(ctx, session.Token)
		require.NoError(t, err)
		assert.Equal(t, adminID, got.AdminUserID)
		assert.False(t, got.Expired(now))
		assert.True(t, got.Expired(now.Add(2*time.Hour)))

		_, err = repo.Get(ctx, uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		testDB.TruncateTables(t, "sessions", "admin_users")
		adminID := seedAdmin(t)

		now := time.Now().UTC().Truncate(time.Microsecond)
		session := &domain.Session{
			Token:       uuid.New().String(),
			AdminUserID: adminID,
			Expires:     now.Add(time.Hour),
			Created:     now,
		}
		require.NoError(t, repo.Create(ctx, session))

		require.NoError(t, repo.Delete(ctx, session.Token))
		// A second delete of the same token is still not an error
		require.NoError(t, repo.Delete(ctx, session.Token))
	})

	t.Run("delete for user removes every session of that account", func(t *testing.T) {
		testDB.TruncateTables(t, "sessions", "admin_users")
		adminID := seedAdmin(t)
		otherID := seedAdmin(t)

		now := time.Now().UTC().Truncate(time.Microsecond)
		for i := 0; i < 2; i++ {
			require.NoError(t, repo.Create(ctx, &domain.Session{
				Token:       uuid.New().String(),
				AdminUserID: adminID,
				Expires:     now.Add(time.Hour),
				Created:     now,
			}))
		}
		otherSession := &domain.Session{
			Token:       uuid.New().String(),
			AdminUserID: otherID,
			Expires:     now.Add(time.Hour),
			Created:     now,
		}
		require.NoError(t, repo.Create(ctx, otherSession))

		require.NoError(t, repo.DeleteForUser(ctx, adminID))

		_, err := repo.Get(ctx, otherSession.Token)
		require.NoError(t, err, "other users' sessions must survive")
	})
}
