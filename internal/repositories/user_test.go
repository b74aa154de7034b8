package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	userID, err := repo.Save(ctx, "alice", "alice@example.com", "hashedpassword")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, userID)

	t.Run("DuplicateUsername", func(t *testing.T) {
		_, err := repo.Save(ctx, "alice", "other@example.com", "hashedpassword")
		assert.ErrorIs(t, err, ErrUniqueViolation)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		_, err := repo.Save(ctx, "bob", "alice@example.com", "hashedpassword")
		assert.ErrorIs(t, err, ErrUniqueViolation)
	})
}

func TestUserReadRepository_GetByUsernameOrEmail(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	charlieID, err := writeRepo.Save(ctx, "charlie", "charlie@example.com", "hash1")
	require.NoError(t, err)
	_, err = writeRepo.Save(ctx, "dave", "dave@example.com", "hash2")
	require.NoError(t, err)

	t.Run("ByUsername", func(t *testing.T) {
		username := "charlie"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, nil)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, charlieID, user.UserID)
		assert.Equal(t, "charlie@example.com", user.Email)
	})

	t.Run("ByEmail", func(t *testing.T) {
		email := "dave@example.com"
		user, err := readRepo.GetByUsernameOrEmail(ctx, nil, &email)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "dave", user.Username)
	})

	t.Run("NotFound", func(t *testing.T) {
		username := "nonexistent"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, nil)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}
