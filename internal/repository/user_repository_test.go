package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/railbook/train-booking/internal/utils"
)

func TestUserRepoCreateAndLookup(t *testing.T) {
	db := openTestDB(t, "userrepo")
	repo := NewUserRepo(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, "alice", "secret123", "alice@example.com", bcrypt.MinCost)
	require.NoError(t, err)
	assert.EqualValues(t, 1, id)

	exists, err := repo.Exists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, exists)

	u, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "alice@example.com", u.Email)
	// Passwords are stored hashed, never in the clear.
	assert.NotEqual(t, "secret123", u.PasswordHash)
	assert.True(t, utils.VerifyPassword(u.PasswordHash, "secret123"))

	_, err = repo.GetByUsername(ctx, "bob")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestUserRepoDuplicateUsername(t *testing.T) {
	db := openTestDB(t, "userrepo_dup")
	repo := NewUserRepo(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, "alice", "secret123", "alice@example.com", bcrypt.MinCost)
	require.NoError(t, err)

	// The UNIQUE column rejects a second insert even without the handler's
	// pre-check.
	_, err = repo.Create(ctx, "alice", "different", "other@example.com", bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrUserExists)
}
