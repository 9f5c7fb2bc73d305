package database_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadastra/backend/internal/database"
	"github.com/cadastra/backend/internal/models"
	"github.com/cadastra/backend/internal/testhelpers"
)

func TestUniquenessExists(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	checker := database.NewUniqueness(db)

	user := &models.User{Username: "alice1", Email: "a@x.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)

	ctx := context.Background()

	exists, err := checker.Exists(ctx, "users", "email", "a@x.com", uuid.Nil)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = checker.Exists(ctx, "users", "email", "b@x.com", uuid.Nil)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUniquenessExcludesRecord(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	checker := database.NewUniqueness(db)

	user := &models.User{Username: "alice1", Email: "a@x.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)

	exists, err := checker.Exists(context.Background(), "users", "email", "a@x.com", user.ID)
	require.NoError(t, err)
	assert.False(t, exists, "a record's own value is not a collision")
}

func TestUniquenessRejectsUnknownStore(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	checker := database.NewUniqueness(db)

	_, err := checker.Exists(context.Background(), "sessions", "token", "x", uuid.Nil)
	assert.Error(t, err)
}
