package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadastra/backend/internal/models"
	"github.com/cadastra/backend/internal/service"
	"github.com/cadastra/backend/internal/testhelpers"
)

// Exercises the behaviors that depend on real PostgreSQL semantics: the FK
// cascade from users to user_infos and the unique constraints that back the
// validation rules. Skipped when docker is unavailable.
func TestPostgresCascadeDelete(t *testing.T) {
	db := testhelpers.SetupPostgresDatabase(t)

	authSvc := service.NewAuthService(db, "test-secret")
	userSvc := service.NewUserService(db)
	infoSvc := service.NewUserInfoService(db)

	ctx := context.Background()
	user, err := authSvc.Register(ctx, map[string]string{
		"username": "alice1",
		"email":    "a@x.com",
		"password": "secret",
	})
	require.NoError(t, err)

	_, err = infoSvc.Create(ctx, user.ID, infoInput("12345678901", "1234567"))
	require.NoError(t, err)

	require.NoError(t, userSvc.Delete(ctx, user.ID, user.ID))

	var infos int64
	require.NoError(t, db.Model(&models.UserInfo{}).Count(&infos).Error)
	assert.EqualValues(t, 0, infos, "cascade must remove the user_infos row")
}

func TestPostgresUniqueConstraintBacksValidation(t *testing.T) {
	db := testhelpers.SetupPostgresDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret")

	ctx := context.Background()
	_, err := authSvc.Register(ctx, map[string]string{
		"username": "alice1",
		"email":    "a@x.com",
		"password": "secret",
	})
	require.NoError(t, err)

	// The validation layer catches the duplicate; the DB constraint is the
	// backstop for the concurrent-registration race.
	err = db.Create(&models.User{Username: "alice2", Email: "a@x.com", PasswordHash: "x"}).Error
	assert.Error(t, err, "duplicate email must violate the unique constraint")
}
