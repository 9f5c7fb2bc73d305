package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/cadastra/backend/internal/models"
	"github.com/cadastra/backend/internal/service"
	"github.com/cadastra/backend/internal/testhelpers"
	"github.com/cadastra/backend/internal/types"
)

func createUser(t *testing.T, db *gorm.DB, username, email string) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{Username: username, Email: email, PasswordHash: string(hashed)}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestUserList(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserService(db)

	alice := createUser(t, db, "alice1", "a@x.com")
	createUser(t, db, "bob12", "b@x.com")

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, alice.ID.String(), users[0].ID)
	assert.Equal(t, "alice1", users[0].Username)
	assert.Equal(t, "a@x.com", users[0].Email)
}

func TestUserGet(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserService(db)

	alice := createUser(t, db, "alice1", "a@x.com")

	user, err := svc.Get(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, user.ID)

	_, err = svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestUserUpdate(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserService(db)

	alice := createUser(t, db, "alice1", "a@x.com")

	updated, err := svc.Update(context.Background(), alice.ID, alice.ID, &types.UpdateUserRequest{
		Username: "alice2",
		Password: "newsecret",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, "a@x.com", updated.Email, "omitted fields stay untouched")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newsecret")))
}

func TestUserUpdateByNonOwner(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserService(db)

	alice := createUser(t, db, "alice1", "a@x.com")
	bob := createUser(t, db, "bob12", "b@x.com")

	_, err := svc.Update(context.Background(), alice.ID, bob.ID, &types.UpdateUserRequest{Username: "hacked"})
	assert.ErrorIs(t, err, service.ErrNotOwner)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", alice.ID).Error)
	assert.Equal(t, "alice1", stored.Username, "record must be unchanged")
}

func TestUserUpdateNotFound(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserService(db)

	_, err := svc.Update(context.Background(), uuid.New(), uuid.New(), &types.UpdateUserRequest{})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestUserDelete(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserService(db)

	alice := createUser(t, db, "alice1", "a@x.com")

	require.NoError(t, svc.Delete(context.Background(), alice.ID, alice.ID))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestUserDeleteByNonOwnerIsNotFound(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserService(db)

	alice := createUser(t, db, "alice1", "a@x.com")
	bob := createUser(t, db, "bob12", "b@x.com")

	err := svc.Delete(context.Background(), alice.ID, bob.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 2, count, "no record may be deleted")
}

func TestUserDeleteCascadesToUserInfo(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserService(db)

	alice := createUser(t, db, "alice1", "a@x.com")
	info := &models.UserInfo{
		UserID:      alice.ID,
		Name:        "Alice",
		BirthDate:   "1990-01-01",
		Gender:      models.GenderFeminino,
		CPF:         "12345678901",
		RG:          "1234567",
		PhoneNumber: "11999990000",
		Address:     "Rua A, 1",
		ZipCode:     "01000-000",
		City:        "São Paulo",
	}
	require.NoError(t, db.Create(info).Error)

	require.NoError(t, svc.Delete(context.Background(), alice.ID, alice.ID))

	var count int64
	require.NoError(t, db.Model(&models.UserInfo{}).Count(&count).Error)
	assert.EqualValues(t, 0, count, "no orphaned user_infos row may remain")
}
