package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadastra/backend/internal/models"
	"github.com/cadastra/backend/internal/service"
	"github.com/cadastra/backend/internal/testhelpers"
	"github.com/cadastra/backend/internal/validation"
)

func infoInput(cpf, rg string) map[string]string {
	return map[string]string{
		"name":         "Alice",
		"birth_date":   "1990-01-01",
		"gender":       "Feminino",
		"cpf":          cpf,
		"rg":           rg,
		"phone_number": "11999990000",
		"address":      "Rua A, 1",
		"zip_code":     "01000-000",
		"city":         "São Paulo",
	}
}

func TestUserInfoCreate(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserInfoService(db)

	alice := createUser(t, db, "alice1", "a@x.com")

	info, err := svc.Create(context.Background(), alice.ID, infoInput("12345678901", "1234567"))
	require.NoError(t, err)

	assert.Equal(t, alice.ID, info.UserID, "record must be bound to the caller")
	assert.Equal(t, "12345678901", info.CPF)
	assert.NotEqual(t, uuid.Nil, info.ID)
}

func TestUserInfoCreateUnknownCaller(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserInfoService(db)

	_, err := svc.Create(context.Background(), uuid.New(), infoInput("12345678901", "1234567"))
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestUserInfoCreateInvalidGender(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserInfoService(db)

	alice := createUser(t, db, "alice1", "a@x.com")

	input := infoInput("12345678901", "1234567")
	input["gender"] = "feminino" // case-sensitive enum

	_, err := svc.Create(context.Background(), alice.ID, input)
	ve, ok := service.AsValidationError(err)
	require.True(t, ok, "expected a validation error, got %v", err)
	assert.True(t, ve.Result.HasRule("gender", validation.KindIn))
}

func TestUserInfoCreateShortCPF(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserInfoService(db)

	alice := createUser(t, db, "alice1", "a@x.com")

	_, err := svc.Create(context.Background(), alice.ID, infoInput("1234567890", "1234567"))
	ve, ok := service.AsValidationError(err)
	require.True(t, ok)
	assert.True(t, ve.Result.HasRule("cpf", validation.KindMin))
}

func TestUserInfoCreateDuplicateCPF(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserInfoService(db)

	alice := createUser(t, db, "alice1", "a@x.com")
	bob := createUser(t, db, "bob12", "b@x.com")

	_, err := svc.Create(context.Background(), alice.ID, infoInput("12345678901", "1234567"))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), bob.ID, infoInput("12345678901", "7654321"))
	ve, ok := service.AsValidationError(err)
	require.True(t, ok)
	assert.True(t, ve.Result.HasRule("cpf", validation.KindUnique))
}

func TestUserInfoCreateMissingFields(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserInfoService(db)

	alice := createUser(t, db, "alice1", "a@x.com")

	_, err := svc.Create(context.Background(), alice.ID, map[string]string{"name": "Alice"})
	ve, ok := service.AsValidationError(err)
	require.True(t, ok)
	for _, field := range []string{"birth_date", "gender", "cpf", "rg", "phone_number", "address", "zip_code", "city"} {
		assert.True(t, ve.Result.HasRule(field, validation.KindRequired), "missing required failure for %s", field)
	}
}

func TestUserInfoGetScopedToOwner(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserInfoService(db)

	alice := createUser(t, db, "alice1", "a@x.com")
	bob := createUser(t, db, "bob12", "b@x.com")

	info, err := svc.Create(context.Background(), alice.ID, infoInput("12345678901", "1234567"))
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), info.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, info.ID, got.ID)

	_, err = svc.Get(context.Background(), info.ID, bob.ID)
	assert.ErrorIs(t, err, service.ErrNotFound, "foreign records look absent")
}

func TestUserInfoPartialUpdate(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserInfoService(db)

	alice := createUser(t, db, "alice1", "a@x.com")
	info, err := svc.Create(context.Background(), alice.ID, infoInput("12345678901", "1234567"))
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), info.ID, alice.ID, map[string]string{
		"gender": "Outro",
		"city":   "Campinas",
	})
	require.NoError(t, err)

	assert.Equal(t, "Outro", updated.Gender)
	assert.Equal(t, "Campinas", updated.City)
	assert.Equal(t, "12345678901", updated.CPF, "unsubmitted fields keep their values")
}

func TestUserInfoUpdateKeepsOwnCPF(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserInfoService(db)

	alice := createUser(t, db, "alice1", "a@x.com")
	info, err := svc.Create(context.Background(), alice.ID, infoInput("12345678901", "1234567"))
	require.NoError(t, err)

	// Resubmitting the record's own cpf is not a uniqueness collision.
	_, err = svc.Update(context.Background(), info.ID, alice.ID, map[string]string{"cpf": "12345678901"})
	assert.NoError(t, err)
}

func TestUserInfoUpdateRejectsTakenCPF(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserInfoService(db)

	alice := createUser(t, db, "alice1", "a@x.com")
	bob := createUser(t, db, "bob12", "b@x.com")

	_, err := svc.Create(context.Background(), alice.ID, infoInput("12345678901", "1234567"))
	require.NoError(t, err)
	bobInfo, err := svc.Create(context.Background(), bob.ID, infoInput("10987654321", "7654321"))
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), bobInfo.ID, bob.ID, map[string]string{"cpf": "12345678901"})
	ve, ok := service.AsValidationError(err)
	require.True(t, ok)
	assert.True(t, ve.Result.HasRule("cpf", validation.KindUnique))
}

func TestUserInfoUpdateByNonOwner(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserInfoService(db)

	alice := createUser(t, db, "alice1", "a@x.com")
	bob := createUser(t, db, "bob12", "b@x.com")

	info, err := svc.Create(context.Background(), alice.ID, infoInput("12345678901", "1234567"))
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), info.ID, bob.ID, map[string]string{"city": "Hacked"})
	assert.ErrorIs(t, err, service.ErrNotOwner)

	var stored models.UserInfo
	require.NoError(t, db.First(&stored, "id = ?", info.ID).Error)
	assert.Equal(t, "São Paulo", stored.City, "record must be unchanged")
}

func TestUserInfoDelete(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserInfoService(db)

	alice := createUser(t, db, "alice1", "a@x.com")
	bob := createUser(t, db, "bob12", "b@x.com")

	info, err := svc.Create(context.Background(), alice.ID, infoInput("12345678901", "1234567"))
	require.NoError(t, err)

	err = svc.Delete(context.Background(), info.ID, bob.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)

	require.NoError(t, svc.Delete(context.Background(), info.ID, alice.ID))

	var count int64
	require.NoError(t, db.Model(&models.UserInfo{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestUserInfoList(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserInfoService(db)

	alice := createUser(t, db, "alice1", "a@x.com")
	bob := createUser(t, db, "bob12", "b@x.com")

	_, err := svc.Create(context.Background(), alice.ID, infoInput("12345678901", "1234567"))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), bob.ID, infoInput("10987654321", "7654321"))
	require.NoError(t, err)

	infos, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, infos, 2, "listing is not owner-scoped")
}
