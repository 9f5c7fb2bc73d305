package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cadastra/backend/internal/database"
	"github.com/cadastra/backend/internal/models"
	"github.com/cadastra/backend/internal/validation"
)

// UserInfoService handles the personal-info record attached to a user.
type UserInfoService struct {
	db         *gorm.DB
	uniqueness validation.UniquenessChecker
}

func NewUserInfoService(db *gorm.DB) *UserInfoService {
	return &UserInfoService{
		db:         db,
		uniqueness: database.NewUniqueness(db),
	}
}

// List returns every record. Listing is not owner-scoped.
func (s *UserInfoService) List(ctx context.Context) ([]models.UserInfo, error) {
	var infos []models.UserInfo
	if err := s.db.WithContext(ctx).Order("created_at").Find(&infos).Error; err != nil {
		return nil, err
	}
	return infos, nil
}

// Create validates the full rule table and persists a record owned by the
// caller. The caller's user row must exist.
func (s *UserInfoService) Create(ctx context.Context, caller uuid.UUID, input map[string]string) (*models.UserInfo, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", caller).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	result, err := validation.Validate(ctx, input, userInfoCreateSchema, userInfoMessages, s.uniqueness)
	if err != nil {
		return nil, err
	}
	if result.Fails() {
		return nil, &ValidationError{Result: result}
	}

	info := models.UserInfo{
		UserID:      caller,
		Name:        input["name"],
		BirthDate:   input["birth_date"],
		Gender:      input["gender"],
		CPF:         input["cpf"],
		RG:          input["rg"],
		PhoneNumber: input["phone_number"],
		Address:     input["address"],
		ZipCode:     input["zip_code"],
		City:        input["city"],
	}
	if err := s.db.WithContext(ctx).Create(&info).Error; err != nil {
		return nil, err
	}

	return &info, nil
}

// Get returns the record only when it belongs to the caller.
func (s *UserInfoService) Get(ctx context.Context, id, caller uuid.UUID) (*models.UserInfo, error) {
	var info models.UserInfo
	err := s.db.WithContext(ctx).
		Where("id = ?", id).
		Where("user_id = ?", caller).
		First(&info).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &info, nil
}

// Update applies a partial update. Only the submitted fields are validated
// and merged; uniqueness checks exempt the record's own values so an
// unchanged cpf or rg is not a collision.
func (s *UserInfoService) Update(ctx context.Context, id, caller uuid.UUID, input map[string]string) (*models.UserInfo, error) {
	var info models.UserInfo
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if info.UserID != caller {
		return nil, ErrNotOwner
	}

	result, err := validation.Validate(ctx, input, userInfoUpdateSchema, userInfoMessages, s.uniqueness,
		validation.WithExcludeID(info.ID))
	if err != nil {
		return nil, err
	}
	if result.Fails() {
		return nil, &ValidationError{Result: result}
	}

	merge := map[string]*string{
		"name":         &info.Name,
		"birth_date":   &info.BirthDate,
		"gender":       &info.Gender,
		"cpf":          &info.CPF,
		"rg":           &info.RG,
		"phone_number": &info.PhoneNumber,
		"address":      &info.Address,
		"zip_code":     &info.ZipCode,
		"city":         &info.City,
	}
	for field, target := range merge {
		if value, ok := input[field]; ok && value != "" {
			*target = value
		}
	}

	if err := s.db.WithContext(ctx).Save(&info).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

// Delete removes the caller's record. The query is scoped to the caller, so
// a foreign or absent id both come back as ErrNotFound.
func (s *UserInfoService) Delete(ctx context.Context, id, caller uuid.UUID) error {
	var info models.UserInfo
	err := s.db.WithContext(ctx).
		Where("id = ?", id).
		Where("user_id = ?", caller).
		First(&info).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.WithContext(ctx).Delete(&info).Error
}
