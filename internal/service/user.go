package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/cadastra/backend/internal/models"
	"github.com/cadastra/backend/internal/types"
)

// UserService handles user listing and owner-gated mutation.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// List returns every user projected to the public summary.
func (s *UserService) List(ctx context.Context) ([]types.UserSummary, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}

	summaries := make([]types.UserSummary, len(users))
	for i, u := range users {
		summaries[i] = types.UserSummary{
			ID:       u.ID.String(),
			Username: u.Username,
			Email:    u.Email,
		}
	}
	return summaries, nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Update merges the provided fields onto the user identified by id. Only
// the record's owner may update it. Empty fields are left untouched; a new
// password is re-hashed before storage.
func (s *UserService) Update(ctx context.Context, id, caller uuid.UUID, req *types.UpdateUserRequest) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if user.ID != caller {
		return nil, ErrNotOwner
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hashed)
	}

	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes the caller's own user record. The query is scoped to the
// caller, so a foreign or absent id both come back as ErrNotFound. The
// user_infos row, if any, goes with it through the FK cascade.
func (s *UserService) Delete(ctx context.Context, id, caller uuid.UUID) error {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).Where("id = ?", caller).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.WithContext(ctx).Delete(&user).Error
}
