package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// allowed uniqueness stores; the store name comes from rule tables, never
// from request input, but keeping the set closed avoids surprises.
var uniquenessStores = map[string]bool{
	"users":      true,
	"user_infos": true,
}

// Uniqueness implements validation.UniquenessChecker over GORM.
type Uniqueness struct {
	db *gorm.DB
}

func NewUniqueness(db *gorm.DB) *Uniqueness {
	return &Uniqueness{db: db}
}

func (u *Uniqueness) Exists(ctx context.Context, store, column, value string, excludeID uuid.UUID) (bool, error) {
	if !uniquenessStores[store] {
		return false, fmt.Errorf("unknown uniqueness store %q", store)
	}

	query := u.db.WithContext(ctx).Table(store).Where(fmt.Sprintf("%s = ?", column), value)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
