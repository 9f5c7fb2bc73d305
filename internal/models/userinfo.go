package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gender values accepted for a UserInfo record.
const (
	GenderMasculino = "Masculino"
	GenderFeminino  = "Feminino"
	GenderOutro     = "Outro"
)

// UserInfo holds the personal data attached to a user account. CPF and RG
// are the Brazilian national identity numbers and must be unique across all
// records.
type UserInfo struct {
	ID          uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	BirthDate   string    `gorm:"type:date;not null" json:"birth_date"`
	Gender      string    `gorm:"size:20;not null" json:"gender"`
	CPF         string    `gorm:"column:cpf;size:11;uniqueIndex;not null" json:"cpf"`
	RG          string    `gorm:"column:rg;size:10;uniqueIndex;not null" json:"rg"`
	PhoneNumber string    `gorm:"size:15;not null" json:"phone_number"`
	Address     string    `gorm:"size:100;not null" json:"address"`
	ZipCode     string    `gorm:"size:15;not null" json:"zip_code"`
	City        string    `gorm:"size:100;not null" json:"city"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (UserInfo) TableName() string {
	return "user_infos"
}

func (i *UserInfo) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
