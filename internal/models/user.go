package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// @description Application user. Password is empty for OAuth-only accounts.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id" example:"7b9c5a4e-1f0e-4d5b-9a77-3b1c2f0d9e11"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Email     string         `gorm:"uniqueIndex;not null" json:"email" example:"cook@example.com"`
	Password  string         `json:"-"`
	Provider  string         `gorm:"default:email" json:"provider" example:"email"`
	Verified  bool           `gorm:"default:false" json:"verified"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
