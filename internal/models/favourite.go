package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favourite is a bookmark of an external recipe. RecipeID refers to the
// provider's recipe id; recipes themselves are never stored.
type Favourite struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RecipeID  int64     `gorm:"not null;index;uniqueIndex:idx_favourites_user_recipe" json:"recipe_id"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favourites_user_recipe" json:"user_id"`
}

func (Favourite) TableName() string {
	return "favourites"
}

func (f *Favourite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
