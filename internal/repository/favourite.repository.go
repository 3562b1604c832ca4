package repository

import (
	"context"

	"recipefinder/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FavouriteRepository interface {
	Create(ctx context.Context, favourite *models.Favourite) (bool, error)
	CountByRecipeID(ctx context.Context, recipeID int64) (int64, error)
	ExistsForUser(ctx context.Context, userID uuid.UUID, recipeID int64) (bool, error)
	FindAllByUserID(ctx context.Context, userID uuid.UUID) ([]models.Favourite, error)
}

type favouriteRepository struct {
	db *gorm.DB
}

func NewFavouriteRepository(db *gorm.DB) FavouriteRepository {
	return &favouriteRepository{db}
}

// Create bookmarks a recipe for a user and reports whether a row was
// inserted. Bookmarking the same recipe twice leaves the existing row in
// place and loads it into favourite.
func (r *favouriteRepository) Create(ctx context.Context, favourite *models.Favourite) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", favourite.UserID, favourite.RecipeID).
		FirstOrCreate(favourite)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CountByRecipeID returns the exact number of favourites for a recipe.
func (r *favouriteRepository) CountByRecipeID(ctx context.Context, recipeID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Favourite{}).Where("recipe_id = ?", recipeID).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *favouriteRepository) ExistsForUser(ctx context.Context, userID uuid.UUID, recipeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Favourite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Limit(1).
		Count(&count).Error
	return count > 0, err
}

func (r *favouriteRepository) FindAllByUserID(ctx context.Context, userID uuid.UUID) ([]models.Favourite, error) {
	var favourites []models.Favourite
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&favourites).Error
	return favourites, err
}
