package utils

import (
	"context"
	"fmt"
	mathrand "math/rand"
	"time"

	"recipefinder/internal/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	DefaultNumUsers     = 100
	testPassword        = "TestPassword123!"
	testUserEmailFormat = "testuser%d@example.com"
	testUserEmailLike   = "testuser%@example.com"
)

// DefaultRecipeIDs are popular Spoonacular recipes used for demo favourites.
var DefaultRecipeIDs = []int64{716429, 715538, 716426, 715594, 716381, 782601, 794349, 715446, 715415, 716406}

// Seeder fills a database with verified test users and their favourites.
type Seeder struct {
	db  *gorm.DB
	log *zap.Logger
	r   *mathrand.Rand
}

func NewSeeder(db *gorm.DB, log *zap.Logger, seed int64) *Seeder {
	return &Seeder{db: db, log: log, r: mathrand.New(mathrand.NewSource(seed))}
}

// SeedUsers creates numUsers verified users, skipping emails that exist.
func (s *Seeder) SeedUsers(ctx context.Context, numUsers int) ([]models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("hash test password: %w", err)
	}

	start := time.Now()
	users := make([]models.User, 0, numUsers)
	for i := 1; i <= numUsers; i++ {
		user := models.User{
			Email:    fmt.Sprintf(testUserEmailFormat, i),
			Password: string(hash),
			Provider: "email",
			Verified: true,
		}
		err := s.db.WithContext(ctx).
			Where("email = ?", user.Email).
			FirstOrCreate(&user).Error
		if err != nil {
			return nil, fmt.Errorf("error seeding user %d: %w", i, err)
		}
		users = append(users, user)
	}

	s.log.Info("seeded users", zap.Int("count", len(users)), zap.Duration("elapsed", time.Since(start)))
	return users, nil
}

// SeedFavourites bookmarks a random subset of recipeIDs for every user, at
// most maxPerUser each. Existing bookmarks are kept.
func (s *Seeder) SeedFavourites(ctx context.Context, users []models.User, recipeIDs []int64, maxPerUser int) (int, error) {
	if len(recipeIDs) == 0 || maxPerUser <= 0 {
		return 0, nil
	}

	created := 0
	for _, user := range users {
		n := s.r.Intn(min(maxPerUser, len(recipeIDs))) + 1
		for _, idx := range s.r.Perm(len(recipeIDs))[:n] {
			favourite := models.Favourite{UserID: user.ID, RecipeID: recipeIDs[idx]}
			err := s.db.WithContext(ctx).
				Where("user_id = ? AND recipe_id = ?", favourite.UserID, favourite.RecipeID).
				FirstOrCreate(&favourite).Error
			if err != nil {
				return created, fmt.Errorf("error seeding favourite for %s: %w", user.Email, err)
			}
			created++
		}
	}

	s.log.Info("seeded favourites", zap.Int("count", created))
	return created, nil
}

// CleanupTestUsers removes the seeded users and their favourites.
func (s *Seeder) CleanupTestUsers(ctx context.Context) (int64, error) {
	db := s.db.WithContext(ctx)
	subQuery := db.Model(&models.User{}).Select("id").Where("email LIKE ?", testUserEmailLike)
	if err := db.Where("user_id IN (?)", subQuery).Delete(&models.Favourite{}).Error; err != nil {
		return 0, fmt.Errorf("delete test favourites: %w", err)
	}

	result := db.Unscoped().Where("email LIKE ?", testUserEmailLike).Delete(&models.User{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete test users: %w", result.Error)
	}
	s.log.Info("deleted test users", zap.Int64("count", result.RowsAffected))
	return result.RowsAffected, nil
}

// FavouriteCounts returns the number of favourites per recipe.
func (s *Seeder) FavouriteCounts(ctx context.Context) (map[int64]int64, error) {
	var rows []struct {
		RecipeID int64
		Count    int64
	}
	err := s.db.WithContext(ctx).Model(&models.Favourite{}).
		Select("recipe_id, COUNT(*) AS count").
		Group("recipe_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[int64]int64, len(rows))
	for _, row := range rows {
		counts[row.RecipeID] = row.Count
	}
	return counts, nil
}
