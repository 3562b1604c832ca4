package repository

import (
	"context"
	"testing"
	"time"

	"recipefinder/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to ":memory:" is a fresh database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Favourite{}, &models.Verification{}))
	return db
}

func bookmark(t *testing.T, repo FavouriteRepository, favourite *models.Favourite) {
	t.Helper()
	_, err := repo.Create(context.Background(), favourite)
	require.NoError(t, err)
}

func TestCountByRecipeID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFavouriteRepository(db)
	ctx := context.Background()

	count, err := repo.CountByRecipeID(ctx, 716429)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count, "no favourites is a zero count, not an error")

	for i := 0; i < 3; i++ {
		bookmark(t, repo, &models.Favourite{RecipeID: 716429, UserID: uuid.New()})
	}
	bookmark(t, repo, &models.Favourite{RecipeID: 1, UserID: uuid.New()})

	count, err = repo.CountByRecipeID(ctx, 716429)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestCreateFavouriteIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFavouriteRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	first := &models.Favourite{RecipeID: 42, UserID: userID}
	created, err := repo.Create(ctx, first)
	require.NoError(t, err)
	assert.True(t, created)

	second := &models.Favourite{RecipeID: 42, UserID: userID}
	created, err = repo.Create(ctx, second)
	require.NoError(t, err)
	assert.False(t, created, "an existing bookmark is loaded, not inserted")

	assert.Equal(t, first.ID, second.ID)
	count, err := repo.CountByRecipeID(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestExistsForUserAndFindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFavouriteRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	bookmark(t, repo, &models.Favourite{RecipeID: 10, UserID: userID})
	bookmark(t, repo, &models.Favourite{RecipeID: 20, UserID: userID})
	bookmark(t, repo, &models.Favourite{RecipeID: 30, UserID: uuid.New()})

	ok, err := repo.ExistsForUser(ctx, userID, 10)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ExistsForUser(ctx, userID, 30)
	require.NoError(t, err)
	assert.False(t, ok)

	favourites, err := repo.FindAllByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, favourites, 2)
}

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Email: "cook@example.com", Password: "hash"}
	require.NoError(t, repo.CreateUser(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)

	found, err := repo.GetUserByEmail(ctx, "cook@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.False(t, found.Verified)

	require.NoError(t, repo.SetUserVerified(ctx, "cook@example.com"))
	found, err = repo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, found.Verified)

	_, err = repo.GetUserByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.Error(t, repo.CreateUser(ctx, &models.User{Email: "cook@example.com"}))
}

func TestVerificationRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVerificationRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateVerification(ctx, &models.Verification{
		Email:     "cook@example.com",
		Code:      "123456",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}))

	_, err := repo.FindByEmailAndCode(ctx, "cook@example.com", "123456")
	require.NoError(t, err)

	_, err = repo.FindByEmailAndCode(ctx, "cook@example.com", "000000")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, repo.DeleteByEmail(ctx, "cook@example.com"))
	require.NoError(t, repo.CreateVerification(ctx, &models.Verification{
		Email:     "cook@example.com",
		Code:      "654321",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))
	_, err = repo.FindByEmailAndCode(ctx, "cook@example.com", "654321")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound, "expired codes do not match")
}
