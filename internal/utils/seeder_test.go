package utils

import (
	"context"
	"testing"

	"recipefinder/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeederDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Favourite{}))
	return db
}

func TestSeeder(t *testing.T) {
	db := setupSeederDB(t)
	ctx := context.Background()
	seeder := NewSeeder(db, zap.NewNop(), 1)

	users, err := seeder.SeedUsers(ctx, 5)
	require.NoError(t, err)
	require.Len(t, users, 5)
	assert.True(t, users[0].Verified)

	again, err := seeder.SeedUsers(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, users[0].ID, again[0].ID, "seeding twice reuses users")

	created, err := seeder.SeedFavourites(ctx, users, []int64{1, 2, 3}, 2)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, created, 5)
	assert.LessOrEqual(t, created, 10)

	counts, err := seeder.FavouriteCounts(ctx)
	require.NoError(t, err)
	var total int64
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, int64(created), total)

	deleted, err := seeder.CleanupTestUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), deleted)

	counts, err = seeder.FavouriteCounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, counts)
}
