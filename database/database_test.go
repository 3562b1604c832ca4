package database

import (
	"context"
	"testing"

	"recipefinder/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
)

func TestOpenAndMigrate(t *testing.T) {
	db, err := Open(sqlite.Open("file::memory:"), zap.NewNop())
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, Migrate(db, zap.NewNop()))
	assert.True(t, db.Migrator().HasTable(&models.Favourite{}))
	assert.True(t, db.Migrator().HasIndex(&models.Favourite{}, "idx_favourites_user_recipe"))

	userID := uuid.New()
	require.NoError(t, db.Create(&models.Favourite{UserID: userID, RecipeID: 1}).Error)
	assert.Error(t, db.Create(&models.Favourite{UserID: userID, RecipeID: 1}).Error, "one favourite per user and recipe")

	stats, err := Stats(db)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.MaxOpenConnections)
}

func TestPing(t *testing.T) {
	db, err := Open(sqlite.Open("file::memory:"), zap.NewNop())
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	require.NoError(t, Ping(context.Background(), db))

	require.NoError(t, sqlDB.Close())
	assert.Error(t, Ping(context.Background(), db))
}

func TestMonitorConnectionsStops(t *testing.T) {
	db, err := Open(sqlite.Open("file::memory:"), zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	MonitorConnections(ctx, db, zap.NewNop(), 1)
	cancel()
}
