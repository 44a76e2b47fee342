package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starwars_api/internal/database"
	"starwars_api/internal/models"
	tu "starwars_api/internal/testutil"
)

func TestOpenSQLiteFallback(t *testing.T) {
	cfg := tu.GetTestConfig()
	cfg.SQLitePath = filepath.Join(t.TempDir(), "open.db")

	db, err := database.Open(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer database.Close(db, zerolog.Nop())

	assert.Equal(t, "sqlite", db.Dialector.Name())
	require.NoError(t, database.RunMigrations(db, zerolog.Nop()))

	for _, table := range []string{"user", "people", "planet", "favorite"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s", table)
	}
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	db := tu.SetupTestDB(t)
	require.NoError(t, database.RunMigrations(db, zerolog.Nop()))
	assert.True(t, db.Migrator().HasIndex(&models.Favorite{}, "idx_favorite_user_planet"))
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	db := tu.SetupTestDB(t)

	user, err := database.Seed(ctx, db, "demo", zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, database.DemoUserEmail, user.Email)
	assert.True(t, user.IsActive)

	again, err := database.Seed(ctx, db, "other", zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)

	var users, people, planets int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.People{}).Count(&people).Error)
	require.NoError(t, db.Model(&models.Planet{}).Count(&planets).Error)
	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(4), people)
	assert.Equal(t, int64(3), planets)
}
